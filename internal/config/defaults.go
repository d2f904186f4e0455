package config

import "github.com/ziadkadry99/animdocs/internal/catalog"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".animdocs.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "React Native Animation Components",
			Description: "A comprehensive library of customizable, performance-optimized animations for React Native applications.",
			BaseURL:     "http://localhost:8080",
			AssetBase:   "",
		},
		Catalog: CatalogConfig{
			Include: append([]string(nil), catalog.DefaultPatterns...),
		},
		Server: ServerConfig{
			Port:        8080,
			AssetsDir:   "public",
			PageCacheMB: 16,
		},
		Build: BuildConfig{
			OutputDir:   "dist",
			Concurrency: 4,
		},
		Activity: ActivityConfig{
			Enabled: false,
			DBPath:  ".animdocs/activity.db",
		},
		Log: LogConfig{
			Level: LogInfo,
		},
	}
}
