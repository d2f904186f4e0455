package config

// LogLevel is a zap level name.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level animdocs configuration, corresponding to .animdocs.yml.
type Config struct {
	Site     SiteConfig     `yaml:"site" koanf:"site"`
	Catalog  CatalogConfig  `yaml:"catalog" koanf:"catalog"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Build    BuildConfig    `yaml:"build" koanf:"build"`
	Activity ActivityConfig `yaml:"activity" koanf:"activity"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// SiteConfig holds what the pages say about themselves.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Description string `yaml:"description" koanf:"description"`
	BaseURL     string `yaml:"base_url" koanf:"base_url"`
	AssetBase   string `yaml:"asset_base" koanf:"asset_base"`
	// BasePath mounts the site under a URL prefix, e.g. /react-native-animations.
	BasePath string `yaml:"base_path" koanf:"base_path"`
	// IntroFile replaces the built-in home page introduction (markdown).
	IntroFile string `yaml:"intro_file" koanf:"intro_file"`
}

// CatalogConfig lists recipe directories loaded after the built-in catalog.
type CatalogConfig struct {
	Dirs    []string `yaml:"dirs" koanf:"dirs"`
	Include []string `yaml:"include" koanf:"include"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AssetsDir       string `yaml:"assets_dir" koanf:"assets_dir"`
	// PageCacheMB bounds the rendered page cache. 0 disables it.
	PageCacheMB int `yaml:"page_cache_mb" koanf:"page_cache_mb"`
}

// BuildConfig holds static export settings.
type BuildConfig struct {
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
	Concurrency int    `yaml:"concurrency" koanf:"concurrency"`
}

// ActivityConfig controls the download/copy event log.
type ActivityConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	DBPath  string `yaml:"db_path" koanf:"db_path"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       LogLevel `yaml:"level" koanf:"level"`
	Development bool     `yaml:"development" koanf:"development"`
}
