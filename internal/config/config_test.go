package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Build.OutputDir != "dist" {
		t.Errorf("expected default build.output_dir %q, got %q", "dist", cfg.Build.OutputDir)
	}
	if cfg.Log.Level != LogInfo {
		t.Errorf("expected default log level %q, got %q", LogInfo, cfg.Log.Level)
	}
	if cfg.Activity.Enabled {
		t.Error("activity log should be off by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.animdocs.yml")

	original := DefaultConfig()
	original.Site.Title = "Motion Recipes"
	original.Site.BaseURL = "https://motion.example.com"
	original.Catalog.Dirs = []string{"recipes", "more"}
	original.Server.Port = 3000
	original.Build.Concurrency = 8
	original.Activity.Enabled = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Site.Title != original.Site.Title {
		t.Errorf("site.title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.Site.BaseURL != original.Site.BaseURL {
		t.Errorf("site.base_url: got %q, want %q", loaded.Site.BaseURL, original.Site.BaseURL)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Build.Concurrency != original.Build.Concurrency {
		t.Errorf("build.concurrency: got %d, want %d", loaded.Build.Concurrency, original.Build.Concurrency)
	}
	if !loaded.Activity.Enabled {
		t.Error("activity.enabled lost in round trip")
	}
	if len(loaded.Catalog.Dirs) != len(original.Catalog.Dirs) {
		t.Fatalf("catalog.dirs length: got %d, want %d", len(loaded.Catalog.Dirs), len(original.Catalog.Dirs))
	}
	for i, v := range loaded.Catalog.Dirs {
		if v != original.Catalog.Dirs[i] {
			t.Errorf("catalog.dirs[%d]: got %q, want %q", i, v, original.Catalog.Dirs[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("site:\n  title: Partial\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Site.Title != "Partial" {
		t.Errorf("site.title = %q", cfg.Site.Title)
	}
	if cfg.Build.OutputDir != "dist" {
		t.Errorf("build.output_dir default lost: %q", cfg.Build.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	cfg.Server.Port = 3000
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("ANIMDOCS_SERVER__PORT", "9090")
	t.Setenv("ANIMDOCS_BUILD__OUTPUT_DIR", "public_html")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("env override failed: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Build.OutputDir != "public_html" {
		t.Errorf("env override failed: got %q, want public_html", loaded.Build.OutputDir)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ANIMDOCS_SERVER__PORT", "server.port"},
		{"ANIMDOCS_SITE__BASE_URL", "site.base_url"},
		{"ANIMDOCS_LOG__LEVEL", "log.level"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty title", func(c *Config) { c.Site.Title = "" }},
		{"relative base url", func(c *Config) { c.Site.BaseURL = "example.com" }},
		{"relative asset base", func(c *Config) { c.Site.AssetBase = "assets" }},
		{"base path without slash", func(c *Config) { c.Site.BasePath = "docs" }},
		{"base path trailing slash", func(c *Config) { c.Site.BasePath = "/docs/" }},
		{"negative page cache", func(c *Config) { c.Server.PageCacheMB = -1 }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"huge port", func(c *Config) { c.Server.Port = 70000 }},
		{"empty output dir", func(c *Config) { c.Build.OutputDir = "" }},
		{"zero concurrency", func(c *Config) { c.Build.Concurrency = 0 }},
		{"activity without db", func(c *Config) { c.Activity.Enabled = true; c.Activity.DBPath = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"recipes/**", []string{"recipes/**"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
