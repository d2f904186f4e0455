package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/config"
	"github.com/ziadkadry99/animdocs/internal/db"
	"github.com/ziadkadry99/animdocs/internal/logging"
	"github.com/ziadkadry99/animdocs/internal/site"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `animdocs init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := string(cfg.Log.Level)
	if verbose {
		level = string(config.LogDebug)
	}
	return logging.New(level, cfg.Log.Development)
}

// openCatalog loads the built-in recipes plus the configured directories.
func openCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.Open(cfg.Catalog.Dirs, cfg.Catalog.Include)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// openActivity opens the activity log. With the log disabled it returns a
// Nop recorder and a nil store.
func openActivity(cfg *config.Config) (activity.Recorder, *activity.Store, func(), error) {
	if !cfg.Activity.Enabled {
		return activity.Nop{}, nil, func() {}, nil
	}
	database, err := db.Open(cfg.Activity.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening activity log: %w", err)
	}
	store := activity.NewStore(database)
	return store, store, func() { database.Close() }, nil
}

// newRenderer creates the page renderer from the site settings.
func newRenderer(cfg *config.Config, c *catalog.Catalog, static bool) (*site.Renderer, error) {
	opts := site.Options{
		Site: view.SiteInfo{
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
			BaseURL:     cfg.Site.BaseURL,
		},
		BasePath:  cfg.Site.BasePath,
		AssetBase: cfg.Site.AssetBase,
		Static:    static,
	}
	if !static && cfg.Activity.Enabled {
		opts.EventsURL = cfg.Site.BasePath + "/api/events/copy"
	}
	if cfg.Site.IntroFile != "" {
		intro, err := os.ReadFile(cfg.Site.IntroFile)
		if err != nil {
			return nil, fmt.Errorf("reading intro: %w", err)
		}
		opts.Intro = intro
	}
	return site.NewRenderer(c, opts)
}

// parseLang validates a --lang flag value.
func parseLang(v string) (catalog.Language, error) {
	lang, err := catalog.ParseLanguage(v)
	if err != nil {
		return "", fmt.Errorf("--lang: %w (want %s or %s)", err, catalog.TypeScript, catalog.JavaScript)
	}
	return lang, nil
}

// getRecipe looks up id with a hint on failure.
func getRecipe(c *catalog.Catalog, id string) (catalog.Recipe, error) {
	r, err := c.Get(id)
	if err != nil {
		return catalog.Recipe{}, fmt.Errorf("%w\nRun `animdocs list` to see available ids", err)
	}
	return r, nil
}
