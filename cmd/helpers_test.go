package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/config"
	"github.com/ziadkadry99/animdocs/internal/view"
)

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("build:\n  concurrency: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := cfgFile
	cfgFile = path
	defer func() { cfgFile = old }()

	if _, err := loadConfig(); err == nil || !strings.Contains(err.Error(), "concurrency") {
		t.Errorf("loadConfig error = %v", err)
	}
}

func TestParseLang(t *testing.T) {
	if _, err := parseLang("javascript"); err != nil {
		t.Errorf("javascript: %v", err)
	}
	if _, err := parseLang("python"); err == nil {
		t.Error("python accepted")
	}
}

func TestOpenActivityDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	rec, store, closeFn, err := openActivity(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if store != nil {
		t.Error("disabled activity returned a store")
	}
	if _, ok := rec.(activity.Nop); !ok {
		t.Errorf("recorder = %T, want activity.Nop", rec)
	}
}

func TestOpenActivityEnabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Activity.Enabled = true
	cfg.Activity.DBPath = filepath.Join(t.TempDir(), "nested", "activity.db")

	rec, store, closeFn, err := openActivity(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if store == nil {
		t.Fatal("enabled activity returned no store")
	}
	if err := rec.Record(context.Background(), activity.Event{
		Kind:     activity.KindExport,
		RecipeID: "progress-bar",
		Language: "typescript",
		Origin:   activity.OriginCLI,
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	events, err := store.Query(context.Background(), activity.QueryFilter{})
	if err != nil || len(events) != 1 {
		t.Errorf("Query = %v, %v", events, err)
	}
}

func TestNewRendererUsesIntroFile(t *testing.T) {
	intro := filepath.Join(t.TempDir(), "intro.md")
	if err := os.WriteFile(intro, []byte("## Custom welcome\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Site.IntroFile = intro

	c, err := openCatalog(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r, err := newRenderer(cfg, c, false)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Home(&buf, view.Theme{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Custom welcome") {
		t.Error("home page does not show the intro file")
	}
}
