package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/progress"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// Builder writes the whole site as static files.
type Builder struct {
	Catalog     *catalog.Catalog
	Renderer    *Renderer
	OutputDir   string
	Concurrency int
	// AssetsDir holds preview videos under videos/. They are copied into
	// OutputDir when set; a missing directory is skipped.
	AssetsDir string
	Reporter  progress.Reporter
	Log       *zap.Logger
}

// Build renders every page into OutputDir and returns the number of pages
// written. Each recipe directory also receives both exported sources.
func (b *Builder) Build(ctx context.Context) (int, error) {
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}
	reporter := b.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := os.MkdirAll(filepath.Join(b.OutputDir, "static"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	assets := map[string]string{
		"static/style.css": b.Renderer.Stylesheet(),
		"static/code.css":  b.Renderer.CodeStylesheet(),
		"static/script.js": b.Renderer.Script(),
	}
	for rel, content := range assets {
		if err := os.WriteFile(filepath.Join(b.OutputDir, filepath.FromSlash(rel)), []byte(content), 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", rel, err)
		}
	}

	if err := WriteSearchIndex(BuildSearchIndex(b.Catalog), filepath.Join(b.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if b.AssetsDir != "" {
		n, err := copyVideos(b.AssetsDir, b.OutputDir)
		if err != nil {
			return 0, fmt.Errorf("copying preview videos: %w", err)
		}
		log.Debug("copied preview videos", zap.Int("count", n))
	}

	if err := b.writePage("404.html", func(f *os.File) error { return b.Renderer.NotFound(f) }); err != nil {
		return 0, err
	}

	recipes := b.Catalog.All()
	total := len(recipes) + 1
	reporter.Start(total)
	defer reporter.Finish()

	var done atomic.Int64
	step := func(name string) {
		reporter.Update(int(done.Add(1)), name)
	}

	if err := b.writePage("index.html", func(f *os.File) error { return b.Renderer.Home(f, view.Theme{}) }); err != nil {
		return 0, err
	}
	step("index.html")

	limit := b.Concurrency
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, r := range recipes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.buildRecipe(r); err != nil {
				return fmt.Errorf("building %s: %w", r.ID, err)
			}
			log.Debug("built recipe page", zap.String("id", r.ID))
			step(r.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	log.Info("site built",
		zap.String("output", b.OutputDir),
		zap.Int("pages", total),
	)
	return total, nil
}

// buildRecipe writes animation/{id}/index.html and the exported sources
// next to it.
func (b *Builder) buildRecipe(r catalog.Recipe) error {
	dir := filepath.Join("animation", r.ID)
	if err := os.MkdirAll(filepath.Join(b.OutputDir, dir), 0o755); err != nil {
		return err
	}

	detail := view.NewDetail(r)
	if err := b.writePage(filepath.Join(dir, "index.html"), func(f *os.File) error {
		return b.Renderer.Detail(f, detail, nil, view.Theme{})
	}); err != nil {
		return err
	}

	saver := &export.DirSaver{Dir: filepath.Join(b.OutputDir, dir), Overwrite: true}
	for _, lang := range catalog.Languages() {
		if _, err := export.ExportToFile(r, lang, saver); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writePage(rel string, render func(*os.File) error) error {
	path := filepath.Join(b.OutputDir, rel)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	return f.Close()
}

// copyVideos copies src/videos/** to dst/videos and returns the file count.
func copyVideos(src, dst string) (int, error) {
	fsys := os.DirFS(src)
	if _, err := fs.Stat(fsys, "videos"); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	matches, err := doublestar.Glob(fsys, "videos/**", doublestar.WithFilesOnly())
	if err != nil {
		return 0, err
	}
	for _, m := range matches {
		if err := copyFile(fsys, m, filepath.Join(dst, filepath.FromSlash(m))); err != nil {
			return 0, err
		}
	}
	return len(matches), nil
}

func copyFile(fsys fs.FS, name, target string) error {
	in, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
