package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/server"
	"github.com/ziadkadry99/animdocs/internal/site"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the animation catalog site over HTTP",
	Long: `Starts the catalog site: the home page, one detail page per animation with
TypeScript and JavaScript tabs, downloads, theme switching and a JSON API
under /api/animations. With activity enabled, downloads and copies are
recorded and can be read back from /api/activity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.Server.AllowAllOrigins = serveAllowAll
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		c, err := openCatalog(cfg)
		if err != nil {
			return err
		}
		renderer, err := newRenderer(cfg, c, false)
		if err != nil {
			return err
		}
		recorder, store, closeActivity, err := openActivity(cfg)
		if err != nil {
			return err
		}
		defer closeActivity()

		var cache *site.PageCache
		if cfg.Server.PageCacheMB > 0 {
			if cache, err = site.NewPageCache(int64(cfg.Server.PageCacheMB) << 20); err != nil {
				return err
			}
			defer cache.Close()
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, log)

		mount := func(r chi.Router) {
			site.RegisterRoutes(r, site.RoutesDeps{
				Catalog:   c,
				Renderer:  renderer,
				Recorder:  recorder,
				AssetsDir: cfg.Server.AssetsDir,
				Cache:     cache,
				Log:       log,
			})
			if store != nil {
				activity.RegisterRoutes(r, store)
			}
		}
		if base := cfg.Site.BasePath; base != "" {
			srv.Router().Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, base+"/", http.StatusFound)
			})
			srv.Router().Route(base, mount)
		} else {
			mount(srv.Router())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Serving %d animations at http://localhost:%d%s/\n", c.Len(), cfg.Server.Port, cfg.Site.BasePath)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown failed", zap.Error(err))
				return err
			}
			return nil
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow CORS requests from any origin")
	rootCmd.AddCommand(serveCmd)
}
