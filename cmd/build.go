package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/progress"
	"github.com/ziadkadry99/animdocs/internal/site"
)

var (
	buildOutput      string
	buildConcurrency int
	buildQuiet       bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the catalog as a static website",
	Long: `Renders every page of the catalog to plain HTML, CSS and JavaScript that can
be served from any static host. Each animation directory also receives its
TypeScript and JavaScript source files so download links work without a
server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.Build.OutputDir = buildOutput
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Build.Concurrency = buildConcurrency
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
		renderer, err := newRenderer(cfg, c, true)
		if err != nil {
			return err
		}

		var reporter progress.Reporter = progress.Nop{}
		if !buildQuiet {
			reporter = progress.NewReporter()
		}

		b := &site.Builder{
			Catalog:     c,
			Renderer:    renderer,
			OutputDir:   cfg.Build.OutputDir,
			Concurrency: cfg.Build.Concurrency,
			AssetsDir:   cfg.Server.AssetsDir,
			Reporter:    reporter,
			Log:         log,
		}
		pages, err := b.Build(cmd.Context())
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Printf("Static site generated: %s (%d pages)\n", cfg.Build.OutputDir, pages)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "dist", "output directory")
	buildCmd.Flags().IntVarP(&buildConcurrency, "concurrency", "j", 4, "number of pages rendered in parallel")
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "suppress the progress bar")
	rootCmd.AddCommand(buildCmd)
}
