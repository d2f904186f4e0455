package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "animdocs",
	Short: "Browse, search and export React Native animation recipes",
	Long: `animdocs serves a catalog of React Native animation components as a
documentation site. Each recipe ships TypeScript and JavaScript sources that
can be read with syntax highlighting, copied or downloaded. The same catalog
is available from the command line, as a static site build and to AI agents
over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
