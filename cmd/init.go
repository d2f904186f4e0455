package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize animdocs configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the catalog site and writes the result to the config file (.animdocs.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
