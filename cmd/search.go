package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Filter animations by name or tag",
	Long: `Lists the animations whose name or one of whose tags contains the term,
ignoring case. The term is matched literally, spaces included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := openCatalog(cfg)
		if err != nil {
			return err
		}

		results := catalog.FilterByTerm(c, args[0])
		if len(results) == 0 && !searchJSON {
			fmt.Println("No results found.")
			return nil
		}
		return printRecipes(results, searchJSON)
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(searchCmd)
}
