package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

var (
	showSource bool
	showLang   string
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an animation's details or source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := openCatalog(cfg)
		if err != nil {
			return err
		}
		r, err := getRecipe(c, args[0])
		if err != nil {
			return err
		}

		d := view.NewDetail(r)
		if showLang != "" {
			lang, err := parseLang(showLang)
			if err != nil {
				return err
			}
			d.SelectTab(lang)
		}

		if showSource {
			fmt.Print(d.ActiveSource())
			return nil
		}
		printRecipe(r, d, cfg.Site.BaseURL+cfg.Site.BasePath)
		return nil
	},
}

func printRecipe(r catalog.Recipe, d *view.Detail, siteURL string) {
	fmt.Printf("%s %s\n", titleStyle.Render(r.Name), dimStyle.Render("("+r.ID+")"))
	fmt.Printf("%s\n\n", r.Description)
	if len(r.Tags) > 0 {
		fmt.Printf("%s %s\n\n", headingStyle.Render("Tags:"), strings.Join(r.Tags, ", "))
	}
	printList("Use cases", r.UseCases)
	printList("Performance tips", r.PerformanceTips)
	fmt.Printf("%s %s%s\n\n", headingStyle.Render("Page:"), siteURL, view.DetailPath(r.ID))
	fmt.Println(headingStyle.Render("Files:"))
	for _, t := range d.Tabs() {
		fileName, _ := export.SuggestFileName(r, t.Language)
		line := fmt.Sprintf("  %-10s %s", t.Label, fileName)
		if t.Active {
			line = activeStyle.Render(line + " *")
		}
		fmt.Println(line)
	}
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(headingStyle.Render(title + ":"))
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func init() {
	showCmd.Flags().BoolVar(&showSource, "source", false, "print the source code only")
	showCmd.Flags().StringVar(&showLang, "lang", "", "source language: typescript or javascript")
	rootCmd.AddCommand(showCmd)
}
