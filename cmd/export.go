package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

var (
	exportLang  string
	exportDir   string
	exportForce bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Save an animation's source file to disk",
	Long: `Writes the TypeScript (default) or JavaScript source of an animation to a
file named after the component, e.g. FadeInView.tsx. An existing file is
only replaced after confirmation or with --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
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
		r, err := getRecipe(c, args[0])
		if err != nil {
			return err
		}
		d := view.NewDetail(r)
		if exportLang != "" {
			lang, err := parseLang(exportLang)
			if err != nil {
				return err
			}
			d.SelectTab(lang)
		}

		recorder, _, closeActivity, err := openActivity(cfg)
		if err != nil {
			return err
		}
		defer closeActivity()

		fileName, err := d.Export(export.DirSaver{Dir: exportDir, Overwrite: exportForce})
		if errors.Is(err, export.ErrExists) {
			if !confirmOverwrite(filepath.Join(exportDir, d.FileName())) {
				fmt.Println("Export cancelled.")
				return nil
			}
			fileName, err = d.Export(export.DirSaver{Dir: exportDir, Overwrite: true})
		}

		event := activity.Event{
			Kind:     activity.KindExport,
			RecipeID: r.ID,
			Language: string(d.ActiveTab()),
			FileName: fileName,
			Origin:   activity.OriginCLI,
		}
		if err != nil {
			event.Error = err.Error()
		}
		if recErr := recorder.Record(cmd.Context(), event); recErr != nil {
			log.Warn("recording activity", zap.Error(recErr))
		}
		if err != nil {
			return fmt.Errorf("exporting %s: %w", r.ID, err)
		}

		fmt.Printf("Saved %s\n", filepath.Join(exportDir, fileName))
		return nil
	},
}

func confirmOverwrite(path string) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s exists. Overwrite", path),
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

func init() {
	exportCmd.Flags().StringVar(&exportLang, "lang", "", "source language: typescript (default) or javascript")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "directory to write the file into")
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false, "overwrite an existing file without asking")
	rootCmd.AddCommand(exportCmd)
}
