package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

var copyLang string

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy an animation's source to the clipboard",
	Args:  cobra.ExactArgs(1),
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
		if copyLang != "" {
			lang, err := parseLang(copyLang)
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

		copied := d.Copy(export.SystemClipboard{}, log)
		event := activity.Event{
			Kind:     activity.KindCopy,
			RecipeID: r.ID,
			Language: string(d.ActiveTab()),
			Origin:   activity.OriginCLI,
		}
		if !copied {
			event.Error = "clipboard unavailable"
		}
		if recErr := recorder.Record(cmd.Context(), event); recErr != nil {
			log.Warn("recording activity", zap.Error(recErr))
		}
		if !copied {
			return errors.New("could not copy to the clipboard")
		}

		fmt.Printf("Copied %s to the clipboard\n", d.FileName())
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVar(&copyLang, "lang", "", "source language: typescript (default) or javascript")
	rootCmd.AddCommand(copyCmd)
}
