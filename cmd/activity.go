package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/animdocs/internal/activity"
)

var (
	activityRecipe string
	activityKind   string
	activityOrigin string
	activitySince  time.Duration
	activityLimit  int
	activityCounts bool
	activityJSON   bool
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recorded downloads, copies and exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, store, closeActivity, err := openActivity(cfg)
		if err != nil {
			return err
		}
		defer closeActivity()
		if store == nil {
			return errors.New("activity log is disabled\nSet activity.enabled: true in the config file")
		}

		if activityCounts {
			kind := activity.Kind(activityKind)
			if kind == "" {
				kind = activity.KindDownload
			}
			counts, err := store.Counts(cmd.Context(), kind)
			if err != nil {
				return err
			}
			return printCounts(kind, counts)
		}

		filter := activity.QueryFilter{
			RecipeID: activityRecipe,
			Kind:     activity.Kind(activityKind),
			Origin:   activity.Origin(activityOrigin),
			Limit:    activityLimit,
		}
		if activitySince > 0 {
			since := time.Now().Add(-activitySince)
			filter.Since = &since
		}
		events, err := store.Query(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if activityJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(events)
		}
		if len(events) == 0 {
			fmt.Println("No activity recorded.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tKIND\tID\tLANGUAGE\tORIGIN\tERROR")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.Timestamp.Local().Format(time.DateTime), e.Kind, e.RecipeID, e.Language, e.Origin, e.Error)
		}
		return w.Flush()
	},
}

func printCounts(kind activity.Kind, counts map[string]int) error {
	if len(counts) == 0 {
		fmt.Printf("No successful %s events recorded.\n", kind)
		return nil
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%sS\n", strings.ToUpper(string(kind)))
	for _, id := range ids {
		fmt.Fprintf(w, "%s\t%d\n", id, counts[id])
	}
	return w.Flush()
}

func init() {
	activityCmd.Flags().StringVar(&activityRecipe, "recipe", "", "only events for this animation id")
	activityCmd.Flags().StringVar(&activityKind, "kind", "", "only events of this kind: download, copy or export")
	activityCmd.Flags().StringVar(&activityOrigin, "origin", "", "only events from this surface: web, cli or mcp")
	activityCmd.Flags().DurationVar(&activitySince, "since", 0, "only events newer than this, e.g. 24h")
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 50, "maximum number of events")
	activityCmd.Flags().BoolVar(&activityCounts, "counts", false, "show per-animation totals of successful events")
	activityCmd.Flags().BoolVar(&activityJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(activityCmd)
}
