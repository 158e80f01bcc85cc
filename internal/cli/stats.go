package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tracked problem statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.store.GetStats()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Statistics")
			fmt.Fprintln(out, "----------")
			fmt.Fprintf(out, "Total problems:     %d\n", stats.TotalProblems)
			fmt.Fprintf(out, "Flagged for review: %d\n", stats.NeedReview)
			fmt.Fprintf(out, "Attempted:          %d\n", stats.Attempted)

			printBreakdown(out, "By difficulty:", stats.CountByDifficulty)
			printBreakdown(out, "By category:", stats.CountByCategory)
			return nil
		},
	}
}

func printBreakdown(out io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Fprintf(out, "\n%s\n", title)
	for _, label := range labels {
		fmt.Fprintf(out, "  %s: %d\n", label, counts[label])
	}
}
