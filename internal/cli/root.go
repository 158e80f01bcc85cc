// Package cli wires the command-line surface. Each command is a thin
// dispatcher: it parses arguments, calls the store, and prints either
// the rendered result or a plain outcome message.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conorfennell/probtrack/internal/config"
	"github.com/conorfennell/probtrack/internal/storage"
)

// app holds the dependencies shared by every command. The store is
// opened once before the selected command runs and closed after it.
type app struct {
	store *storage.DB
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:   "probtrack",
		Short: "Track practice problems and their solve attempts",
		Long: `probtrack records practice problems (description, link, category,
solving pattern, difficulty), tracks up to three timed solve attempts,
and flags problems for review.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			store, err := storage.Open(cfg.Database)
			if err != nil {
				return err
			}
			slog.Debug("opened database", "path", cfg.Database)
			a.store = store
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.store == nil {
				return
			}
			if err := a.store.Close(); err != nil {
				slog.Warn("failed to close database", "error", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringP("database", "d", "problems.db", "Path to the SQLite database file")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	root.AddCommand(
		a.newAddCmd(),
		a.newShowCmd(),
		a.newListCmd(),
		a.newReviewCmd(),
		a.newByCategoryCmd(),
		a.newByPatternCmd(),
		a.newByDifficultyCmd(),
		a.newSearchCmd(),
		a.newUpdateTimeCmd(),
		a.newToggleReviewCmd(),
		a.newDeleteCmd(),
		a.newStatsCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
