package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conorfennell/probtrack/internal/domain"
)

func (a *app) newAddCmd() *cobra.Command {
	var (
		link       string
		category   string
		pattern    string
		difficulty string
		timeFirst  int64
		comments   string
		review     bool
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.Problem{
				Description:      args[0],
				ShouldSolveAgain: review,
			}

			// A flag left unset stays NULL; an explicitly empty value is
			// stored as an empty string. The two are distinct.
			flags := cmd.Flags()
			if flags.Changed("link") {
				p.Link = sql.NullString{String: link, Valid: true}
			}
			if flags.Changed("category") {
				p.Category = sql.NullString{String: category, Valid: true}
			}
			if flags.Changed("pattern") {
				p.Pattern = sql.NullString{String: pattern, Valid: true}
			}
			if flags.Changed("difficulty") {
				p.Difficulty = sql.NullString{String: difficulty, Valid: true}
			}
			if flags.Changed("time") {
				p.TimeToSolve1st = sql.NullInt64{Int64: timeFirst, Valid: true}
			}
			if flags.Changed("comments") {
				p.Comments = sql.NullString{String: comments, Valid: true}
			}

			id, err := a.store.InsertProblem(p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added problem with ID: %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&link, "link", "l", "", "Problem link")
	cmd.Flags().StringVarP(&category, "category", "C", "", "Problem category")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Problem pattern")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "D", "", "Problem difficulty")
	cmd.Flags().Int64VarP(&timeFirst, "time", "t", 0, "Time to solve (first attempt) in minutes")
	cmd.Flags().StringVarP(&comments, "comments", "c", "", "Comments about the problem")
	cmd.Flags().BoolVarP(&review, "review", "r", false, "Flag the problem for review")

	return cmd
}
