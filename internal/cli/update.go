package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/conorfennell/probtrack/internal/domain"
)

func (a *app) newUpdateTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-time <id> <attempt> <minutes>",
		Short: "Record a solve time for one of the three attempts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			attemptNum, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid attempt %q: %w", args[1], err)
			}
			minutes, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[2], err)
			}

			attempt := domain.Attempt(attemptNum)
			if !attempt.Valid() {
				fmt.Fprintln(cmd.OutOrStdout(), "Attempt must be 1, 2, or 3")
				return nil
			}

			affected, err := a.store.UpdateSolveTime(id, attempt, minutes)
			if err != nil {
				return err
			}
			if affected == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Problem with ID %d not found\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Updated problem #%d with attempt %d time: %d minutes\n",
				id, attempt, minutes)
			return nil
		},
	}
}

func (a *app) newToggleReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-review <id>",
		Short: "Toggle a problem's review flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			affected, err := a.store.ToggleReviewFlag(id)
			if err != nil {
				return err
			}
			if affected == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Problem with ID %d not found\n", id)
				return nil
			}

			p, err := a.store.FindProblemByID(id)
			if err != nil {
				return err
			}
			state := "No"
			if p.ShouldSolveAgain {
				state = "Yes"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Problem #%d review flag set to: %s\n", id, state)
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid problem ID %q: %w", arg, err)
	}
	return id, nil
}
