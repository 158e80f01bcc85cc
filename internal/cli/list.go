package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conorfennell/probtrack/internal/domain"
	"github.com/conorfennell/probtrack/internal/render"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := a.store.GetAllProblems()
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				"No problems found",
				fmt.Sprintf("All Problems (%d)", len(problems)))
			return nil
		},
	}
}

func (a *app) newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "List problems that need review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := a.store.GetProblemsToReview()
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				"No problems to review",
				fmt.Sprintf("Problems to Review (%d)", len(problems)))
			return nil
		},
	}
}

// printProblems prints the header followed by one blank-line-separated
// block per problem, or the empty message when there are none.
func printProblems(out io.Writer, problems []domain.Problem, empty, header string) {
	if len(problems) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	fmt.Fprintln(out, header)
	for _, p := range problems {
		fmt.Fprintf(out, "\n%s\n", render.Problem(p))
	}
}
