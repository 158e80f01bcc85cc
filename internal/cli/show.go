package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conorfennell/probtrack/internal/domain"
	"github.com/conorfennell/probtrack/internal/render"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a specific problem by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.store.FindProblemByID(id)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Problem with ID %d not found\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Problem(*p))
			return nil
		},
	}
}
