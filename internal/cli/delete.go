package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// confirmDelete asks the user to approve deleting the given problem.
// It reads one line and accepts a case-insensitive "y"; anything else,
// including EOF, declines. The prompt lives here so the store stays
// free of any stdin interaction.
func confirmDelete(in io.Reader, out io.Writer, id int64) bool {
	fmt.Fprintf(out, "Are you sure you want to delete problem #%d? [y/N]\n", id)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func (a *app) newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force && !confirmDelete(cmd.InOrStdin(), cmd.OutOrStdout(), id) {
				fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
				return nil
			}

			affected, err := a.store.DeleteProblem(id)
			if err != nil {
				return err
			}
			if affected == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Problem with ID %d not found\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted problem #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
