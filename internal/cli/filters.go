package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newByCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-category <category>",
		Short: "List problems by category (exact match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			problems, err := a.store.GetProblemsByCategory(category)
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				fmt.Sprintf("No problems found in category '%s'", category),
				fmt.Sprintf("Problems in Category '%s' (%d)", category, len(problems)))
			return nil
		},
	}
}

func (a *app) newByPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-pattern <pattern>",
		Short: "List problems by solving pattern (exact match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			problems, err := a.store.GetProblemsByPattern(pattern)
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				fmt.Sprintf("No problems found with pattern '%s'", pattern),
				fmt.Sprintf("Problems with Pattern '%s' (%d)", pattern, len(problems)))
			return nil
		},
	}
}

func (a *app) newByDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-difficulty <difficulty>",
		Short: "List problems by difficulty (exact match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty := args[0]
			problems, err := a.store.GetProblemsByDifficulty(difficulty)
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				fmt.Sprintf("No problems found with difficulty '%s'", difficulty),
				fmt.Sprintf("Problems with Difficulty '%s' (%d)", difficulty, len(problems)))
			return nil
		},
	}
}

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search problems by keyword",
		Long: `Search problems whose description, category, pattern or comments
contain the keyword as a substring. Matching is case-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := args[0]
			problems, err := a.store.SearchProblems(keyword)
			if err != nil {
				return err
			}
			printProblems(cmd.OutOrStdout(), problems,
				fmt.Sprintf("No problems found matching '%s'", keyword),
				fmt.Sprintf("Problems matching '%s' (%d)", keyword, len(problems)))
			return nil
		},
	}
}
