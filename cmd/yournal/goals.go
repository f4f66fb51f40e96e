package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/yournal/internal/validate"
)

func newGoalsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goals",
		Aliases: []string{"g"},
		Short:   "Track self goals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <description>",
			Short: "Add a goal",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				description := strings.Join(args, " ")
				if err := validate.Goal(description); err != nil {
					return err
				}
				return report(cmd, c.goals.Add(cmd.Context(), description))
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List goals in the order they were added",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				goals := c.goals.List(cmd.Context())
				if len(goals) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No goals yet.")
					return nil
				}
				for _, g := range goals {
					mark := " "
					if g.Completed {
						mark = "x"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d. %s\n", mark, g.ID, g.Description)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "done <id>",
			Short: "Mark a goal complete",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || id < 1 {
					return fmt.Errorf("invalid goal id %q", args[0])
				}
				return report(cmd, c.goals.Complete(cmd.Context(), id))
			},
		},
	)
	return cmd
}
