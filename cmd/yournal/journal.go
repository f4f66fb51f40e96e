package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nhle/yournal/internal/validate"
)

func newJournalCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j"},
		Short:   "Add, list, edit and delete journal entries",
	}

	cmd.AddCommand(
		newJournalAddCmd(c),
		newJournalListCmd(c),
		newJournalShowCmd(c),
		newJournalEditCmd(c),
		newJournalDeleteCmd(c),
		newJournalRenumberCmd(c),
	)
	return cmd
}

func newJournalAddCmd(c *cli) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry numbered after the last one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Entry(title, content, c.cfg.Journal.TitleMaxLength); err != nil {
				return err
			}
			return report(cmd, c.journal.Add(cmd.Context(), title, content))
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "entry content")
	return cmd
}

func newJournalListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries by number",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := c.journal.Entries(cmd.Context())
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries yet.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "DATE", "TITLE")
			for _, e := range entries {
				t.Row(strconv.Itoa(e.Number), e.Date, e.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newJournalShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Print one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			e, res := c.journal.Entry(cmd.Context(), number)
			if !res.OK() {
				return report(cmd, res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n%s\n\n%s\n", e.GetLabel(), e.Date, e.Title, e.Content)
			return nil
		},
	}
}

func newJournalEditCmd(c *cli) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Replace an entry's title and content",
		Long:  "Replace an entry's title and content. A flag left out keeps the current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}

			current, res := c.journal.Entry(cmd.Context(), number)
			if !res.OK() {
				return report(cmd, res)
			}
			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("content") {
				content = current.Content
			}

			if err := validate.Entry(title, content, c.cfg.Journal.TitleMaxLength); err != nil {
				return err
			}
			return report(cmd, c.journal.Edit(cmd.Context(), number, title, content))
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	return cmd
}

func newJournalDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <number>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry and renumber the rest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			return report(cmd, c.journal.Delete(cmd.Context(), number))
		},
	}
}

func newJournalRenumberCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "renumber",
		Short: "Close any gaps in entry numbering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.journal.Renumber(cmd.Context()))
		},
	}
}

func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid entry number %q", arg)
	}
	return n, nil
}

