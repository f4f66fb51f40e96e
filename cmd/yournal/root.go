package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/yournal/internal/app"
	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/logging"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/store"
	"github.com/nhle/yournal/internal/theme"
)

// skipStoreAnnotation marks commands that run without opening the
// database.
const skipStoreAnnotation = "yournal/skip-store"

// cli holds the command tree and what its persistent hook opens for the
// running command.
type cli struct {
	root *cobra.Command

	cfgFile string
	dbPath  string

	cfg     *model.AppConfig
	store   *store.SQLiteStore
	logs    io.Closer
	journal *journal.Journal
	goals   *journal.Goals
}

func newCLI() *cli {
	c := &cli{}
	c.root = newRootCmd(c)
	return c
}

// execute runs the command line and always releases the store and log
// file, even when the command failed.
func (c *cli) execute(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	return errors.Join(err, c.close())
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yournal",
		Short: "A personal journal with self goals.",
		Long: `Yournal keeps numbered journal entries and a list of self goals in a
local SQLite database. Entry numbers stay contiguous: deleting one
renumbers the rest.

Running without a subcommand launches the terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(
				app.New(c.journal, c.goals, c.cfg.Journal.TitleMaxLength),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", model.DefaultConfigPath(), "config file")
	cmd.PersistentFlags().StringVar(&c.dbPath, "db", "", "database file (overrides database.path)")

	cmd.AddCommand(newJournalCmd(c))
	cmd.AddCommand(newGoalsCmd(c))
	cmd.AddCommand(newServeCmd(c))
	cmd.AddCommand(newConfigCmd(c))

	return cmd
}

// open loads config, sets up logging and opens the store unless cmd is
// annotated with skipStoreAnnotation. The terminal UI owns the screen, so
// it always logs to a file.
func (c *cli) open(cmd *cobra.Command) error {
	tui := cmd.Root() == cmd
	cfg, err := model.LoadConfig(c.cfgFile)
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		cfg.Database.Path = c.dbPath
	}
	if tui && cfg.Log.File == "" {
		cfg.Log.File = model.DefaultLogPath()
	}
	c.cfg = cfg

	if err := theme.Apply(cfg.Display.Theme); err != nil {
		return err
	}

	c.logs, err = logging.Setup(cfg.Log)
	if err != nil {
		return err
	}

	if _, skip := cmd.Annotations[skipStoreAnnotation]; skip {
		return nil
	}

	c.store, err = store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logging.L.Error("opening database", "path", cfg.Database.Path, "err", err)
		return fmt.Errorf("opening database: %w", err)
	}
	logging.L.Debug("database ready", "path", cfg.Database.Path)

	c.journal = journal.New(c.store, nil)
	c.goals = journal.NewGoals(c.store, nil)
	return nil
}

func (c *cli) close() error {
	var errs []error
	if c.store != nil {
		errs = append(errs, c.store.Close())
		c.store = nil
	}
	if c.logs != nil {
		errs = append(errs, c.logs.Close())
		c.logs = nil
	}
	return errors.Join(errs...)
}

// report prints a successful Result or turns a failed one into the
// command's error.
func report(cmd *cobra.Command, res journal.Result) error {
	if !res.OK() {
		return errors.New(res.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
