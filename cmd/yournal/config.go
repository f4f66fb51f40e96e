package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/yournal/internal/model"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipStoreAnnotation: "",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(c.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", c.cfgFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := model.SaveConfig(c.cfgFile, c.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", c.cfgFile)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.store.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file:      %s\n", c.cfgFile)
			fmt.Fprintf(out, "database:         %s (schema v%d)\n", c.cfg.Database.Path, v)
			fmt.Fprintf(out, "log level:        %s\n", c.cfg.Log.Level)
			fmt.Fprintf(out, "log file:         %s\n", c.cfg.Log.File)
			fmt.Fprintf(out, "web address:      %s\n", c.cfg.Web.Addr)
			fmt.Fprintf(out, "title max length: %d\n", c.cfg.Journal.TitleMaxLength)
			fmt.Fprintf(out, "theme:            %s\n", c.cfg.Display.Theme)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
