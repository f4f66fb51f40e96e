package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nhle/yournal/internal/web"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal and goals over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Web.Addr
			}
			if c.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			srv, err := web.New(c.journal, c.goals, c.cfg.Journal.TitleMaxLength, nil)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from web.addr)")
	return cmd
}
