package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"legaldesk/internal/app/server"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP console",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if addr != "" {
			cfg.Server.RunAddress = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides RUN_ADDRESS")
}
