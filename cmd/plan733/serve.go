package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			addr, _ := cmd.Flags().GetString("address")
			if addr == "" {
				addr = a.settings.Server.Address
			}

			srv := server.New(server.Config{
				Engine:     a.engine,
				Bonus:      a.product.Bonus,
				Product:    a.product.Name,
				HandoffTTL: a.settings.Server.HandoffTTL,
				Logger:     a.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe(addr) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down", zap.String("address", addr))
			if err := srv.Shutdown(); err != nil {
				return err
			}
			return <-errCh
		},
	}
	cmd.Flags().String("address", "", "Listen address (default from settings, then "+config.DefaultServerAddress+")")
	return cmd
}
