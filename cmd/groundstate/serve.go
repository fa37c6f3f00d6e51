package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/api"
)

// serveCmd exposes the builder over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Hamiltonian builder over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, cleanup := newBuilder()
		defer cleanup()

		srv := api.NewServer(builder, logger, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		logger.Info("starting groundstate API",
			zap.String("port", cfg.Port),
			zap.String("driver_url", cfg.DriverURL))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}
