package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"miniblog/internal/api"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the blog server",
	Long:  "Wait for the database to become reachable, then serve the web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The readiness gate inside initServices runs to completion before
		// the listener is opened; if it fails we abort here.
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if cfg.UsesDevSecret() {
			log.Warn("SECRET_KEY is not set, using the development signing key; sessions are forgeable")
		}

		server := api.NewServer(cfg, log, services.Users, services.Sessions, services.Posts)

		serverErr := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			return fmt.Errorf("server error: %w", err)
		case <-sigChan:
			log.Info("shutting down gracefully")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		log.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
