// mockapi serves the todo backend's REST contract from memory for local development.
package main

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

	"github.com/mmcdole/todoadmin/internal/adapter"
	"github.com/mmcdole/todoadmin/internal/mockapi"
)

const shutdownTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	var addr, token, logLevel string
	var empty bool

	cmd := &cobra.Command{
		Use:           "mockapi",
		Short:         "In-memory todo backend for local development",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := adapter.NewLogger(os.Stderr, logLevel)

			srv := mockapi.New(token, logger)
			if !empty {
				srv.Seed()
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serving mock API", "addr", addr, "prefix", mockapi.APIPrefix, "auth", token != "")
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:3900", "listen address")
	cmd.Flags().StringVarP(&token, "token", "t", "", "require this x-auth-token on every request")
	cmd.Flags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().BoolVar(&empty, "empty", false, "start without seed data")

	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
