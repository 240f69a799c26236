// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/config"
	"github.com/thatcatcamp/huekit/internal/db"
	"github.com/thatcatcamp/huekit/internal/handlers"
	"github.com/thatcatcamp/huekit/internal/logging"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Run the huekit HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}
		defaults, err := config.Theme()
		if err != nil {
			fail(err)
		}

		gin.SetMode(gin.ReleaseMode)
		api := handlers.New(db.GetDB(), defaults)
		router, stop := handlers.NewRouter(api, handlers.RouterOptions{
			RateLimit: config.GetInt("server.rate_limit"),
		})
		defer stop()

		addr := fmt.Sprintf(":%d", config.GetInt("server.http_port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		log := logging.Component("server")
		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", addr).Msg("listening")
			errCh <- server.ListenAndServe()
		}()
		fmt.Printf("Starting HTTP server on %s\n", addr)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				fail(fmt.Errorf("server error: %w", err))
			}
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
			defer done()
			if err := server.Shutdown(shutdownCtx); err != nil {
				fail(fmt.Errorf("shutdown: %w", err))
			}
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
