package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/sqlgate/internal/config"
	"github.com/michaelbrown/sqlgate/internal/sandbox"
	"github.com/michaelbrown/sqlgate/internal/server"
	"github.com/michaelbrown/sqlgate/internal/validate"
)

var portFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sqlgate validation server",
	Long: `Start the sqlgate HTTP server.

POST /api/validate takes {"sql": ..., "seed_sql": ...} and answers with a
verdict. GET /api/validate/ws serves the same contract over a WebSocket.

Examples:
  sqlgate serve
  sqlgate serve --port 9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	svc := validate.New(sandbox.NewSQLiteSandbox(cfg.Policy()))

	// Determine port
	port := cfg.Server.Port
	if portFlag > 0 {
		port = portFlag
	}

	srv := server.New(cfg, svc)

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		srv.Shutdown(context.Background())
	}()

	return srv.Start(port)
}
