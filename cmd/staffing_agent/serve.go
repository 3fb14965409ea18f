package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-optimizer/internal/server"
)

var (
	servePort        int
	serveConcurrency int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking contract options, browsing the catalog, and managing stored analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveConcurrency, "batch-concurrency", 0, "Max concurrent optimizations in batch requests (default: BATCH_CONCURRENCY env or 4)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// DATABASE_URL and BACKEND_URL are optional: without them the server runs
	// with the persistence and backend endpoints disabled.
	concurrency := serveConcurrency
	if concurrency == 0 {
		if raw := os.Getenv("BATCH_CONCURRENCY"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return fmt.Errorf("invalid BATCH_CONCURRENCY: %s", raw)
			}
			concurrency = parsed
		}
	}

	cfg := server.Config{
		Port:             servePort,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		BackendURL:       os.Getenv("BACKEND_URL"),
		BatchConcurrency: concurrency,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
