// Package main provides the entry point for the staffing optimizer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staffing_agent",
	Short: "Staffing contract cost optimizer",
	Long:  "Staffing optimizer ranks staffing contract types by fully-loaded project cost for role requirements derived from RFP analysis, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
