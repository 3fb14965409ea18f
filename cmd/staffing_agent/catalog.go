package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-optimizer/internal/catalog"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the contract catalog for a seniority level",
	Long:  "Prints the unadjusted contract options (costs, availability, duration bounds) for a seniority level as JSON, without any project-specific ranking adjustments.",
	RunE:  runCatalog,
}

var (
	catalogLevel  string
	catalogOutput string
)

func init() {
	catalogCmd.Flags().StringVarP(&catalogLevel, "level", "l", "", "Seniority level: junior, mid_level, senior, or expert (required)")
	catalogCmd.Flags().StringVarP(&catalogOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := catalogCmd.MarkFlagRequired("level"); err != nil {
		panic(fmt.Sprintf("failed to mark level flag as required: %v", err))
	}

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	level := types.SeniorityLevel(catalogLevel)
	if !catalog.KnownLevel(level) {
		return fmt.Errorf("unknown seniority level: %s", catalogLevel)
	}

	options := catalog.BuildOptions(level)

	jsonOutput, err := json.MarshalIndent(map[string]interface{}{
		"level":   level,
		"options": options,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to JSON: %w", err)
	}

	if catalogOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeArtifact(catalogOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d contract options for %s to %s\n", len(options), level, catalogOutput)
	return nil
}
