package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-optimizer/internal/config"
	"github.com/jonathan/staffing-optimizer/internal/observability"
	"github.com/jonathan/staffing-optimizer/internal/optimizer"
	"github.com/jonathan/staffing-optimizer/internal/requirements"
	"github.com/jonathan/staffing-optimizer/internal/schemas"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rank contract options for a role requirement",
	Long:  "Deterministically ranks all staffing contract types for a role requirement by fully-loaded project cost, producing a RankedOptions JSON sorted ascending.",
	RunE:  runOptimize,
}

var (
	optimizeRequirement string
	optimizeOutput      string
	optimizeConfig      string
	optimizeVerbose     bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeRequirement, "requirement", "r", "", "Path to input RoleRequirement JSON file")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "out", "o", "", "Path to output RankedOptions JSON file")
	optimizeCmd.Flags().StringVarP(&optimizeConfig, "config", "c", "", "Path to optional JSON config file providing flag defaults")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print formatted requirement and ranking summaries")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Requirements: optimizeRequirement,
		Output:       optimizeOutput,
		Verbose:      optimizeVerbose,
	}

	// Config file values fill in flags the user left empty.
	if optimizeConfig != "" {
		fileCfg, err := config.LoadConfig(optimizeConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Requirements == "" {
		return fmt.Errorf("a requirement file is required (--requirement or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("an output path is required (--out or config)")
	}

	requirement, err := requirements.Load(cfg.Requirements)
	if err != nil {
		return fmt.Errorf("failed to load requirement: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintRequirement(requirement)
	}

	ranked, err := optimizer.ComputeRankedOptions(requirement)
	if err != nil {
		return fmt.Errorf("failed to rank contract options: %w", err)
	}

	if cfg.Verbose {
		printer.PrintRankedOptions(ranked)
		printer.PrintRecommendation(ranked)
	}

	jsonOutput, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked options to JSON: %w", err)
	}

	if err := writeArtifact(cfg.Output, jsonOutput); err != nil {
		return err
	}

	// Output validation is a safety check, not a requirement.
	if !cfg.SkipOutputSchema {
		validateOutputSchema("schemas/ranked_options.schema.json", cfg.Output)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d contract options to %s (recommended: %s)\n",
		len(ranked.Options), cfg.Output, ranked.Options[0].Type)

	return nil
}

// writeArtifact writes JSON output, creating the parent directory if needed.
func writeArtifact(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateOutputSchema validates a written artifact against its schema when
// the schema file can be located. Failures warn but never fail the command.
func validateOutputSchema(schemaRelPath, outputPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
