package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/staffing-optimizer/internal/optimizer"
	"github.com/jonathan/staffing-optimizer/internal/requirements"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

var optimizeBatchCmd = &cobra.Command{
	Use:   "optimize-batch",
	Short: "Rank contract options for a list of role requirements",
	Long:  "Ranks all staffing contract types for every requirement in a role requirements JSON file (as produced by fetch-requirements), writing one ranking per requirement.",
	RunE:  runOptimizeBatch,
}

var (
	optimizeBatchInput       string
	optimizeBatchOutput      string
	optimizeBatchConcurrency int
)

func init() {
	optimizeBatchCmd.Flags().StringVarP(&optimizeBatchInput, "requirements", "r", "", "Path to input role requirements JSON file (required)")
	optimizeBatchCmd.Flags().StringVarP(&optimizeBatchOutput, "out", "o", "", "Path to output JSON file (required)")
	optimizeBatchCmd.Flags().IntVar(&optimizeBatchConcurrency, "concurrency", 4, "Max concurrent optimizations")

	if err := optimizeBatchCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}
	if err := optimizeBatchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeBatchCmd)
}

// batchEntry is the per-requirement outcome in the batch output file.
type batchEntry struct {
	Index  int                  `json:"index"`
	Result *types.RankedOptions `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func runOptimizeBatch(_ *cobra.Command, _ []string) error {
	reqs, err := requirements.LoadList(optimizeBatchInput)
	if err != nil {
		return fmt.Errorf("failed to load requirements: %w", err)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("requirements file %s contains no requirements", optimizeBatchInput)
	}

	concurrency := optimizeBatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	entries := make([]batchEntry, len(reqs))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range reqs {
		g.Go(func() error {
			ranked, err := optimizer.ComputeRankedOptions(&reqs[i])
			if err != nil {
				entries[i] = batchEntry{Index: i, Error: err.Error()}
				return nil
			}
			entries[i] = batchEntry{Index: i, Result: ranked}
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, entry := range entries {
		if entry.Error == "" {
			succeeded++
		}
	}

	jsonOutput, err := json.MarshalIndent(map[string]interface{}{
		"results":   entries,
		"succeeded": succeeded,
		"failed":    len(entries) - succeeded,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
	}

	if err := writeArtifact(optimizeBatchOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d requirements to %s\n", succeeded, len(reqs), optimizeBatchOutput)
	return nil
}
