package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-optimizer/internal/upstream"
)

var fetchRequirementsCmd = &cobra.Command{
	Use:   "fetch-requirements",
	Short: "Fetch role requirements from the analysis backend",
	Long:  "Fetches recruitment recommendations from the RFP analysis backend and converts them into a role requirements JSON file usable as optimize input.",
	RunE:  runFetchRequirements,
}

var (
	fetchBackendURL  string
	fetchAnalysisID  string
	fetchOutput      string
	fetchTimeoutSecs int
)

func init() {
	fetchRequirementsCmd.Flags().StringVarP(&fetchBackendURL, "backend-url", "b", "", "Analysis backend base URL (default: BACKEND_URL env)")
	fetchRequirementsCmd.Flags().StringVarP(&fetchAnalysisID, "analysis-id", "a", "", "Analysis to fetch recommendations for (default: latest)")
	fetchRequirementsCmd.Flags().StringVarP(&fetchOutput, "out", "o", "", "Path to output role requirements JSON file (required)")
	fetchRequirementsCmd.Flags().IntVar(&fetchTimeoutSecs, "timeout", 30, "Backend request timeout in seconds")

	if err := fetchRequirementsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(fetchRequirementsCmd)
}

func runFetchRequirements(_ *cobra.Command, _ []string) error {
	backendURL := fetchBackendURL
	if backendURL == "" {
		backendURL = os.Getenv("BACKEND_URL")
	}
	if backendURL == "" {
		return fmt.Errorf("a backend URL is required (--backend-url or BACKEND_URL)")
	}

	opts := upstream.DefaultOptions()
	if fetchTimeoutSecs > 0 {
		opts.Timeout = time.Duration(fetchTimeoutSecs) * time.Second
	}

	client, err := upstream.NewClient(backendURL, opts)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	response, err := client.FetchRecommendations(ctx, fetchAnalysisID)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	reqs := upstream.ToRequirements(response)
	if len(reqs) == 0 {
		return fmt.Errorf("backend returned no recruitment recommendations")
	}

	jsonOutput, err := json.MarshalIndent(map[string]interface{}{
		"requirements": reqs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal requirements to JSON: %w", err)
	}

	if err := writeArtifact(fetchOutput, jsonOutput); err != nil {
		return err
	}

	validateOutputSchema("schemas/role_requirements.schema.json", fetchOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Fetched %d role requirements to %s\n", len(reqs), fetchOutput)
	return nil
}
