package server

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/staffing-optimizer/internal/catalog"
	"github.com/jonathan/staffing-optimizer/internal/optimizer"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// BatchOptimizeRequest carries multiple role requirements to rank in one call.
type BatchOptimizeRequest struct {
	Requirements []types.RoleRequirement `json:"requirements"`
}

// BatchOptimizeResult is the per-requirement outcome inside a batch response.
// Exactly one of Result or Error is set.
type BatchOptimizeResult struct {
	Index  int                  `json:"index"`
	Result *types.RankedOptions `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// BatchOptimizeResponse is the envelope for batch ranking.
type BatchOptimizeResponse struct {
	Results   []BatchOptimizeResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// handleOptimize ranks contract options for a single role requirement.
// With ?save=true and a configured database the result is persisted and its
// analysis ID is returned alongside the ranking.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req types.RoleRequirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ranked, err := optimizer.ComputeRankedOptions(&req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if r.URL.Query().Get("save") == "true" {
		if s.db == nil {
			errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), ranked, "api")
		if err != nil {
			log.Printf("failed to save analysis: %v", err)
			errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
			return
		}
		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"analysis_id": id,
			"ranking":     ranked,
		})
		return
	}

	jsonResponse(w, http.StatusOK, ranked)
}

// handleOptimizeBatch ranks several requirements concurrently. Results keep
// the input order; a bad requirement fails its own slot without aborting the
// rest of the batch.
func (s *Server) handleOptimizeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchOptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Requirements) == 0 {
		errorResponse(w, http.StatusBadRequest, "requirements must not be empty")
		return
	}

	results := make([]BatchOptimizeResult, len(req.Requirements))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(s.batchLimit)
	for i := range req.Requirements {
		g.Go(func() error {
			ranked, err := optimizer.ComputeRankedOptions(&req.Requirements[i])
			if err != nil {
				results[i] = BatchOptimizeResult{Index: i, Error: err.Error()}
				return nil
			}
			results[i] = BatchOptimizeResult{Index: i, Result: ranked}
			return nil
		})
	}
	// Workers never return errors; Wait is for completion only.
	_ = g.Wait()

	resp := BatchOptimizeResponse{Results: results}
	for _, res := range results {
		if res.Error != "" {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}

	jsonResponse(w, http.StatusOK, resp)
}

// handleCatalog returns the unadjusted contract options for a seniority level.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	level := types.SeniorityLevel(r.PathValue("level"))
	if !catalog.KnownLevel(level) {
		errorResponse(w, http.StatusBadRequest, "unknown seniority level: "+string(level))
		return
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"level":   level,
		"options": catalog.BuildOptions(level),
	})
}
