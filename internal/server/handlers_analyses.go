package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// handleListAnalyses returns stored analysis summaries, newest first.
// An optional ?limit= query caps the result count.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	summaries, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("failed to list analyses: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"analyses": summaries,
		"count":    len(summaries),
	})
}

// handleGetAnalysis returns a single stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("failed to get analysis %s: %v", id, err)
		errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if analysis == nil {
		errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	jsonResponse(w, http.StatusOK, analysis)
}

// handleDeleteAnalysis removes a stored analysis by ID.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	deleted, err := s.db.DeleteAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("failed to delete analysis %s: %v", id, err)
		errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}
	if !deleted {
		errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
