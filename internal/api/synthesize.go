package api

import (
	"encoding/json"
	"net/http"

	"github.com/aetherhq/synthesis/pkg/models"
)

// handleSynthesize runs the scoring pipeline on one argument pair.
// Content problems never surface as server errors: missing fields
// default to neutral values inside the pipeline, and internal
// failures come back as the structured fallback result.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req models.SynthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.synthesizer.Synthesize(r.Context(), req)
	respondJSON(w, http.StatusOK, result)
}
