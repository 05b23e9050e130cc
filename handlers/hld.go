// ABOUTME: HTTP handler for HLD document generation
// ABOUTME: Renders the markdown design document for a ready migration plan

package handlers

import (
	"net/http"

	"github.com/openmigrate/capacity-planner/services"
)

// HLDResponse wraps the rendered markdown document.
type HLDResponse struct {
	Document string `json:"document"`
}

// GenerateHLD validates readiness and renders the design document. Blocked
// plans get a 422 carrying the blocking reasons.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) GenerateHLD(w http.ResponseWriter, r *http.Request) {
	var req services.HLDRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	doc, err := h.hldGenerator.Generate(req)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	h.writeJSON(w, http.StatusOK, HLDResponse{Document: doc})
}
