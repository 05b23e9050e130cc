// ABOUTME: HTTP handler for HLD readiness validation
// ABOUTME: Gates design document generation on the submitted planning state

package handlers

import (
	"net/http"

	"github.com/openmigrate/capacity-planner/models"
)

// ValidateReadiness evaluates whether the planning state is complete enough
// to generate a design document.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) ValidateReadiness(w http.ResponseWriter, r *http.Request) {
	var input models.HLDValidationInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	result := models.ValidateHLDReadiness(input)

	h.writeJSON(w, http.StatusOK, result)
}
