// ABOUTME: HTTP handlers for capacity analysis and validation endpoints
// ABOUTME: Applies the analysis engine to an inline migration plan payload

package handlers

import (
	"net/http"

	"github.com/openmigrate/capacity-planner/models"
)

// AnalyzeRequest is a migration plan: the VMs to move and the destination
// clusters to receive them.
type AnalyzeRequest struct {
	VMs      []models.VMResourceRequirement `json:"vms"`
	Clusters []models.ClusterCapacity       `json:"clusters"`
}

// AnalyzeCapacity runs the full capacity analysis over the submitted plan.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) AnalyzeCapacity(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result := models.AnalyzeCapacity(req.VMs, req.Clusters)

	h.writeJSON(w, http.StatusOK, result)
}

// ValidateCapacity reports blocking capacity errors and advisory warnings
// for the submitted plan.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) ValidateCapacity(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	validation := models.ValidateCapacity(req.VMs, req.Clusters)

	h.writeJSON(w, http.StatusOK, validation)
}
