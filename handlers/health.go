// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports API status and which inventory sources are configured

package handlers

import "net/http"

// Health returns API health status including inventory source availability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "ok",
		"vsphere": "not_configured",
	}

	if h.vsphereClient != nil {
		resp["vsphere"] = "configured"
	}

	h.writeJSON(w, http.StatusOK, resp)
}
