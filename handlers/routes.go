// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Inventory
		{Method: http.MethodGet, Path: "/api/v1/inventory", Handler: h.GetInventory},
		{Method: http.MethodPost, Path: "/api/v1/inventory/rvtools", Handler: h.UploadRVTools},
		{Method: http.MethodGet, Path: "/api/v1/inventory/rvtools/{id}", Handler: h.GetRVToolsUpload},

		// Analysis
		{Method: http.MethodPost, Path: "/api/v1/analysis", Handler: h.AnalyzeCapacity},
		{Method: http.MethodPost, Path: "/api/v1/analysis/validate", Handler: h.ValidateCapacity},

		// HLD
		{Method: http.MethodPost, Path: "/api/v1/readiness", Handler: h.ValidateReadiness},
		{Method: http.MethodPost, Path: "/api/v1/hld", Handler: h.GenerateHLD},
	}
}
