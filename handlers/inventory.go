// ABOUTME: HTTP handlers for inventory ingestion endpoints
// ABOUTME: Handles vSphere discovery with caching and RVTools CSV uploads

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openmigrate/capacity-planner/services"
)

const vsphereInventoryCacheKey = "inventory:vsphere"

// GetInventory returns a datacenter inventory snapshot discovered from
// vSphere, served from cache when fresh. On a cache miss, concurrent
// requests share a single refresh instead of each dialing vCenter.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	if h.collectInventory == nil {
		h.writeError(w, "vSphere not configured. Set VSPHERE_HOST, VSPHERE_USERNAME, VSPHERE_PASSWORD, and VSPHERE_DATACENTER environment variables.", http.StatusServiceUnavailable)
		return
	}

	if cached, found := h.cache.Get(vsphereInventoryCacheKey); found {
		slog.Debug("Inventory cache hit")
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	snapshot, err, shared := h.inventoryGroup.Do(vsphereInventoryCacheKey, func() (interface{}, error) {
		// Detached from the request context: other requests joining this
		// flight must not be cancelled by the first caller going away.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snapshot, err := h.collectInventory(ctx)
		if err != nil {
			return nil, err
		}

		h.cache.SetWithTTL(vsphereInventoryCacheKey, snapshot, time.Duration(h.cfg.InventoryCacheTTL)*time.Second)
		return snapshot, nil
	})
	if shared {
		slog.Debug("Inventory refresh collapsed into in-flight request")
	}
	if err != nil {
		if errors.Is(err, errInventoryConnect) {
			slog.Error("vSphere connection failed", "error", err)
			h.writeError(w, "Inventory service temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		slog.Error("vSphere inventory collection failed", "error", err)
		h.writeError(w, "Failed to collect inventory data", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, snapshot)
}

// UploadRVTools ingests an RVTools vInfo CSV export and caches the parsed
// inventory under its upload ID for later plan assembly.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) UploadRVTools(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	result, err := services.ParseRVToolsCSV(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.writeError(w, "Invalid RVTools export: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.cache.Set("rvtools:"+result.UploadID, result)

	h.writeJSON(w, http.StatusOK, result)
}

// GetRVToolsUpload returns a previously ingested RVTools inventory by ID.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) GetRVToolsUpload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	cached, found := h.cache.Get("rvtools:" + id)
	if !found {
		h.writeError(w, "Upload not found or expired", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, cached)
}
