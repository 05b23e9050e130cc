// ABOUTME: HTTP handler plumbing for the capacity planner API
// ABOUTME: Holds shared dependencies and JSON request/response helpers

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/openmigrate/capacity-planner/cache"
	"github.com/openmigrate/capacity-planner/config"
	"github.com/openmigrate/capacity-planner/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg           *config.Config
	cache         *cache.Cache
	vsphereClient *services.VSphereClient
	hldGenerator  *services.HLDGenerator

	// collectInventory produces a fresh snapshot on cache miss. Concurrent
	// refreshes are collapsed by inventoryGroup so only one talks to vCenter.
	collectInventory func(ctx context.Context) (services.InventorySnapshot, error)
	inventoryGroup   singleflight.Group
}

// ErrorResponse is the JSON body returned for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func NewHandler(cfg *config.Config, cache *cache.Cache) *Handler {
	h := &Handler{
		cfg:          cfg,
		cache:        cache,
		hldGenerator: services.NewHLDGenerator(),
	}

	// vSphere client is optional; plans may also arrive inline or via RVTools
	if cfg != nil && cfg.VSphereConfigured() {
		h.vsphereClient = services.VSphereClientFromEnv(
			cfg.VSphereHost,
			cfg.VSphereUsername,
			cfg.VSpherePassword,
			cfg.VSphereDatacenter,
			cfg.VSphereInsecure,
		)
		h.collectInventory = h.collectVSphereInventory
	}

	return h
}

// errInventoryConnect marks connection failures so GetInventory can report
// them as unavailability rather than a server fault.
var errInventoryConnect = errors.New("inventory source unreachable")

func (h *Handler) collectVSphereInventory(ctx context.Context) (services.InventorySnapshot, error) {
	if err := h.vsphereClient.Connect(ctx); err != nil {
		return services.InventorySnapshot{}, fmt.Errorf("%w: %v", errInventoryConnect, err)
	}
	defer h.vsphereClient.Disconnect(ctx)

	return h.vsphereClient.CollectInventory(ctx)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// decodeJSON reads a size-limited JSON request body into v. It writes the
// error response itself and reports whether decoding succeeded.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
