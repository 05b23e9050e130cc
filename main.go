// ABOUTME: Entry point for the capacity planner backend service
// ABOUTME: Provides HTTP API for migration capacity analysis and HLD generation

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openmigrate/capacity-planner/cache"
	"github.com/openmigrate/capacity-planner/config"
	"github.com/openmigrate/capacity-planner/handlers"
	"github.com/openmigrate/capacity-planner/logger"
	"github.com/openmigrate/capacity-planner/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Capacity Planner Backend")
	if cfg.VSphereConfigured() {
		slog.Info("vSphere configured", "host", cfg.VSphereHost, "datacenter", cfg.VSphereDatacenter)
	} else {
		slog.Info("vSphere not configured, inline plans and RVTools uploads only")
	}

	// Initialize cache
	cacheTTL := time.Duration(cfg.InventoryCacheTTL) * time.Second
	c := cache.New(cacheTTL)
	defer c.Close()
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c)

	// Register routes with logging, CORS, and metrics middleware
	mux := http.NewServeMux()
	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	for _, route := range h.Routes() {
		pattern := fmt.Sprintf("%s %s", route.Method, route.Path)
		mux.HandleFunc(pattern, middleware.Chain(route.Handler, middleware.LogRequest, cors, middleware.Metrics))
		// CORS preflight needs its own registration since OPTIONS never
		// matches the method-qualified pattern.
		mux.HandleFunc("OPTIONS "+route.Path, middleware.Chain(noContent, cors))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
