// Package httpapi exposes operational endpoints plus a small read API over
// the stored congestion history.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oneseo/congestion-collector/internal/domain"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// HistoryReader serves stored observations.
type HistoryReader interface {
	QueryAll(ctx context.Context) ([]domain.CongestionRecord, error)
	QueryLatest(ctx context.Context, area string) (domain.CongestionRecord, error)
}

// Server exposes health, readiness, metrics, and congestion query routes.
type Server struct {
	httpServer *http.Server
	catalog    *domain.Catalog
	history    HistoryReader
	resolver   *domain.Resolver
	logger     *slog.Logger
}

// NewServer wires all routes onto a fresh mux.
func NewServer(addr string, ready ReadinessChecker, catalog *domain.Catalog, history HistoryReader, resolver *domain.Resolver, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		catalog:  catalog,
		history:  history,
		resolver: resolver,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/areas", s.handleAreas)
	mux.HandleFunc("GET /api/areas/{name}/latest", s.handleLatest)
	mux.HandleFunc("GET /api/records", s.handleRecords)
	mux.HandleFunc("GET /api/resolve", s.handleResolve)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleAreas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Areas())
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	rec, err := s.history.QueryLatest(r.Context(), name)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no observations for area"})
		return
	}
	if err != nil {
		s.logger.Error("latest query failed", "area", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.QueryAll(r.Context())
	if err != nil {
		s.logger.Error("records query failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}
	if records == nil {
		records = []domain.CongestionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// handleResolve maps free text to the nearest catalog area.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter is required"})
		return
	}
	area, err := s.resolver.Resolve(r.Context(), query)
	if errors.Is(err, domain.ErrLocationNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "location not found"})
		return
	}
	if err != nil {
		s.logger.Error("resolve failed", "query", query, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "resolve failed"})
		return
	}
	writeJSON(w, http.StatusOK, area)
}

// handleStatus returns the latest observation of every area with history,
// shaped for heatmap rendering.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	statuses := make([]domain.AreaStatus, 0, s.catalog.Len())
	for _, area := range s.catalog.Areas() {
		rec, err := s.history.QueryLatest(r.Context(), area.Name)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("status query failed", "area", area.Name, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
			return
		}
		statuses = append(statuses, domain.BuildAreaStatus(area, domain.PopulationSnapshot{
			CongestionLevel: rec.CongestionLevel,
			PopulationMin:   rec.PopulationMin,
			PopulationMax:   rec.PopulationMax,
		}))
	}
	writeJSON(w, http.StatusOK, statuses)
}

// handleStats aggregates the latest observed level of every area into
// per-level counts.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	levels := make([]domain.CongestionLevel, 0, s.catalog.Len())
	for _, area := range s.catalog.Areas() {
		rec, err := s.history.QueryLatest(r.Context(), area.Name)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("stats query failed", "area", area.Name, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
			return
		}
		levels = append(levels, rec.CongestionLevel)
	}
	writeJSON(w, http.StatusOK, domain.Aggregate(levels))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
