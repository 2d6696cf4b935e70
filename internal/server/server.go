// Package server exposes the tool handlers and the vehicle catalog over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/internal/metrics"
	"github.com/cloud-ru/autobudget-go/internal/tools"
)

const maxBodyBytes = 1 << 20

// Server serves the JSON API.
type Server struct {
	cfg      *config.Config
	registry *tools.Registry
	catalog  *catalog.Catalog
	log      *slog.Logger
	limiter  *ClientLimiter
}

// New builds a server over the registry and catalog.
func New(cfg *config.Config, registry *tools.Registry, cat *catalog.Catalog, log *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
		catalog:  cat,
		log:      log,
		limiter:  NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.route(mux, "POST /v1/tools/{name}", s.handleTool)
	s.route(mux, "GET /v1/tools", s.handleToolList)
	s.route(mux, "GET /v1/vehicles", s.handleVehicles)
	s.route(mux, "GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return Chain(mux,
		Recover(s.log),
		RequestID(),
		Logger(s.log),
		OTel(s.cfg.OTELServiceName),
		RateLimit(s.limiter),
	)
}

// route registers h and counts its responses under the pattern.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h(sw, r)
		metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(sw.status)).Inc()
	})
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", srv.Addr, "profile", s.cfg.PricingProfile)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params := map[string]interface{}{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a JSON object")
			return
		}
	}

	result, err := s.registry.Call(r.Context(), name, params)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case errors.Is(err, tools.ErrUnknownTool):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tools.ErrInvalidParams):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("tool failed", "tool", name, "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleToolList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tools": s.registry.Names()})
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if category := q.Get("category"); category != "" {
		writeJSON(w, http.StatusOK, s.catalog.ByCategory(category))
		return
	}

	minStr, maxStr := q.Get("min"), q.Get("max")
	if minStr == "" && maxStr == "" {
		writeJSON(w, http.StatusOK, s.catalog.Models())
		return
	}
	minPrice, maxPrice := 0.0, s.cfg.MaxPrice
	var err error
	if minStr != "" {
		if minPrice, err = strconv.ParseFloat(minStr, 64); err != nil {
			writeError(w, http.StatusBadRequest, "min must be a number")
			return
		}
	}
	if maxStr != "" {
		if maxPrice, err = strconv.ParseFloat(maxStr, 64); err != nil {
			writeError(w, http.StatusBadRequest, "max must be a number")
			return
		}
	}
	writeJSON(w, http.StatusOK, s.catalog.InPriceRange(minPrice, maxPrice))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
