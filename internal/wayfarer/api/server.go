// Package api exposes the trip-planning backend over HTTP: the assistant chat
// endpoint, trip CRUD, the persisted chat log, and the health/status/metrics
// surface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/wayfarer-app/wayfarer/common/version"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/assistant"
	"github.com/wayfarer-app/wayfarer/internal/wayfarer/store"
)

// Config holds the HTTP server tunables.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// AllowedOrigins is the CORS allowlist. Empty allows every origin.
	AllowedOrigins []string
	// ChatRateLimit caps assistant turns per conversation per minute.
	// Zero means DefaultChatRateLimit.
	ChatRateLimit int
}

// Server is the HTTP front of the backend. It owns the router, the CORS
// wrapper, and the per-conversation rate limiter; domain work is delegated to
// the assistant and the store.
type Server struct {
	cfg       Config
	store     *store.Store
	assistant *assistant.Assistant
	limiter   *RateLimiter
	logger    *slog.Logger
	handler   http.Handler
	srv       *http.Server
	startedAt time.Time
}

// New builds a Server with all routes registered. logger may be nil, in which
// case the default slog logger is used.
func New(st *store.Store, as *assistant.Assistant, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:       cfg,
		store:     st,
		assistant: as,
		limiter:   NewRateLimiter(cfg.ChatRateLimit, 0),
		logger:    logger,
		startedAt: time.Now(),
	}

	r := mux.NewRouter()
	r.Use(s.requestLog)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.HandleFunc("/assistant/chat", s.handleChat).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/trips", s.handleCreateTrip).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/trips", s.handleListTrips).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/trips/{id}", s.handleGetTrip).Methods(http.MethodGet)
	apiRoutes.HandleFunc("/trips/{id}", s.handleUpdateTrip).Methods(http.MethodPut)
	apiRoutes.HandleFunc("/trips/{id}", s.handleDeleteTrip).Methods(http.MethodDelete)
	apiRoutes.HandleFunc("/trips/{id}/messages", s.handleListMessages).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.handler = c.Handler(r)
	return s
}

// Handler returns the fully wired HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving on the configured address. It returns once the
// listener is bound; serving continues in a background goroutine until
// Shutdown is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api: server stopped", "err", err)
		}
	}()

	s.logger.Info("api: listening", "addr", ln.Addr().String())
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// handleStatus reports build info plus live counters for the ops surface.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	trips, err := s.store.TripCount(r.Context())
	if err != nil {
		s.logger.Error("api: status trip count", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version":              version.Info(),
		"uptime_seconds":       int64(time.Since(s.startedAt).Seconds()),
		"trips":                trips,
		"active_conversations": s.assistant.ActiveConversations(),
	})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("api: encode response", "err", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
