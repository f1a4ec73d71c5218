package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matt-g-everett/weatherapp/weather"
)

//go:embed index.html
var indexHTML []byte

// Looker runs a weather lookup.
type Looker interface {
	Lookup(ctx context.Context, city string) (weather.Display, error)
}

// Server serves the web UI, its JSON API, the generated assets, and the
// health and metrics endpoints.
type Server struct {
	httpServer *http.Server
	looker     Looker
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewServer creates an instance of a Server. Files under assetsDir are
// served at /assets/.
func NewServer(addr, assetsDir string, looker Looker, clock clockwork.Clock, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		looker: looker,
		clock:  clock,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/weather", s.handleWeather)
	mux.HandleFunc("GET /api/greeting", s.handleGreeting)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))

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

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML) //nolint:errcheck // client went away
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	d, err := s.looker.Lookup(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": weather.Describe(err)})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleGreeting(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"greeting": weather.Greeting(s.clock.Now())})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, weather.ErrEmptyCity):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrBusy):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
