package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/egorlepa/ocpanel/internal/config"
	"github.com/egorlepa/ocpanel/internal/dns"
	"github.com/egorlepa/ocpanel/internal/healthcheck"
	"github.com/egorlepa/ocpanel/internal/probe"
	"github.com/egorlepa/ocpanel/internal/service"
	"github.com/egorlepa/ocpanel/internal/settings"
)

//go:generate templ generate

// Prober reports tunnel state and the host's nameservers.
type Prober interface {
	Status(ctx context.Context) probe.Status
	DNS() []string
}

// LogReader returns the recent VPN client log.
type LogReader interface {
	Tail(maxLines int) string
}

// Controller drives the supervised VPN client.
type Controller interface {
	Control(ctx context.Context, action service.Action) service.Outcome
}

// Checker runs diagnostics.
type Checker interface {
	RunChecks(ctx context.Context) []healthcheck.Result
}

// Server is the web UI HTTP server.
type Server struct {
	Config     *config.Config
	Prober     Prober
	Logs       LogReader
	Controller Controller
	Checker    Checker
	Logger     *slog.Logger
	Version    string

	// Settings and CheckDNS default to the real implementations.
	Settings func() settings.Snapshot
	CheckDNS func(ctx context.Context, servers []string, domain string) []dns.ServerCheck

	mux *http.ServeMux
}

// NewServer creates a web server with all routes registered.
func NewServer(cfg *config.Config, prober Prober, logs LogReader, ctl Controller, checker Checker, logger *slog.Logger, version string) *Server {
	s := &Server{
		Config:     cfg,
		Prober:     prober,
		Logs:       logs,
		Controller: ctl,
		Checker:    checker,
		Logger:     logger,
		Version:    version,
		Settings:   settings.Read,
		CheckDNS:   dns.CheckServers,
		mux:        http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Pages.
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /dashboard", s.handleDashboard)

	// Read-only API.
	s.mux.HandleFunc("GET /api/status", s.handleStatus)
	s.mux.HandleFunc("GET /api/logs", s.handleLogs)
	s.mux.HandleFunc("GET /api/settings", s.handleSettings)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/dns/check", s.handleDNSCheck)

	// Actions.
	s.mux.HandleFunc("POST /api/connect", s.handleAction(service.Start))
	s.mux.HandleFunc("POST /api/disconnect", s.handleAction(service.Stop))
	s.mux.HandleFunc("POST /api/reconnect", s.handleAction(service.Restart))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.Logger.Debug("http request",
		"method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
