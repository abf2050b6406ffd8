package web

import (
	"net/http"
	"strings"

	"github.com/egorlepa/ocpanel/internal/healthcheck"
)

const defaultProbeDomain = "example.com"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	results := s.Checker.RunChecks(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"healthy": healthcheck.Healthy(results),
		"checks":  results,
	})
}

func (s *Server) handleDNSCheck(w http.ResponseWriter, r *http.Request) {
	domain := strings.TrimSpace(r.URL.Query().Get("domain"))
	if domain == "" {
		domain = defaultProbeDomain
	}
	checks := s.CheckDNS(r.Context(), s.Prober.DNS(), domain)
	writeJSON(w, http.StatusOK, map[string]any{
		"domain":  domain,
		"servers": checks,
	})
}
