package web

import (
	"net/http"

	"github.com/egorlepa/ocpanel/internal/web/templates"
)

func (s *Server) dashboardData() templates.DashboardData {
	return templates.DashboardData{
		Version:         s.Version,
		GuacamolePort:   s.Config.Web.GuacamolePort,
		GuacamolePath:   s.Config.Web.GuacamolePath,
		LogLines:        s.Config.Logs.DefaultLines,
		StatusPollMS:    int(s.Config.Web.StatusPollDuration().Milliseconds()),
		ConnectPollMS:   int(s.Config.Web.ConnectPollDuration().Milliseconds()),
		ConnectAttempts: s.Config.Web.ConnectAttempts,
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(s.dashboardData()).Render(r.Context(), w); err != nil {
		s.Logger.Error("render dashboard", "error", err)
	}
}
