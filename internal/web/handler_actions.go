package web

import (
	"net/http"

	"github.com/egorlepa/ocpanel/internal/service"
)

func (s *Server) handleAction(action service.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := s.Controller.Control(r.Context(), action)
		if !out.Success {
			writeJSON(w, http.StatusInternalServerError, out)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
