package web

import "net/http"

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	n := parseLines(r, s.Config.Logs.DefaultLines)
	writeJSON(w, http.StatusOK, map[string]string{"logs": s.Logs.Tail(n)})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Settings())
}
