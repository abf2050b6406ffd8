package web

import (
	"net/http"

	"github.com/egorlepa/ocpanel/internal/probe"
)

type statusResponse struct {
	Connected bool     `json:"connected"`
	IP        string   `json:"ip"`
	DNS       []string `json:"dns"`
	Timestamp float64  `json:"timestamp"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.Prober.Status(r.Context())

	resp := statusResponse{
		Connected: st.State == probe.Connected,
		IP:        "N/A",
		DNS:       s.Prober.DNS(),
	}
	if st.IP != "" {
		resp.IP = st.IP
	}
	if !st.Timestamp.IsZero() {
		resp.Timestamp = float64(st.Timestamp.Unix()) + float64(st.Timestamp.Nanosecond())/1e9
	}
	if resp.DNS == nil {
		resp.DNS = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}
