package handler

import (
	"net/http"
	"net/url"
)

// HealthHandler serves the liveness probe endpoint. It reports the upstream
// host so operators can see where messages are relayed.
type HealthHandler struct {
	upstream string
}

func NewHealthHandler(upstreamURI string) *HealthHandler {
	host := ""
	if u, err := url.Parse(upstreamURI); err == nil {
		host = u.Host
	}
	return &HealthHandler{upstream: host}
}

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "upstream": h.upstream})
}
