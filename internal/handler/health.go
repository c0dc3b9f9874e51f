package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
