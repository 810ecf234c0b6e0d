package http

import (
	"net/http"

	"github.com/darkaihq/darkgate/pkg/httpx"
)

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ReplayCache string `json:"replay_cache"`
	Version     string `json:"version"`
}

// RootHandler godoc
//
//	@Summary	Service Information
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	RootResponse	"service info"
//	@Router		/ [get].
func RootHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, RootResponse{
			Message: "DarkGate API",
			Version: version,
			Status:  "active",
			Endpoints: map[string]string{
				"docs": "/docs",
				"auth": "/auth",
				"api":  "/api",
			},
		})
	})
}

// HealthHandler godoc
//
//	@Summary	Health Check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	HealthResponse	"health status"
//	@Router		/health [get].
func HealthHandler(version string, checkCache func(r *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The in-process cache has no failure mode worth reporting.
		cacheStatus := "in-memory"
		if checkCache != nil {
			cacheStatus = "connected"
			if err := checkCache(r); err != nil {
				cacheStatus = "disconnected"
			}
		}

		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:      "healthy",
			ReplayCache: cacheStatus,
			Version:     version,
		})
	})
}
