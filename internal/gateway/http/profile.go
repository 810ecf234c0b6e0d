package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/service"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

type ProfileResponse struct {
	ClientID         string    `json:"client_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Scopes           []string  `json:"scopes"`
	AllowedModels    []string  `json:"allowed_models"`
	RateLimitProfile string    `json:"rate_limit_profile"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// ProfileHandler handles GET /auth/profile.
type ProfileHandler struct {
	ClientService *service.ClientService
}

// ServeHTTP godoc
//
//	@Summary		Client Profile
//	@Description	Returns the authenticated client's registration details. Credentials are never echoed back.
//	@Tags			Authentication
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ProfileResponse		"client profile"
//	@Failure		404	{object}	httpx.ErrorResponse	"error"
//	@Router			/auth/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := httpx.ClientIDFromContext(ctx)
	client, err := h.ClientService.GetProfile(ctx, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Error("profile lookup failed", "error", err, "client_id", clientID)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ProfileResponse{
		ClientID:         client.ID,
		Name:             client.Name,
		Email:            client.Email,
		Scopes:           client.Scopes,
		AllowedModels:    client.AllowedModels,
		RateLimitProfile: client.RateLimitProfile,
		Status:           client.Status,
		CreatedAt:        client.CreatedAt,
	})
}
