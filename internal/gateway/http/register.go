package http

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/darkaihq/darkgate/internal/gateway/service"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

type RegisterRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Scopes        []string `json:"scopes,omitempty"`
	AllowedModels []string `json:"allowed_models,omitempty"`
}

type RegisterResponse struct {
	Message      string `json:"message"`
	ClientID     string `json:"client_id"`
	APIKey       string `json:"api_key"`
	ClientSecret string `json:"client_secret"`
	Warning      string `json:"warning"`
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	ClientService *service.ClientService
}

// ServeHTTP godoc
//
//	@Summary		Register New Client
//	@Description	Registers a new API client. The returned API key and client secret are shown exactly once.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest		true	"Registration request"
//	@Success		201		{object}	RegisterResponse	"client_id and one-time credentials"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Failure		500		{object}	httpx.ErrorResponse	"error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Client name is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	reg, err := h.ClientService.Register(ctx, req.Name, req.Email, req.Scopes, req.AllowedModels)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error("registration failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message:      "Client registered successfully",
		ClientID:     reg.Client.ID,
		APIKey:       reg.APIKey,
		ClientSecret: reg.SharedSecret,
		Warning:      "Store these credentials securely - they will not be shown again",
	})
}
