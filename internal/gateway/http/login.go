package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/service"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

type LoginRequest struct {
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	ClientID    string   `json:"client_id"`
	Scopes      []string `json:"scopes"`
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	ClientService *service.ClientService
	TokenService  *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Client Login
//	@Description	Authenticates a client by email and API key and issues a time-bound access token.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Login request"
//	@Success		200		{object}	TokenResponse		"access token and scope list"
//	@Failure		401		{object}	httpx.ErrorResponse	"error"
//	@Failure		403		{object}	httpx.ErrorResponse	"error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.ClientService.Authenticate(ctx, req.Email, req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrClientSuspended):
			httpx.WriteError(w, http.StatusForbidden, "Client account is not active")
		default:
			log.Error("login failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	signed, claims, err := h.TokenService.IssueForClient(ctx, client)
	if err != nil {
		log.Error("token issue failed", "error", err, "client_id", client.ID)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(time.Until(claims.ExpiresAt.Time) / time.Second),
		ClientID:    client.ID,
		Scopes:      client.Scopes,
	})
}

type RevokeRequest struct {
	// JTI optionally names the token to revoke; defaults to the token the
	// request was authenticated with.
	JTI string `json:"jti,omitempty"`
}

// RevokeHandler handles POST /auth/revoke.
type RevokeHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Access Token
//	@Description	Marks a token revoked before its natural expiry. Clients may only revoke their own tokens.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body	RevokeRequest	false	"Token to revoke (defaults to the presented token)"
//	@Success		204		"Token revoked"
//	@Failure		404		{object}	httpx.ErrorResponse	"error"
//	@Router			/auth/revoke [post].
func (h *RevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RevokeRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}
	jti := req.JTI
	if jti == "" {
		jti = httpx.TokenIDFromContext(ctx)
	}

	clientID := httpx.ClientIDFromContext(ctx)
	if err := h.TokenService.RevokeOwned(ctx, jti, clientID); err != nil {
		if errors.Is(err, service.ErrTokenNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Token not found")
			return
		}
		log.Error("revoke failed", "error", err, "jti", jti)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
