package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const backgroundTimeout = 60 * time.Second

type BackgroundRemovalRequest struct {
	URL string `json:"url"`
}

type BackgroundRemovalResponse struct {
	Status       string `json:"status"`
	OriginalURL  string `json:"original_url"`
	ProcessedURL string `json:"processed_url"`
}

// BackgroundHandler proxies the background removal endpoint.
type BackgroundHandler struct {
	Upstream *upstream.Client
}

// ServeHTTP godoc
//
//	@Summary		Background Removal
//	@Description	Removes the background from the linked image and returns the processed image URL.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		BackgroundRemovalRequest	true	"Image URL"
//	@Success		200		{object}	BackgroundRemovalResponse	"processed image link"
//	@Failure		400		{object}	httpx.ErrorResponse			"error"
//	@Router			/api/remove-bg [post].
func (h *BackgroundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BackgroundRemovalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid image URL format")
		return
	}

	query := url.Values{"url": {req.URL}}
	result, err := h.Upstream.Get(r.Context(), "/api/remove-bg.php", query, backgroundTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Background removal")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, BackgroundRemovalResponse{
		Status:       "success",
		OriginalURL:  req.URL,
		ProcessedURL: result.URL("url", "processed_url"),
	})
}
