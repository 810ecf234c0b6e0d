package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const socialTimeout = 60 * time.Second

type SocialDownloadRequest struct {
	URL string `json:"url"`
}

type SocialDownloadResponse struct {
	Status    string           `json:"status"`
	Title     string           `json:"title"`
	Downloads []map[string]any `json:"downloads"`
}

// SocialHandler proxies the universal social media downloader.
type SocialHandler struct {
	Upstream *upstream.Client
}

// ServeHTTP godoc
//
//	@Summary		Universal Social Media Downloader
//	@Description	Resolves download links for content from YouTube, TikTok, Instagram and other platforms.
//	@Tags			Social Media
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		SocialDownloadRequest	true	"Content URL"
//	@Success		200		{object}	SocialDownloadResponse	"download links with quality info"
//	@Failure		400		{object}	httpx.ErrorResponse		"error"
//	@Router			/api/download [post].
func (h *SocialHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SocialDownloadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	query := url.Values{"url": {req.URL}}
	result, err := h.Upstream.Get(r.Context(), "/api/do.php", query, socialTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Social download")
		return
	}

	resp := SocialDownloadResponse{
		Status:    "success",
		Title:     "Downloaded Content",
		Downloads: []map[string]any{},
	}

	// Upstream uses several shapes: a downloads array, a links array, or a
	// single url field.
	if fields := result.JSON(); fields != nil {
		if title, ok := fields["title"].(string); ok && title != "" {
			resp.Title = title
		}
		switch {
		case fields["downloads"] != nil:
			resp.Downloads = toDownloadList(fields["downloads"])
		case fields["links"] != nil:
			resp.Downloads = toDownloadList(fields["links"])
		case fields["url"] != nil:
			if u, ok := fields["url"].(string); ok && u != "" {
				resp.Downloads = []map[string]any{{"url": u, "type": "video", "quality": "default"}}
			}
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func toDownloadList(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
