package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const musicTimeout = 120 * time.Second

type MusicRequest struct {
	Lyrics string `json:"lyrics"`
	Tags   string `json:"tags,omitempty"`
}

type InstrumentalRequest struct {
	Text string `json:"text"`
}

// MusicHandler proxies the music generation endpoints. Upstream replies are
// passed through when JSON, otherwise wrapped as an audio_url.
type MusicHandler struct {
	Upstream *upstream.Client
}

// HandleLyrics godoc
//
//	@Summary		Music Creation with Lyrics
//	@Description	Generates a full song from lyrics and optional style tags.
//	@Tags			Music
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		MusicRequest		true	"Lyrics and optional tags"
//	@Success		200		{object}	map[string]any		"upstream response"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/music [post].
func (h *MusicHandler) HandleLyrics(w http.ResponseWriter, r *http.Request) {
	var req MusicRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Lyrics == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Lyrics are required")
		return
	}

	form := url.Values{"lyrics": {req.Lyrics}}
	if req.Tags != "" {
		form.Set("tags", req.Tags)
	}

	h.compose(w, r, "/api/music.php", form)
}

// HandleInstrumental godoc
//
//	@Summary		Create Short Instrumental Music
//	@Description	Generates a 15 second instrumental track from a text description.
//	@Tags			Music
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		InstrumentalRequest	true	"Track description"
//	@Success		200		{object}	map[string]any		"upstream response"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/create-music [post].
func (h *MusicHandler) HandleInstrumental(w http.ResponseWriter, r *http.Request) {
	var req InstrumentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text input is required")
		return
	}

	h.compose(w, r, "/api/create-music.php", url.Values{"text": {req.Text}})
}

func (h *MusicHandler) compose(w http.ResponseWriter, r *http.Request, path string, form url.Values) {
	result, err := h.Upstream.PostForm(r.Context(), path, form, musicTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Music generation")
		return
	}

	if result.IsJSON() {
		httpx.WriteJSON(w, http.StatusOK, result.JSON())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"audio_url": result.Text()})
}
