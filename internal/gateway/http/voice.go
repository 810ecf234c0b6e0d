package http

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const voiceTimeout = 60 * time.Second

var validVoices = []string{"nova", "alloy", "verse", "flow", "aria", "lumen"}

type VoiceRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
	Style string `json:"style,omitempty"`
}

type VoiceResponse struct {
	Status    string `json:"status"`
	AudioURL  string `json:"audio_url"`
	VoiceUsed string `json:"voice_used"`
	StyleUsed string `json:"style_used,omitempty"`
}

// VoiceHandler proxies the text-to-speech endpoints.
type VoiceHandler struct {
	Upstream *upstream.Client
}

// HandleDefault godoc
//
//	@Summary		Text to Speech
//	@Description	Converts text to speech with the default voice.
//	@Tags			Voice
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		VoiceRequest		true	"Text to speak"
//	@Success		200		{object}	VoiceResponse		"audio link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/voice [post].
func (h *VoiceHandler) HandleDefault(w http.ResponseWriter, r *http.Request) {
	var req VoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text input is required")
		return
	}

	h.speak(w, r, url.Values{"text": {req.Text}}, "default", "")
}

// HandleCustom godoc
//
//	@Summary		Text to Speech with Voice and Style
//	@Description	Converts text to speech with a chosen voice (nova, alloy, verse, flow, aria, lumen) and an optional free-form style.
//	@Tags			Voice
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		VoiceRequest		true	"Text, voice and style"
//	@Success		200		{object}	VoiceResponse		"audio link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/voice/custom [post].
func (h *VoiceHandler) HandleCustom(w http.ResponseWriter, r *http.Request) {
	var req VoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text input is required")
		return
	}
	if req.Voice != "" && !slices.Contains(validVoices, req.Voice) {
		httpx.WriteError(w, http.StatusBadRequest,
			"Invalid voice. Choose from: "+strings.Join(validVoices, ", "))
		return
	}

	form := url.Values{"text": {req.Text}}
	if req.Voice != "" {
		form.Set("voice", req.Voice)
	}
	if req.Style != "" {
		form.Set("style", req.Style)
	}

	voiceUsed := req.Voice
	if voiceUsed == "" {
		voiceUsed = "default"
	}
	h.speak(w, r, form, voiceUsed, req.Style)
}

func (h *VoiceHandler) speak(w http.ResponseWriter, r *http.Request, form url.Values, voiceUsed, styleUsed string) {
	result, err := h.Upstream.PostForm(r.Context(), "/api/voice.php", form, voiceTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Voice")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, VoiceResponse{
		Status:    "success",
		AudioURL:  result.URL("url", "audio_url"),
		VoiceUsed: voiceUsed,
		StyleUsed: styleUsed,
	})
}
