package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

// Video generation is by far the slowest upstream operation.
const videoTimeout = 180 * time.Second

type VideoRequest struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

type VideoResponse struct {
	Status         string `json:"status"`
	VideoURL       string `json:"video_url"`
	ProcessingType string `json:"processing_type"`
	HasAudio       bool   `json:"has_audio"`
}

// VideoHandler proxies the video generation endpoints.
type VideoHandler struct {
	Upstream *upstream.Client
}

// HandleTextToVideo godoc
//
//	@Summary		Text to Video Generation
//	@Description	Generates a video with audio from a text description.
//	@Tags			Video
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		VideoRequest		true	"Video description"
//	@Success		200		{object}	VideoResponse		"video link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/veo3/text-to-video [post].
func (h *VideoHandler) HandleTextToVideo(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text input is required")
		return
	}

	h.generate(w, r, url.Values{"text": {req.Text}}, "text-to-video")
}

// HandleImageToVideo godoc
//
//	@Summary		Image to Video Conversion
//	@Description	Animates a source image into a video with audio, steered by the text instructions.
//	@Tags			Video
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		VideoRequest		true	"Instructions and source image URL"
//	@Success		200		{object}	VideoResponse		"video link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/veo3/image-to-video [post].
func (h *VideoHandler) HandleImageToVideo(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" || req.Link == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Both text and link are required")
		return
	}

	form := url.Values{"text": {req.Text}, "link": {req.Link}}
	h.generate(w, r, form, "image-to-video")
}

func (h *VideoHandler) generate(w http.ResponseWriter, r *http.Request, form url.Values, processingType string) {
	result, err := h.Upstream.PostForm(r.Context(), "/api/veo3.php", form, videoTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Video generation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, VideoResponse{
		Status:         "success",
		VideoURL:       result.URL("url", "video_url"),
		ProcessingType: processingType,
		HasAudio:       true,
	})
}
