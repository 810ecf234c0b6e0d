package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const (
	imageTimeout      = 60 * time.Second
	fluxTimeout       = 90 * time.Second
	nanoBananaTimeout = 120 * time.Second

	maxMergeLinks = 10

	devCredit = "Don't forget to support the channel @DarkAIx"
)

type ImageEditRequest struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

type ImageRequest struct {
	Text string `json:"text"`
}

type MultiImageRequest struct {
	Text string `json:"text"`
	// Links holds comma-separated image URLs, at most ten.
	Links string `json:"links"`
}

type ImageResponse struct {
	Date string `json:"date"`
	URL  string `json:"url"`
	Dev  string `json:"dev"`
}

// ImageHandler proxies the image generation and editing endpoints.
type ImageHandler struct {
	Upstream *upstream.Client
}

// writeImage normalizes upstream image replies, which arrive either as JSON
// with a link under varying field names or as a bare URL in the body.
func writeImage(w http.ResponseWriter, r *http.Request, label string, result upstream.Result, err error) {
	if err != nil {
		writeUpstreamError(w, r, err, label)
		return
	}

	resp := ImageResponse{Date: dateStamp(), Dev: devCredit}
	if result.IsJSON() {
		if v, ok := result.JSON()["date"].(string); ok && v != "" {
			resp.Date = v
		}
		if v, ok := result.JSON()["dev"].(string); ok && v != "" {
			resp.Dev = v
		}
	}
	resp.URL = result.URL()
	if resp.URL == "" {
		resp.URL = result.Text()
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGeminiEdit godoc
//
//	@Summary		Gemini Pro Image Editing
//	@Description	Edits the linked image with the given instructions, or generates a new image when link is omitted.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ImageEditRequest	true	"Prompt and optional source image URL"
//	@Success		200		{object}	ImageResponse		"image link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/gemini-img/edit [post].
func (h *ImageHandler) HandleGeminiEdit(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, "Gemini image", "/api/gemini-img.php")
}

// HandleGPTEdit godoc
//
//	@Summary		GPT-5 Image Editing
//	@Description	Edits the linked image with the given instructions, or generates a new image when link is omitted.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ImageEditRequest	true	"Prompt and optional source image URL"
//	@Success		200		{object}	ImageResponse		"image link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/gpt-img/edit [post].
func (h *ImageHandler) HandleGPTEdit(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, "GPT image", "/api/gpt-img.php")
}

func (h *ImageHandler) edit(w http.ResponseWriter, r *http.Request, label, path string) {
	var req ImageEditRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text prompt is required")
		return
	}

	form := url.Values{"text": {req.Text}}
	if req.Link != "" {
		form.Set("link", req.Link)
	}

	result, err := h.Upstream.PostForm(r.Context(), path, form, imageTimeout)
	writeImage(w, r, label, result, err)
}

// HandleFluxPro godoc
//
//	@Summary		Flux Pro Image Generation
//	@Description	Generates four high quality images. The upstream response shape is passed through unchanged.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ImageRequest		true	"Prompt"
//	@Success		200		{object}	map[string]any		"upstream response"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/flux-pro [post].
func (h *ImageHandler) HandleFluxPro(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text prompt is required")
		return
	}

	form := url.Values{"text": {req.Text}}
	result, err := h.Upstream.PostForm(r.Context(), "/api/flux-pro.php", form, fluxTimeout)
	if err != nil {
		writeUpstreamError(w, r, err, "Flux Pro")
		return
	}

	if result.IsJSON() {
		httpx.WriteJSON(w, http.StatusOK, result.JSON())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"response": result.Text()})
}

// HandleImgCV godoc
//
//	@Summary		High Quality Image Generation
//	@Description	Generates a single high quality image from the prompt.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ImageRequest		true	"Prompt"
//	@Success		200		{object}	ImageResponse		"image link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/img-cv [post].
func (h *ImageHandler) HandleImgCV(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text prompt is required")
		return
	}

	form := url.Values{"text": {req.Text}}
	result, err := h.Upstream.PostForm(r.Context(), "/api/img-cv.php", form, imageTimeout)
	writeImage(w, r, "img-cv", result, err)
}

// HandleNanoBanana godoc
//
//	@Summary		Merge Multiple Images
//	@Description	Merges up to ten images following the text instructions. Links are comma separated.
//	@Tags			Image Generation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		MultiImageRequest	true	"Prompt and comma-separated image URLs"
//	@Success		200		{object}	ImageResponse		"merged image link"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/nano-banana [post].
func (h *ImageHandler) HandleNanoBanana(w http.ResponseWriter, r *http.Request) {
	var req MultiImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var links []string
	for _, l := range strings.Split(req.Links, ",") {
		if l = strings.TrimSpace(l); l != "" {
			links = append(links, l)
		}
	}
	if len(links) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "At least one link is required")
		return
	}
	if len(links) > maxMergeLinks {
		httpx.WriteError(w, http.StatusBadRequest, "A maximum of 10 images is supported")
		return
	}

	form := url.Values{
		"text":  {req.Text},
		"links": {strings.Join(links, ",")},
	}
	result, err := h.Upstream.PostForm(r.Context(), "/api/nano-banana.php", form, nanoBananaTimeout)
	writeImage(w, r, "Nano Banana", result, err)
}
