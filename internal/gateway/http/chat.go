package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

const chatTimeout = 30 * time.Second

type ChatRequest struct {
	Online       string `json:"online,omitempty"`
	Standard     string `json:"standard,omitempty"`
	SuperGenius  string `json:"super_genius,omitempty"`
	OnlineGenius string `json:"online_genius,omitempty"`
	GeminiPro    string `json:"gemini_pro,omitempty"`
	GeminiDeep   string `json:"gemini_deep,omitempty"`
	Text         string `json:"text,omitempty"`
	Model27B     string `json:"model_27b,omitempty"`
	Model12B     string `json:"model_12b,omitempty"`
	Model4B      string `json:"model_4b,omitempty"`
}

type ChatResponse struct {
	Status         string  `json:"status"`
	Response       string  `json:"response"`
	ModelUsed      string  `json:"model_used"`
	ProcessingTime float64 `json:"processing_time"`
}

// ChatHandler proxies the text generation endpoints.
type ChatHandler struct {
	Upstream *upstream.Client
}

// writeChat measures the round trip and renders the normalized chat envelope.
func (h *ChatHandler) writeChat(
	w http.ResponseWriter,
	r *http.Request,
	label, modelUsed string,
	call func() (upstream.Result, error),
) {
	start := time.Now()
	result, err := call()
	if err != nil {
		writeUpstreamError(w, r, err, label)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ChatResponse{
		Status:         "success",
		Response:       result.Field("response"),
		ModelUsed:      modelUsed,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

// HandleAI godoc
//
//	@Summary		Multi-Model AI Chat
//	@Description	Sends the prompt to one of the general-purpose text models. Exactly one model field is used, checked in order: online, standard, super_genius, online_genius.
//	@Tags			AI Models
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ChatRequest			true	"Prompt for one model"
//	@Success		200		{object}	ChatResponse		"generated text"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/ai [post].
func (h *ChatHandler) HandleAI(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	form := url.Values{}
	var modelUsed string
	switch {
	case req.Online != "":
		form.Set("online", req.Online)
		modelUsed = "online"
	case req.Standard != "":
		form.Set("standard", req.Standard)
		modelUsed = "standard"
	case req.SuperGenius != "":
		form.Set("super-genius", req.SuperGenius)
		modelUsed = "super-genius"
	case req.OnlineGenius != "":
		form.Set("online-genius", req.OnlineGenius)
		modelUsed = "online-genius"
	default:
		httpx.WriteError(w, http.StatusBadRequest, "Please provide a query for one of the available models")
		return
	}

	h.writeChat(w, r, "AI chat", modelUsed, func() (upstream.Result, error) {
		return h.Upstream.PostForm(r.Context(), "/api/ai.php", form, chatTimeout)
	})
}

// HandleGemini godoc
//
//	@Summary		Gemini AI Models
//	@Description	Proxies to the Gemini family. gemini_pro and gemini_deep hit the dark variant; text selects the flash model on its own endpoint.
//	@Tags			AI Models
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ChatRequest			true	"Prompt for one Gemini model"
//	@Success		200		{object}	ChatResponse		"generated text"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/gemini-dark [post].
func (h *ChatHandler) HandleGemini(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	path := "/api/gemini-dark.php"
	payload := map[string]string{}
	var modelUsed string
	switch {
	case req.GeminiPro != "":
		payload["gemini-pro"] = req.GeminiPro
		modelUsed = "gemini-2.5-pro"
	case req.GeminiDeep != "":
		payload["gemini-deep"] = req.GeminiDeep
		modelUsed = "gemini-2.5-deep"
	case req.Text != "":
		// Flash lives on its own endpoint.
		path = "/DARK/gemini.php"
		payload["text"] = req.Text
		modelUsed = "gemini-2.5-flash"
	default:
		httpx.WriteError(w, http.StatusBadRequest, "Please provide input for one of the Gemini models")
		return
	}

	h.writeChat(w, r, "Gemini", modelUsed, func() (upstream.Result, error) {
		return h.Upstream.PostJSON(r.Context(), path, payload, chatTimeout)
	})
}

// HandleGemma godoc
//
//	@Summary		Gemma AI Models
//	@Description	Proxies to the Gemma family. Exactly one of model_4b, model_12b or model_27b is used.
//	@Tags			AI Models
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ChatRequest			true	"Prompt for one Gemma model"
//	@Success		200		{object}	ChatResponse		"generated text"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/gemma [post].
func (h *ChatHandler) HandleGemma(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	form := url.Values{}
	var modelUsed string
	switch {
	case req.Model4B != "":
		form.Set("4b", req.Model4B)
		modelUsed = "gemma-4b"
	case req.Model12B != "":
		form.Set("12b", req.Model12B)
		modelUsed = "gemma-12b"
	case req.Model27B != "":
		form.Set("27b", req.Model27B)
		modelUsed = "gemma-27b"
	default:
		httpx.WriteError(w, http.StatusBadRequest, "Please provide input for one of the Gemma models")
		return
	}

	h.writeChat(w, r, "Gemma", modelUsed, func() (upstream.Result, error) {
		return h.Upstream.PostForm(r.Context(), "/api/gemma.php", form, chatTimeout)
	})
}

// HandleWormGPT godoc
//
//	@Summary		WormGPT AI Model
//	@Description	Proxies the text field to the WormGPT model.
//	@Tags			AI Models
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ChatRequest			true	"Prompt text"
//	@Success		200		{object}	ChatResponse		"generated text"
//	@Failure		400		{object}	httpx.ErrorResponse	"error"
//	@Router			/api/wormgpt [post].
func (h *ChatHandler) HandleWormGPT(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Text input is required")
		return
	}

	form := url.Values{"text": {req.Text}}
	h.writeChat(w, r, "WormGPT", "wormgpt", func() (upstream.Result, error) {
		return h.Upstream.PostForm(r.Context(), "/DARK/api/wormgpt.php", form, chatTimeout)
	})
}
