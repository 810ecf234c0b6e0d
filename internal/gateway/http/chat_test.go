package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatHandler_HandleAI(t *testing.T) {
	t.Parallel()

	h := &ChatHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ai.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "what is Go", r.PostForm.Get("super-genius"))

		jsonReply(`{"response":"a language"}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleAI), `{"super_genius":"what is Go"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "a language", resp.Response)
	require.Equal(t, "super-genius", resp.ModelUsed)
	require.GreaterOrEqual(t, resp.ProcessingTime, 0.0)
}

func TestChatHandler_HandleAI_Validation(t *testing.T) {
	t.Parallel()

	h := &ChatHandler{}

	t.Run("no model field", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleAI), `{}`)
		requireDenied(t, rec, http.StatusBadRequest,
			"Please provide a query for one of the available models")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleAI), `{not json`)
		requireDenied(t, rec, http.StatusBadRequest, "Invalid JSON in request body")
	})
}

func TestChatHandler_HandleGemini(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantPath  string
		wantKey   string
		wantModel string
	}{
		{"pro", `{"gemini_pro":"hi"}`, "/api/gemini-dark.php", "gemini-pro", "gemini-2.5-pro"},
		{"deep", `{"gemini_deep":"hi"}`, "/api/gemini-dark.php", "gemini-deep", "gemini-2.5-deep"},
		{"flash on its own endpoint", `{"text":"hi"}`, "/DARK/gemini.php", "text", "gemini-2.5-flash"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := &ChatHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, tc.wantPath, r.URL.Path)

				var payload map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				require.Equal(t, "hi", payload[tc.wantKey])

				jsonReply(`{"response":"hello"}`)(w, r)
			})}

			rec := postJSON(t, http.HandlerFunc(h.HandleGemini), tc.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ChatResponse
			decodeBody(t, rec, &resp)
			require.Equal(t, tc.wantModel, resp.ModelUsed)
		})
	}

	t.Run("no input", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, http.HandlerFunc((&ChatHandler{}).HandleGemini), `{}`)
		requireDenied(t, rec, http.StatusBadRequest,
			"Please provide input for one of the Gemini models")
	})
}

func TestChatHandler_HandleGemma(t *testing.T) {
	t.Parallel()

	h := &ChatHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "hi", r.PostForm.Get("12b"))

		jsonReply(`{"response":"hello"}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleGemma), `{"model_12b":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "gemma-12b", resp.ModelUsed)

	t.Run("no input", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleGemma), `{}`)
		requireDenied(t, rec, http.StatusBadRequest,
			"Please provide input for one of the Gemma models")
	})
}

func TestChatHandler_HandleWormGPT(t *testing.T) {
	t.Parallel()

	h := &ChatHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/DARK/api/wormgpt.php", r.URL.Path)
		jsonReply(`{"response":"hello"}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleWormGPT), `{"text":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "wormgpt", resp.ModelUsed)

	t.Run("text required", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleWormGPT), `{}`)
		requireDenied(t, rec, http.StatusBadRequest, "Text input is required")
	})
}

func TestChatHandler_UpstreamFailure(t *testing.T) {
	t.Parallel()

	h := &ChatHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleAI), `{"online":"hi"}`)
	requireDenied(t, rec, http.StatusBadGateway, "AI chat upstream error")
}
