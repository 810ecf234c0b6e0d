package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVideoHandler_HandleTextToVideo(t *testing.T) {
	t.Parallel()

	h := &VideoHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/veo3.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "a storm at sea", r.PostForm.Get("text"))

		jsonReply(`{"video_url":"https://cdn.example/v.mp4"}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleTextToVideo), `{"text":"a storm at sea"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VideoResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "https://cdn.example/v.mp4", resp.VideoURL)
	require.Equal(t, "text-to-video", resp.ProcessingType)
	require.True(t, resp.HasAudio)

	t.Run("text required", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleTextToVideo), `{}`)
		requireDenied(t, rec, http.StatusBadRequest, "Text input is required")
	})
}

func TestVideoHandler_HandleImageToVideo(t *testing.T) {
	t.Parallel()

	h := &VideoHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "https://img.example/src.png", r.PostForm.Get("link"))

		jsonReply(`{"url":"https://cdn.example/v.mp4"}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleImageToVideo),
		`{"text":"animate this","link":"https://img.example/src.png"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VideoResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "image-to-video", resp.ProcessingType)

	t.Run("both fields required", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleImageToVideo), `{"text":"animate this"}`)
		requireDenied(t, rec, http.StatusBadRequest, "Both text and link are required")
	})
}
