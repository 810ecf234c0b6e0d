package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMusicHandler_HandleLyrics(t *testing.T) {
	t.Parallel()

	h := &MusicHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/music.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "la la la", r.PostForm.Get("lyrics"))
		require.Equal(t, "rock, upbeat", r.PostForm.Get("tags"))

		jsonReply(`{"audio_url":"https://cdn.example/song.mp3","duration":180}`)(w, r)
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleLyrics),
		`{"lyrics":"la la la","tags":"rock, upbeat"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	require.Equal(t, "https://cdn.example/song.mp3", resp["audio_url"])
	require.EqualValues(t, 180, resp["duration"])

	t.Run("lyrics required", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleLyrics), `{"tags":"rock"}`)
		requireDenied(t, rec, http.StatusBadRequest, "Lyrics are required")
	})
}

func TestMusicHandler_HandleInstrumental(t *testing.T) {
	t.Parallel()

	h := &MusicHandler{Upstream: fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/create-music.php", r.URL.Path)
		_, _ = w.Write([]byte("https://cdn.example/track.mp3"))
	})}

	rec := postJSON(t, http.HandlerFunc(h.HandleInstrumental), `{"text":"calm piano"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	require.Equal(t, "https://cdn.example/track.mp3", resp["audio_url"])

	t.Run("text required", func(t *testing.T) {
		rec := postJSON(t, http.HandlerFunc(h.HandleInstrumental), `{}`)
		requireDenied(t, rec, http.StatusBadRequest, "Text input is required")
	})
}
