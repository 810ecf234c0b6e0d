package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRootHandler(t *testing.T) {
	t.Parallel()

	rec := getJSON(t, RootHandler("v2.0.0"), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RootResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, "DarkGate API", resp.Message)
	require.Equal(t, "v2.0.0", resp.Version)
	require.Equal(t, "active", resp.Status)
	require.Equal(t, "/docs", resp.Endpoints["docs"])
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	t.Run("in-process cache", func(t *testing.T) {
		rec := getJSON(t, HealthHandler("v2.0.0", nil), "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		decodeBody(t, rec, &resp)
		require.Equal(t, "healthy", resp.Status)
		require.Equal(t, "in-memory", resp.ReplayCache)
	})

	t.Run("external cache reachable", func(t *testing.T) {
		check := func(r *http.Request) error { return nil }
		rec := getJSON(t, HealthHandler("v2.0.0", check), "/health")

		var resp HealthResponse
		decodeBody(t, rec, &resp)
		require.Equal(t, "connected", resp.ReplayCache)
	})

	t.Run("external cache down", func(t *testing.T) {
		check := func(r *http.Request) error { return errors.New("dial tcp: refused") }
		rec := getJSON(t, HealthHandler("v2.0.0", check), "/health")

		var resp HealthResponse
		decodeBody(t, rec, &resp)
		require.Equal(t, "healthy", resp.Status)
		require.Equal(t, "disconnected", resp.ReplayCache)
	})
}
