package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
)

func TestWriteUpstreamError(t *testing.T) {
	t.Parallel()

	run := func(err error) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		writeUpstreamError(rec, req, err, "Voice")
		return rec
	}

	t.Run("timeout maps to 504", func(t *testing.T) {
		requireDenied(t, run(upstream.ErrTimeout),
			http.StatusGatewayTimeout, "Voice request timed out")
	})

	t.Run("upstream status maps to 502", func(t *testing.T) {
		requireDenied(t, run(&upstream.StatusError{Code: http.StatusInternalServerError}),
			http.StatusBadGateway, "Voice upstream error")
	})

	t.Run("anything else is opaque", func(t *testing.T) {
		requireDenied(t, run(errors.New("connection refused")),
			http.StatusInternalServerError, "Internal server error")
	})
}

func TestDecodeJSON_Invalid(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	var v struct{}
	require.False(t, decodeJSON(rec, req, &v))
	requireDenied(t, rec, http.StatusBadRequest, "Invalid JSON in request body")
}

func TestDateStamp(t *testing.T) {
	t.Parallel()

	_, err := time.Parse("02/01/2006", dateStamp())
	require.NoError(t, err)
}
