package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
)

// fakeUpstream serves canned upstream replies for handler tests.
func fakeUpstream(t *testing.T, h http.HandlerFunc) *upstream.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return upstream.New(srv.URL)
}

func jsonReply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func postRequest(t *testing.T, path, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postRequest(t, "/", body))

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func requireDenied(t *testing.T, rec *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()

	require.Equal(t, code, rec.Code)

	var envelope httpx.ErrorResponse
	decodeBody(t, rec, &envelope)
	require.Equal(t, msg, envelope.Error)
}
