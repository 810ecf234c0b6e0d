package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

// decodeJSON parses the request body, writing the 400 envelope on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return false
	}
	return true
}

// writeUpstreamError maps upstream failures to gateway statuses: deadline
// exceeded becomes 504, a non-2xx upstream reply becomes 502, anything else
// is the opaque 500.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, label string) {
	log := slogx.FromContext(r.Context())

	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrTimeout):
		log.Warn(label+" upstream timeout", "error", err)
		httpx.WriteError(w, http.StatusGatewayTimeout, label+" request timed out")
	case errors.As(err, &statusErr):
		log.Error(label+" upstream error", "status", statusErr.Code)
		httpx.WriteError(w, http.StatusBadGateway, label+" upstream error")
	default:
		log.Error(label+" request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// dateStamp renders the dd/mm/yyyy date the upstream image endpoints use.
func dateStamp() string {
	return time.Now().Format("02/01/2006")
}
