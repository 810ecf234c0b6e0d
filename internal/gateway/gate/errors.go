package gate

import "net/http"

// Denial is a terminal admission failure: it carries the HTTP status and the
// one-line message returned to the caller. Messages never leak internal
// detail; the underlying cause is logged separately.
type Denial struct {
	Status  int
	Message string
}

func (d *Denial) Error() string { return d.Message }

var (
	ErrMissingRequestID = &Denial{http.StatusBadRequest, "X-Request-ID header is required"}
	ErrReplayDetected   = &Denial{http.StatusBadRequest, "Request ID already used (replay detected)"}
	ErrMissingAuth      = &Denial{http.StatusUnauthorized, "Authorization header required"}
	ErrExpiredToken     = &Denial{http.StatusUnauthorized, "Token has expired"}
	ErrInvalidToken     = &Denial{http.StatusUnauthorized, "Invalid token"}
	ErrClockSkew        = &Denial{http.StatusBadRequest, "Request timestamp out of allowed window"}
	ErrInvalidSignature = &Denial{http.StatusUnauthorized, "Invalid HMAC signature"}
	ErrClientSuspended  = &Denial{http.StatusForbidden, "Client account is not active"}
	ErrInternal         = &Denial{http.StatusInternalServerError, "Internal server error"}
)
