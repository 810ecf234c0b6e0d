package domain

import "time"

// AccessToken is the stored record of an issued bearer token, kept so tokens
// can be revoked before their natural expiry. Verification itself is
// stateless; this record is only consulted for the revocation check.
type AccessToken struct {
	JTI       string
	ClientID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool
}

// Valid reports whether the token record is still usable at now.
func (t AccessToken) Valid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
