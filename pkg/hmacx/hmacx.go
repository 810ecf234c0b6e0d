// Package hmacx implements the optional request-signature layer: an
// HMAC-SHA256 over the canonical string METHOD\nPATH\nTIMESTAMP\nBODYHASH
// keyed with the client's shared secret. All functions are stateless; secrets
// are explicit parameters.
package hmacx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Scheme is the signature prefix clients send on the wire, e.g.
// "sha256=<hex>". It must be stripped before comparison.
const Scheme = "sha256="

// Sign computes the hex-encoded HMAC-SHA256 signature over the canonical
// request string.
func Sign(secret []byte, method, path, timestamp, bodyHash string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(method))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(path))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(bodyHash))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature and compares it against candidate in
// constant time. The candidate must already have the scheme prefix stripped.
func Verify(secret []byte, method, path, timestamp, bodyHash, candidate string) bool {
	expected := Sign(secret, method, path, timestamp, bodyHash)
	return hmac.Equal([]byte(expected), []byte(candidate))
}

// BodyHash returns the hex-encoded SHA-256 digest of the exact raw request
// body bytes.
func BodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// StripScheme removes the "sha256=" prefix from a wire signature. Returns
// the input unchanged if the prefix is absent.
func StripScheme(sig string) string {
	return strings.TrimPrefix(sig, Scheme)
}
