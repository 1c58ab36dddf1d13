package encoding

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"sealchat/internal/domain"
)

// ToBase64 returns standard base64 encoding without newlines.
func ToBase64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromBase64 decodes standard base64.
func FromBase64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// ToHex returns lowercase hex, two digits per byte, no separators.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes lowercase or uppercase hex.
func FromHex(s string) ([]byte, error) { return hex.DecodeString(s) }

// RandomBytes returns n bytes from the process-wide CSPRNG. A read failure is
// an entropy failure: fatal for the operation, surfaced to the caller.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntropyFailure, err)
	}
	return b, nil
}

// Concat joins byte slices into one freshly allocated slice.
func Concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether a and b hold the same bytes. Early-exit; for
// non-secret values only.
func Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// ConstantTimeEqual compares secret-bearing byte slices. It XOR-accumulates
// over the full length regardless of where a mismatch occurs; only a length
// difference short-circuits.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
