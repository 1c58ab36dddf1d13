package encoding

import (
	"encoding/hex"
	"strings"
)

// fingerprintBytes is how much of the raw public key encoding feeds the
// fingerprint. The truncation happens without a hash step; that is part of
// the format shared with paired implementations and must not change.
const fingerprintBytes = 8

// FormatFingerprint derives the display fingerprint from raw public key
// bytes: the first 8 bytes as uppercase hex, grouped XXXX-XXXX-XXXX-XXXX.
// Identical public keys always yield identical fingerprints.
func FormatFingerprint(pub []byte) string {
	raw := pub
	if len(raw) > fingerprintBytes {
		raw = raw[:fingerprintBytes]
	}
	hx := strings.ToUpper(hex.EncodeToString(raw))

	var b strings.Builder
	b.Grow(len(hx) + len(hx)/4)
	for i := 0; i < len(hx); i += 4 {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + 4
		if end > len(hx) {
			end = len(hx)
		}
		b.WriteString(hx[i:end])
	}
	return b.String()
}
