// Package agreement derives session key material between two identities.
//
// # Overview
//
// Both parties run the same elliptic-curve Diffie-Hellman over their identity
// keys, then expand the shared secret with HKDF-SHA256 under two fixed
// context labels to obtain one independent AES-256 key per direction.
//
// # Directionality
//
// No negotiation message decides which derived key is "send" and which is
// "receive": the transport is an untrusted relay and must not be used to
// agree on key roles. Instead, the two fingerprint strings are compared
// byte-wise and the party whose fingerprint sorts lower always takes the
// key-1 label for sending. Both sides converge on the same assignment from
// locally-known values. Equal fingerprints resolve to the not-lower branch on
// both sides, which is still symmetric.
//
// # Errors
//
// Invalid peer keys (off-curve, wrong curve, low-order elements) surface as
// domain.ErrAgreement. The peer is rejected, never silently replaced.
package agreement
