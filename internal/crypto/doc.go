// Package crypto composes the platform primitives used by sealchat.
//
// # Contents
//
//   - Curve-parametric identity key generation, export and import (keys.go).
//     The curve is a configuration point of the identity key manager, not a
//     hard-coded constant; X25519 is the default.
//   - AES-256-GCM sealing with the nonce-prepend convention (aead.go)
//   - Password-based key backup: PBKDF2-SHA256 derivation plus an
//     authenticated envelope around the private key (backup.go)
//
// # Errors
//
// Functions return the sentinel kinds from internal/domain wrapped with
// context. Authenticated-decryption failures always surface as
// domain.ErrAuthentication regardless of cause.
//
// # Notes
//
// This package specifies how primitives are composed, not how they work
// internally. It never logs and never retries; callers decide what a failure
// means for them.
package crypto
