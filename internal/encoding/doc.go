// Package encoding holds the pure byte/text conversion helpers used across
// the core: base64 and hex codecs, secure random byte generation, byte
// concatenation, fingerprint formatting and the two equality comparators.
//
// # Notes
//
// Equal is an early-exit comparison for non-secret values such as lengths and
// public material. ConstantTimeEqual must be used wherever either operand is
// secret-bearing: it accumulates over the full length so timing reveals
// nothing about where a mismatch occurs. Only a length difference may
// short-circuit, since lengths are not secret.
package encoding
