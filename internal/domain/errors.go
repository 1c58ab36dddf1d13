package domain

import "errors"

var (
	// ErrEntropyFailure means the secure random source is unavailable.
	// Fatal for the operation; never retried internally.
	ErrEntropyFailure = errors.New("secure random source unavailable")

	// ErrKeyImport means key material is not a valid point on the curve or
	// not a valid private scalar.
	ErrKeyImport = errors.New("invalid key material")

	// ErrDeserialization means a key or backup record is malformed and could
	// not be decoded far enough to validate.
	ErrDeserialization = errors.New("malformed record")

	// ErrAgreement means the peer public key was rejected during key
	// agreement (wrong curve, off-curve point, or a low-order element).
	ErrAgreement = errors.New("key agreement rejected peer public key")

	// ErrAuthentication covers every authenticated-decryption failure: wrong
	// backup password, tampered ciphertext and plain corruption all report
	// this same error so callers cannot be used as a guessing oracle.
	ErrAuthentication = errors.New("authentication failed")
)
