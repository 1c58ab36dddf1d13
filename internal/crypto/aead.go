package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"sealchat/internal/domain"
	"sealchat/internal/encoding"
)

const (
	// KeyBytes is the AES-256 key size shared by session and backup keys.
	KeyBytes = 32
	// NonceBytes is the GCM nonce size. A fresh random nonce per call; reuse
	// under the same key breaks the construction.
	NonceBytes = 12
	// SaltBytes is the per-backup random salt size.
	SaltBytes = 32
)

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("%w: want %d-byte key, got %d", domain.ErrKeyImport, KeyBytes, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under key with a fresh nonce and a 128-bit tag,
// returning nonce | ciphertext | tag.
func Seal(key, plaintext, additionalData []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce, err := encoding.RandomBytes(NonceBytes)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Open splits the nonce off blob and decrypts. Tag failures, truncation and
// mismatched additional data are all reported as domain.ErrAuthentication,
// so callers cannot distinguish corruption from tampering.
func Open(key, blob, additionalData []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(blob) < NonceBytes+aead.Overhead() {
		return nil, domain.ErrAuthentication
	}
	plaintext, err := aead.Open(nil, blob[:NonceBytes], blob[NonceBytes:], additionalData)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return plaintext, nil
}
