package agreement

import (
	"crypto/ecdh"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"sealchat/internal/domain"
	"sealchat/internal/util/memzero"
)

// SessionKeyBytes is the size of every derived session key.
const SessionKeyBytes = 32

// The two context labels behind the directional keys. Distinct labels yield
// cryptographically independent keys from the same shared secret.
const (
	labelSendLow  = "session-key-1"
	labelSendHigh = "session-key-2"
)

// SharedSecret runs Diffie-Hellman between our private key and the peer's
// public key. Low-order and off-curve peer keys are rejected.
func SharedSecret(priv *ecdh.PrivateKey, peer *ecdh.PublicKey) ([]byte, error) {
	secret, err := priv.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAgreement, err)
	}
	return secret, nil
}

// SessionKey expands sharedSecret into one AES-256 key: HKDF-SHA256 extract
// with salt (zero-filled 32 bytes when nil) followed by expand with info.
func SessionKey(sharedSecret, salt []byte, info string) ([]byte, error) {
	if salt == nil {
		salt = make([]byte, sha256.Size)
	}
	key := make([]byte, SessionKeyBytes)
	r := hkdf.New(sha256.New, sharedSecret, salt, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Bidirectional computes the shared secret once and derives both directional
// keys. The party whose fingerprint sorts lower (byte-wise, not locale-aware)
// sends under key-1 and receives under key-2; the other party takes the
// opposite assignment.
func Bidirectional(
	priv *ecdh.PrivateKey,
	peer *ecdh.PublicKey,
	ourFingerprint, peerFingerprint domain.Fingerprint,
) (domain.SessionKeys, error) {
	secret, err := SharedSecret(priv, peer)
	if err != nil {
		return domain.SessionKeys{}, err
	}
	defer memzero.Zero(secret)

	keyLow, err := SessionKey(secret, nil, labelSendLow)
	if err != nil {
		return domain.SessionKeys{}, err
	}
	keyHigh, err := SessionKey(secret, nil, labelSendHigh)
	if err != nil {
		return domain.SessionKeys{}, err
	}

	if ourFingerprint.String() < peerFingerprint.String() {
		return domain.SessionKeys{SendKey: keyLow, ReceiveKey: keyHigh}, nil
	}
	return domain.SessionKeys{SendKey: keyHigh, ReceiveKey: keyLow}, nil
}

// PerformKeyExchange is the unidirectional convenience composition: one
// shared secret, one derived key under the caller's context label.
func PerformKeyExchange(priv *ecdh.PrivateKey, peer *ecdh.PublicKey, info string) ([]byte, error) {
	secret, err := SharedSecret(priv, peer)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(secret)
	return SessionKey(secret, nil, info)
}
