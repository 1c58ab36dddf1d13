package msgcipher

import (
	"time"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/encoding"
)

// Encrypt seals plaintext under key, stamping the message with the current
// time. The timestamp records encryption time, not send time.
func Encrypt(key, plaintext, additionalData []byte) (domain.EncryptedMessage, error) {
	return EncryptAt(key, plaintext, additionalData, time.Now().UnixMilli())
}

// EncryptAt seals plaintext with a caller-chosen timestamp. The session layer
// uses it so the timestamp inside additionalData and the one on the message
// are the same value.
func EncryptAt(key, plaintext, additionalData []byte, timestamp int64) (domain.EncryptedMessage, error) {
	blob, err := crypto.Seal(key, plaintext, additionalData)
	if err != nil {
		return domain.EncryptedMessage{}, err
	}
	return domain.EncryptedMessage{
		Ciphertext: encoding.ToBase64(blob),
		Timestamp:  timestamp,
	}, nil
}

// Decrypt opens msg and returns the plaintext together with the original
// encryption timestamp. The caller must supply the same associated data used
// at encryption time or the tag check fails.
func Decrypt(key []byte, msg domain.EncryptedMessage, additionalData []byte) ([]byte, int64, error) {
	blob, err := encoding.FromBase64(msg.Ciphertext)
	if err != nil {
		// Corrupted transport encoding is indistinguishable from tampering.
		return nil, 0, domain.ErrAuthentication
	}
	plaintext, err := crypto.Open(key, blob, additionalData)
	if err != nil {
		return nil, 0, err
	}
	return plaintext, msg.Timestamp, nil
}

// EncryptBytes seals a raw binary payload (attachments) with the same
// nonce-prepend convention but no associated data and no transport encoding.
func EncryptBytes(key, payload []byte) ([]byte, error) {
	return crypto.Seal(key, payload, nil)
}

// DecryptBytes is the inverse of EncryptBytes.
func DecryptBytes(key, blob []byte) ([]byte, error) {
	return crypto.Open(key, blob, nil)
}
