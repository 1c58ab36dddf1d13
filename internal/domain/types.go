package domain

import "crypto/ecdh"

// UserID identifies a chat participant to the messaging layer.
type UserID string

// String returns the string form of the user identifier.
func (u UserID) String() string { return string(u) }

// Fingerprint is the grouped hex identifier of a public key, formatted
// XXXX-XXXX-XXXX-XXXX. It doubles as the deterministic tie-break input for
// session key ordering, so its derivation must stay byte-stable.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// IdentityKeyPair is the long-term identity of a device or user.
//
// The private handle must never be copied into plaintext, logged or
// transmitted; it leaves the process only through the explicit export and
// password-backup operations.
type IdentityKeyPair struct {
	Private     *ecdh.PrivateKey
	Public      *ecdh.PublicKey
	PublicBytes []byte
	Fingerprint Fingerprint
}

// PortableKeyPair is the device-migration export of an IdentityKeyPair.
// Callers own the responsibility of never transmitting it over a network or
// storing it unencrypted.
type PortableKeyPair struct {
	Curve      string `json:"curve"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// EncryptedKeyBackup is a password-protected encryption of exported private
// key material. All fields are string-safe (base64 or plain text) so the
// record can live in any text-capable store. A backup is useless without the
// original password; there is no recovery path around it.
type EncryptedKeyBackup struct {
	Curve       string `json:"curve"`
	Ciphertext  string `json:"ciphertext"`
	Salt        string `json:"salt"`
	Nonce       string `json:"nonce"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
}

// SessionKeys holds the two directional keys of one conversation session.
// Party A's SendKey equals party B's ReceiveKey and vice versa. Ephemeral:
// recomputed whenever either party's long-term key changes, never persisted.
type SessionKeys struct {
	SendKey    []byte
	ReceiveKey []byte
}

// EncryptedMessage is one sealed message payload as it crosses the transport:
// base64(nonce | ciphertext | tag) plus the encryption-time timestamp in
// milliseconds. Immutable once created.
type EncryptedMessage struct {
	Ciphertext string `json:"ciphertext"`
	Timestamp  int64  `json:"timestamp"`
}

// SecureSession is an established pairwise session between the local identity
// and one peer. It carries everything the message operations need so callers
// cannot accidentally omit the associated-data binding.
type SecureSession struct {
	ID               string
	LocalID          UserID
	PeerID           UserID
	LocalFingerprint Fingerprint
	PeerFingerprint  Fingerprint
	Keys             SessionKeys
	EstablishedAt    int64 // milliseconds
}
