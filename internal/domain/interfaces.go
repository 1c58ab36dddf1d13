package domain

import "crypto/ecdh"

// IdentityService manages long-term identity key pairs: generation, portable
// export/import, peer key import and password-protected backup.
type IdentityService interface {
	Generate(passphrase string) (IdentityKeyPair, error)
	Load(passphrase string) (IdentityKeyPair, error)
	Export(pair IdentityKeyPair) (PortableKeyPair, error)
	Import(rec PortableKeyPair) (IdentityKeyPair, error)
	ImportPeerKey(publicBase64 string) (*ecdh.PublicKey, error)
	CreateBackup(pair IdentityKeyPair, password string) (EncryptedKeyBackup, error)
	RestoreBackup(backup EncryptedKeyBackup, password string) (IdentityKeyPair, error)
}

// SessionService is the only surface the chat layer calls for message
// confidentiality: establish a session, then encrypt and decrypt under it.
type SessionService interface {
	Establish(localID, peerID UserID, pair IdentityKeyPair, peerPublicBase64 string, peerFingerprint Fingerprint) (SecureSession, error)
	EncryptMessage(sess *SecureSession, plaintext []byte) (EncryptedMessage, error)
	DecryptMessage(sess *SecureSession, msg EncryptedMessage) ([]byte, int64, error)
}

// IdentityStore persists the local identity at rest, encrypted under a
// passphrase. Implementations must not commit partial state on failure.
type IdentityStore interface {
	SaveIdentity(passphrase string, pair IdentityKeyPair) error
	LoadIdentity(passphrase string) (IdentityKeyPair, error)
	HasIdentity() bool
}
