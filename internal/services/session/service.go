package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mr-tron/base58"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/protocol/agreement"
	"sealchat/internal/protocol/msgcipher"
)

// Service implements the session façade. Stateless: every session it hands
// out is owned by the caller.
type Service struct{}

// New returns the session façade.
func New() *Service { return &Service{} }

// Establish builds a secure session between the local identity and a peer
// known by public key and fingerprint.
//
// The peer fingerprint must match the one recomputed from the imported key;
// a mismatch means the transport delivered inconsistent identity material and
// the peer is rejected. An empty peerFingerprint is filled in locally.
func (s *Service) Establish(
	localID, peerID domain.UserID,
	pair domain.IdentityKeyPair,
	peerPublicBase64 string,
	peerFingerprint domain.Fingerprint,
) (domain.SecureSession, error) {
	peerPub, err := crypto.ImportPublicKey(pair.Private.Curve(), peerPublicBase64)
	if err != nil {
		return domain.SecureSession{}, err
	}

	computed := domain.Fingerprint(encoding.FormatFingerprint(peerPub.Bytes()))
	if peerFingerprint == "" {
		peerFingerprint = computed
	} else if peerFingerprint != computed {
		return domain.SecureSession{}, fmt.Errorf("%w: peer fingerprint does not match public key", domain.ErrKeyImport)
	}

	keys, err := agreement.Bidirectional(pair.Private, peerPub, pair.Fingerprint, peerFingerprint)
	if err != nil {
		return domain.SecureSession{}, err
	}

	now := time.Now().UnixMilli()
	return domain.SecureSession{
		ID:               sessionID(pair.Fingerprint, peerFingerprint, now),
		LocalID:          localID,
		PeerID:           peerID,
		LocalFingerprint: pair.Fingerprint,
		PeerFingerprint:  peerFingerprint,
		Keys:             keys,
		EstablishedAt:    now,
	}, nil
}

// EncryptMessage seals plaintext for the session's peer. The associated data
// binds sender, recipient and the encryption timestamp automatically.
func (s *Service) EncryptMessage(sess *domain.SecureSession, plaintext []byte) (domain.EncryptedMessage, error) {
	timestamp := time.Now().UnixMilli()
	additionalData := msgcipher.AAD(sess.LocalID.String(), sess.PeerID.String(), timestamp)
	return msgcipher.EncryptAt(sess.Keys.SendKey, plaintext, additionalData, timestamp)
}

// DecryptMessage opens a message from the session's peer, recomputing the
// associated data from the peer-to-local direction and the message timestamp.
// Returns the plaintext and the original encryption timestamp.
func (s *Service) DecryptMessage(sess *domain.SecureSession, msg domain.EncryptedMessage) ([]byte, int64, error) {
	additionalData := msgcipher.AAD(sess.PeerID.String(), sess.LocalID.String(), msg.Timestamp)
	return msgcipher.Decrypt(sess.Keys.ReceiveKey, msg, additionalData)
}

// sessionID mints a compact identifier from both fingerprints (ordered, so
// either party minting at the same instant produces the same value) plus the
// establishment time.
func sessionID(a, b domain.Fingerprint, establishedAt int64) string {
	lo, hi := a.String(), b.String()
	if hi < lo {
		lo, hi = hi, lo
	}
	return base58.Encode([]byte(lo + "|" + hi + "|" + strconv.FormatInt(establishedAt, 10)))
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
