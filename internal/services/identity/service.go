package identity

import (
	"crypto/ecdh"
	"fmt"
	"sync"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
)

// minPassphraseLength guards the at-rest encryption of a stored identity.
const minPassphraseLength = 8

// ErrWeakPassphrase is returned when a persisting operation gets a passphrase
// below the minimum length.
var ErrWeakPassphrase = fmt.Errorf("passphrase must be at least %d characters", minPassphraseLength)

// Service is the identity key manager. The curve is injected at construction,
// never read from a global, so call sites survive a future curve migration.
type Service struct {
	curve ecdh.Curve
	store domain.IdentityStore

	mu sync.Mutex // serializes generation and backup/restore per identity
}

// New returns an identity service on the given curve, persisting through
// store. A nil store keeps the service purely in-memory.
func New(curve ecdh.Curve, store domain.IdentityStore) *Service {
	if curve == nil {
		curve = crypto.DefaultCurve()
	}
	return &Service{curve: curve, store: store}
}

// Curve reports the agreement curve this manager operates on.
func (s *Service) Curve() ecdh.Curve { return s.curve }

// Generate creates a fresh identity key pair and, when a store is configured,
// persists it encrypted under the passphrase. Fails only on entropy failure
// or a store write error; a store failure leaves nothing committed.
func (s *Service) Generate(passphrase string) (domain.IdentityKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil && len(passphrase) < minPassphraseLength {
		return domain.IdentityKeyPair{}, ErrWeakPassphrase
	}
	pair, err := crypto.GenerateKeyPair(s.curve)
	if err != nil {
		return domain.IdentityKeyPair{}, err
	}
	if s.store != nil {
		if err := s.store.SaveIdentity(passphrase, pair); err != nil {
			return domain.IdentityKeyPair{}, err
		}
	}
	return pair, nil
}

// Load decrypts and returns the stored identity.
func (s *Service) Load(passphrase string) (domain.IdentityKeyPair, error) {
	if s.store == nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("no identity store configured")
	}
	return s.store.LoadIdentity(passphrase)
}

// Export serializes pair into its portable device-migration record.
func (s *Service) Export(pair domain.IdentityKeyPair) (domain.PortableKeyPair, error) {
	return crypto.ExportKeyPair(pair)
}

// Import is the inverse of Export.
func (s *Service) Import(rec domain.PortableKeyPair) (domain.IdentityKeyPair, error) {
	return crypto.ImportKeyPair(rec)
}

// ImportPeerKey imports a peer's base64 public key on this manager's curve.
func (s *Service) ImportPeerKey(publicBase64 string) (*ecdh.PublicKey, error) {
	return crypto.ImportPublicKey(s.curve, publicBase64)
}

// CreateBackup wraps the private key of pair in a password-protected record.
// The derivation is intentionally slow; keep it off latency-sensitive paths.
func (s *Service) CreateBackup(pair domain.IdentityKeyPair, password string) (domain.EncryptedKeyBackup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return crypto.CreateBackup(pair, password)
}

// RestoreBackup recovers a key pair from backup with the original password.
// A failed restore leaves any stored identity untouched.
func (s *Service) RestoreBackup(backup domain.EncryptedKeyBackup, password string) (domain.IdentityKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return crypto.RestoreBackup(backup, password)
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
