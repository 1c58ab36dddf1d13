package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
)

const identityFile = "identity.json"

// FileStore stores the encrypted identity in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveIdentity wraps pair in a password envelope and writes it atomically.
func (s *FileStore) SaveIdentity(passphrase string, pair domain.IdentityKeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup, err := crypto.CreateBackup(pair, passphrase)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, identityFile), backup, 0o600)
}

// LoadIdentity reads and decrypts the stored identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.IdentityKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backup domain.EncryptedKeyBackup
	if err := readJSON(filepath.Join(s.dir, identityFile), &backup); err != nil {
		return domain.IdentityKeyPair{}, err
	}
	return crypto.RestoreBackup(backup, passphrase)
}

// HasIdentity reports whether an identity file exists.
func (s *FileStore) HasIdentity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, identityFile))
	return err == nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
	}
	return nil
}

// writeJSON lands the record via a temp file and rename so readers never see
// a partially written identity.
func writeJSON(path string, v any, mode os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".identity-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Compile-time assertion that FileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*FileStore)(nil)
