package store_test

import (
	"crypto/ecdh"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/store"
)

func TestSaveLoadIdentity(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)

	assert.False(t, fs.HasIdentity())

	pair, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	require.NoError(t, fs.SaveIdentity("storage passphrase", pair))
	assert.True(t, fs.HasIdentity())

	loaded, err := fs.LoadIdentity("storage passphrase")
	require.NoError(t, err)
	assert.Equal(t, pair.Fingerprint, loaded.Fingerprint)
	assert.Equal(t, pair.PublicBytes, loaded.PublicBytes)
}

func TestLoadIdentityWrongPassphrase(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())

	pair, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	require.NoError(t, fs.SaveIdentity("right one", pair))

	_, err = fs.LoadIdentity("wrong one")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestFailedSaveLeavesPreviousIdentity(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)

	first, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	require.NoError(t, fs.SaveIdentity("pass", first))

	before, err := os.ReadFile(filepath.Join(dir, "identity.json"))
	require.NoError(t, err)

	// A pair with no private key cannot be enveloped; the write must not
	// start, leaving the stored identity untouched.
	err = fs.SaveIdentity("pass", domain.IdentityKeyPair{})
	require.Error(t, err)

	after, err := os.ReadFile(filepath.Join(dir, "identity.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	loaded, err := fs.LoadIdentity("pass")
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, loaded.Fingerprint)
}

func TestStoredRecordIsTextSafe(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)

	pair, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	require.NoError(t, fs.SaveIdentity("pass", pair))

	data, err := os.ReadFile(filepath.Join(dir, "identity.json"))
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	for _, b := range data {
		assert.True(t, b == '\n' || (b >= 0x20 && b < 0x7f), "identity file contains raw binary")
	}
}
