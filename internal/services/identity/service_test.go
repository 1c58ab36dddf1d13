package identity_test

import (
	"crypto/ecdh"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/services/identity"
	"sealchat/internal/store"
)

func newService(t *testing.T) *identity.Service {
	t.Helper()
	return identity.New(ecdh.X25519(), store.NewFileStore(t.TempDir()))
}

func TestGenerateAndLoad(t *testing.T) {
	svc := newService(t)

	pair, err := svc.Generate("a long passphrase")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Fingerprint)

	loaded, err := svc.Load("a long passphrase")
	require.NoError(t, err)
	assert.Equal(t, pair.Fingerprint, loaded.Fingerprint)
	assert.Equal(t, pair.PublicBytes, loaded.PublicBytes)
}

func TestGenerateRejectsWeakPassphrase(t *testing.T) {
	svc := newService(t)

	_, err := svc.Generate("short")
	assert.ErrorIs(t, err, identity.ErrWeakPassphrase)
}

func TestGenerateWithoutStoreSkipsPolicy(t *testing.T) {
	svc := identity.New(ecdh.X25519(), nil)

	pair, err := svc.Generate("")
	require.NoError(t, err)
	assert.NotNil(t, pair.Private)
}

func TestExportImport(t *testing.T) {
	svc := identity.New(ecdh.P256(), nil)

	pair, err := svc.Generate("")
	require.NoError(t, err)

	rec, err := svc.Export(pair)
	require.NoError(t, err)
	assert.Equal(t, "p256", rec.Curve)

	back, err := svc.Import(rec)
	require.NoError(t, err)
	assert.Equal(t, pair.Fingerprint, back.Fingerprint)
}

func TestImportPeerKey(t *testing.T) {
	svc := identity.New(ecdh.X25519(), nil)

	peer, err := svc.Generate("")
	require.NoError(t, err)

	pub, err := svc.ImportPeerKey(encoding.ToBase64(peer.PublicBytes))
	require.NoError(t, err)
	assert.Equal(t, peer.PublicBytes, pub.Bytes())

	_, err = svc.ImportPeerKey("!!!")
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestBackupRestoreThroughService(t *testing.T) {
	svc := newService(t)

	pair, err := svc.Generate("a long passphrase")
	require.NoError(t, err)

	backup, err := svc.CreateBackup(pair, "backup password")
	require.NoError(t, err)
	assert.Equal(t, pair.Fingerprint.String(), backup.Fingerprint)

	restored, err := svc.RestoreBackup(backup, "backup password")
	require.NoError(t, err)
	assert.Equal(t, pair.Fingerprint, restored.Fingerprint)

	_, err = svc.RestoreBackup(backup, "not the password")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}
