package session_test

import (
	"crypto/ecdh"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/services/session"
)

func makePair(t *testing.T) domain.IdentityKeyPair {
	t.Helper()
	pair, err := crypto.GenerateKeyPair(ecdh.X25519())
	require.NoError(t, err)
	return pair
}

func TestFullExchangeScenario(t *testing.T) {
	facade := session.New()
	alice := makePair(t)
	bob := makePair(t)

	// The transport delivered each party the other's public key and
	// fingerprint; both establish locally with no negotiation round trip.
	aliceSess, err := facade.Establish("alice", "bob", alice, encoding.ToBase64(bob.PublicBytes), bob.Fingerprint)
	require.NoError(t, err)
	bobSess, err := facade.Establish("bob", "alice", bob, encoding.ToBase64(alice.PublicBytes), alice.Fingerprint)
	require.NoError(t, err)

	assert.NotEmpty(t, aliceSess.ID)
	assert.Equal(t, aliceSess.Keys.SendKey, bobSess.Keys.ReceiveKey)
	assert.Equal(t, aliceSess.Keys.ReceiveKey, bobSess.Keys.SendKey)

	const plaintext = "Secret session message!"
	msg, err := facade.EncryptMessage(&aliceSess, []byte(plaintext))
	require.NoError(t, err)
	assert.Positive(t, msg.Timestamp)

	got, ts, err := facade.DecryptMessage(&bobSess, msg)
	require.NoError(t, err)
	assert.Equal(t, plaintext, string(got))
	assert.Equal(t, msg.Timestamp, ts)
}

func TestDecryptRejectsShiftedTimestamp(t *testing.T) {
	facade := session.New()
	alice := makePair(t)
	bob := makePair(t)

	aliceSess, err := facade.Establish("alice", "bob", alice, encoding.ToBase64(bob.PublicBytes), bob.Fingerprint)
	require.NoError(t, err)
	bobSess, err := facade.Establish("bob", "alice", bob, encoding.ToBase64(alice.PublicBytes), alice.Fingerprint)
	require.NoError(t, err)

	msg, err := facade.EncryptMessage(&aliceSess, []byte("hello"))
	require.NoError(t, err)

	// A relay shifting the timestamp breaks the associated-data binding.
	msg.Timestamp++
	_, _, err = facade.DecryptMessage(&bobSess, msg)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestEstablishVerifiesFingerprint(t *testing.T) {
	facade := session.New()
	alice := makePair(t)
	bob := makePair(t)
	mallory := makePair(t)

	// Fingerprint of one key presented with another key's material.
	_, err := facade.Establish("alice", "bob", alice, encoding.ToBase64(mallory.PublicBytes), bob.Fingerprint)
	assert.ErrorIs(t, err, domain.ErrKeyImport)

	// An empty fingerprint is filled in from the key itself.
	sess, err := facade.Establish("alice", "bob", alice, encoding.ToBase64(bob.PublicBytes), "")
	require.NoError(t, err)
	assert.Equal(t, bob.Fingerprint, sess.PeerFingerprint)
}

func TestEstablishRejectsBadPeerKey(t *testing.T) {
	facade := session.New()
	alice := makePair(t)

	_, err := facade.Establish("alice", "bob", alice, "not base64", "")
	assert.ErrorIs(t, err, domain.ErrDeserialization)

	_, err = facade.Establish("alice", "bob", alice, encoding.ToBase64([]byte("short")), "")
	assert.ErrorIs(t, err, domain.ErrKeyImport)

	// Low-order peer element is rejected at agreement time.
	_, err = facade.Establish("alice", "bob", alice, encoding.ToBase64(make([]byte, 32)), "")
	assert.ErrorIs(t, err, domain.ErrAgreement)
}
