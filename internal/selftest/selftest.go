package selftest

import (
	"crypto/ecdh"
	"errors"
	"fmt"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/services/session"
)

// Step is the outcome of one stage of the round trip.
type Step struct {
	Name string
	OK   bool
	Err  error
}

// Passed reports whether every step succeeded.
func Passed(steps []Step) bool {
	for _, st := range steps {
		if !st.OK {
			return false
		}
	}
	return true
}

// Run exercises the whole core on curve: generate two identities, exchange
// public material, derive bidirectional keys on both sides, seal and open a
// message, then round-trip a password backup. Steps after a failure still
// appear in the result, marked failed.
func Run(curve ecdh.Curve) []Step {
	var steps []Step
	failed := false
	step := func(name string, fn func() error) {
		if failed {
			steps = append(steps, Step{Name: name, Err: errors.New("skipped: earlier step failed")})
			return
		}
		err := fn()
		steps = append(steps, Step{Name: name, OK: err == nil, Err: err})
		if err != nil {
			failed = true
		}
	}

	var (
		alice, bob domain.IdentityKeyPair
		aliceSess  domain.SecureSession
		bobSess    domain.SecureSession
		sealed     domain.EncryptedMessage
	)
	facade := session.New()
	const plaintext = "Secret session message!"

	step("generate-identities", func() error {
		var err error
		if alice, err = crypto.GenerateKeyPair(curve); err != nil {
			return err
		}
		bob, err = crypto.GenerateKeyPair(curve)
		return err
	})

	step("exchange-public-keys", func() error {
		// Simulate the transport: base64 public keys plus fingerprints.
		if _, err := crypto.ImportPublicKey(curve, encoding.ToBase64(bob.PublicBytes)); err != nil {
			return err
		}
		_, err := crypto.ImportPublicKey(curve, encoding.ToBase64(alice.PublicBytes))
		return err
	})

	step("derive-session-keys", func() error {
		var err error
		aliceSess, err = facade.Establish("alice", "bob", alice, encoding.ToBase64(bob.PublicBytes), bob.Fingerprint)
		if err != nil {
			return err
		}
		bobSess, err = facade.Establish("bob", "alice", bob, encoding.ToBase64(alice.PublicBytes), alice.Fingerprint)
		if err != nil {
			return err
		}
		if !encoding.ConstantTimeEqual(aliceSess.Keys.SendKey, bobSess.Keys.ReceiveKey) ||
			!encoding.ConstantTimeEqual(aliceSess.Keys.ReceiveKey, bobSess.Keys.SendKey) {
			return errors.New("directional keys are not symmetric")
		}
		return nil
	})

	step("encrypt-message", func() error {
		var err error
		sealed, err = facade.EncryptMessage(&aliceSess, []byte(plaintext))
		return err
	})

	step("decrypt-message", func() error {
		got, ts, err := facade.DecryptMessage(&bobSess, sealed)
		if err != nil {
			return err
		}
		if string(got) != plaintext {
			return fmt.Errorf("plaintext mismatch: got %q", got)
		}
		if ts != sealed.Timestamp {
			return fmt.Errorf("timestamp mismatch: got %d want %d", ts, sealed.Timestamp)
		}
		return nil
	})

	step("backup-restore", func() error {
		backup, err := crypto.CreateBackup(alice, "self-test passphrase")
		if err != nil {
			return err
		}
		restored, err := crypto.RestoreBackup(backup, "self-test passphrase")
		if err != nil {
			return err
		}
		if restored.Fingerprint != alice.Fingerprint {
			return errors.New("restored fingerprint differs")
		}
		if _, err := crypto.RestoreBackup(backup, "wrong passphrase"); !errors.Is(err, domain.ErrAuthentication) {
			return errors.New("wrong password did not fail authentication")
		}
		return nil
	})

	return steps
}
