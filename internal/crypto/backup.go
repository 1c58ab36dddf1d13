package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/util/memzero"
)

// BackupIterations is the PBKDF2-SHA256 round count for backup keys.
// Intentionally slow (hundreds of milliseconds); keep backup and restore off
// latency-sensitive paths.
const BackupIterations = 310_000

// DeriveBackupKey stretches a password and per-backup salt into an AES-256
// key. Deterministic for a fixed (password, salt); the caller wipes the key
// after one backup or restore call.
func DeriveBackupKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, BackupIterations, KeyBytes, sha256.New)
}

// CreateBackup wraps the private key of pair in a password-protected
// authenticated envelope with fresh salt and nonce. The returned record is
// string-safe for any text-capable store.
func CreateBackup(pair domain.IdentityKeyPair, password string) (domain.EncryptedKeyBackup, error) {
	if pair.Private == nil {
		return domain.EncryptedKeyBackup{}, fmt.Errorf("%w: key pair has no private key", domain.ErrKeyImport)
	}
	salt, err := encoding.RandomBytes(SaltBytes)
	if err != nil {
		return domain.EncryptedKeyBackup{}, err
	}
	nonce, err := encoding.RandomBytes(NonceBytes)
	if err != nil {
		return domain.EncryptedKeyBackup{}, err
	}

	key := DeriveBackupKey(password, salt)
	defer memzero.Zero(key)

	aead, err := newAEAD(key)
	if err != nil {
		return domain.EncryptedKeyBackup{}, err
	}

	rawPriv := pair.Private.Bytes()
	ciphertext := aead.Seal(nil, nonce, rawPriv, nil)
	memzero.Zero(rawPriv)

	return domain.EncryptedKeyBackup{
		Curve:       CurveName(pair.Private.Curve()),
		Ciphertext:  encoding.ToBase64(ciphertext),
		Salt:        encoding.ToBase64(salt),
		Nonce:       encoding.ToBase64(nonce),
		PublicKey:   encoding.ToBase64(pair.PublicBytes),
		Fingerprint: pair.Fingerprint.String(),
	}, nil
}

// RestoreBackup re-derives the backup key from the stored salt and the
// caller's password, then decrypts and re-imports the private key. A wrong
// password and a corrupted backup both surface as domain.ErrAuthentication.
func RestoreBackup(backup domain.EncryptedKeyBackup, password string) (domain.IdentityKeyPair, error) {
	curve, err := CurveByName(backup.Curve)
	if err != nil {
		return domain.IdentityKeyPair{}, err
	}
	salt, err := encoding.FromBase64(backup.Salt)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: salt is not valid base64", domain.ErrDeserialization)
	}
	nonce, err := encoding.FromBase64(backup.Nonce)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: nonce is not valid base64", domain.ErrDeserialization)
	}
	ciphertext, err := encoding.FromBase64(backup.Ciphertext)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: ciphertext is not valid base64", domain.ErrDeserialization)
	}

	key := DeriveBackupKey(password, salt)
	defer memzero.Zero(key)

	aead, err := newAEAD(key)
	if err != nil {
		return domain.IdentityKeyPair{}, err
	}
	rawPriv, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return domain.IdentityKeyPair{}, domain.ErrAuthentication
	}
	defer memzero.Zero(rawPriv)

	priv, err := curve.NewPrivateKey(rawPriv)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyImport, err)
	}
	return pairFromPrivate(priv), nil
}
