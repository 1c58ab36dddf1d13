package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
	"strings"

	"sealchat/internal/domain"
	"sealchat/internal/encoding"
	"sealchat/internal/util/memzero"
)

// DefaultCurve is the agreement curve used when configuration does not name
// one. X25519 keeps us compatible with existing deployments.
func DefaultCurve() ecdh.Curve { return ecdh.X25519() }

// CurveByName resolves a configuration curve name.
func CurveByName(name string) (ecdh.Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "x25519":
		return ecdh.X25519(), nil
	case "p256", "p-256":
		return ecdh.P256(), nil
	case "p384", "p-384":
		return ecdh.P384(), nil
	}
	return nil, fmt.Errorf("%w: unknown curve %q", domain.ErrDeserialization, name)
}

// CurveName returns the configuration name of a curve.
func CurveName(c ecdh.Curve) string {
	switch c {
	case ecdh.P256():
		return "p256"
	case ecdh.P384():
		return "p384"
	default:
		return "x25519"
	}
}

// GenerateKeyPair creates a fresh key pair on curve, usable for agreement
// operations, with its raw public encoding and fingerprint precomputed.
func GenerateKeyPair(curve ecdh.Curve) (domain.IdentityKeyPair, error) {
	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: %v", domain.ErrEntropyFailure, err)
	}
	return pairFromPrivate(priv), nil
}

// ImportPublicKey imports a peer's base64 public key for agreement. Points
// not on the curve and the identity element are rejected.
func ImportPublicKey(curve ecdh.Curve, publicBase64 string) (*ecdh.PublicKey, error) {
	raw, err := encoding.FromBase64(publicBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: public key is not valid base64", domain.ErrDeserialization)
	}
	pub, err := curve.NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyImport, err)
	}
	return pub, nil
}

// ExportKeyPair serializes a key pair into its portable record for device
// migration. The record contains the private scalar; callers must never
// transmit it over a network or store it unencrypted.
func ExportKeyPair(pair domain.IdentityKeyPair) (domain.PortableKeyPair, error) {
	if pair.Private == nil {
		return domain.PortableKeyPair{}, fmt.Errorf("%w: key pair has no private key", domain.ErrKeyImport)
	}
	return domain.PortableKeyPair{
		Curve:      CurveName(pair.Private.Curve()),
		PublicKey:  encoding.ToBase64(pair.PublicBytes),
		PrivateKey: encoding.ToBase64(pair.Private.Bytes()),
	}, nil
}

// ImportKeyPair is the inverse of ExportKeyPair.
func ImportKeyPair(rec domain.PortableKeyPair) (domain.IdentityKeyPair, error) {
	curve, err := CurveByName(rec.Curve)
	if err != nil {
		return domain.IdentityKeyPair{}, err
	}
	rawPriv, err := encoding.FromBase64(rec.PrivateKey)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: private key is not valid base64", domain.ErrDeserialization)
	}
	defer memzero.Zero(rawPriv)

	priv, err := curve.NewPrivateKey(rawPriv)
	if err != nil {
		return domain.IdentityKeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyImport, err)
	}
	pair := pairFromPrivate(priv)

	// The public half of the record is advisory; if present it must match
	// the key recomputed from the private scalar.
	if rec.PublicKey != "" {
		rawPub, err := encoding.FromBase64(rec.PublicKey)
		if err != nil {
			return domain.IdentityKeyPair{}, fmt.Errorf("%w: public key is not valid base64", domain.ErrDeserialization)
		}
		if !encoding.Equal(rawPub, pair.PublicBytes) {
			return domain.IdentityKeyPair{}, fmt.Errorf("%w: public key does not match private scalar", domain.ErrKeyImport)
		}
	}
	return pair, nil
}

func pairFromPrivate(priv *ecdh.PrivateKey) domain.IdentityKeyPair {
	pub := priv.PublicKey()
	raw := pub.Bytes()
	return domain.IdentityKeyPair{
		Private:     priv,
		Public:      pub,
		PublicBytes: raw,
		Fingerprint: domain.Fingerprint(encoding.FormatFingerprint(raw)),
	}
}
