package encoding_test

import (
	"bytes"
	"regexp"
	"testing"

	"sealchat/internal/encoding"
)

func TestBase64RoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xfe, 0xff, 'a', 'b'}
	out, err := encoding.FromBase64(encoding.ToBase64(in))
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round trip mismatch: %x != %x", in, out)
	}
	if _, err := encoding.FromBase64("not base64!!!"); err == nil {
		t.Fatal("want error for invalid base64")
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	s := encoding.ToHex(in)
	if s != "deadbeef" {
		t.Fatalf("want lowercase hex deadbeef, got %q", s)
	}
	out, err := encoding.FromHex(s)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round trip mismatch: %x != %x", in, out)
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := encoding.RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	b, err := encoding.RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("want 32 bytes, got %d and %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatal("two random draws are identical")
	}
}

func TestConcat(t *testing.T) {
	got := encoding.Concat([]byte("ab"), nil, []byte("c"), []byte{})
	if string(got) != "abc" {
		t.Fatalf("got %q, want abc", got)
	}
}

func TestEqualAndConstantTimeEqual(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 3}
	c := []byte{1, 2, 4}

	if !encoding.Equal(a, b) || encoding.Equal(a, c) {
		t.Fatal("Equal misbehaves")
	}
	if !encoding.ConstantTimeEqual(a, b) {
		t.Fatal("ConstantTimeEqual rejects equal slices")
	}
	if encoding.ConstantTimeEqual(a, c) {
		t.Fatal("ConstantTimeEqual accepts differing slices")
	}
	if encoding.ConstantTimeEqual(a, a[:2]) {
		t.Fatal("ConstantTimeEqual accepts differing lengths")
	}
}

var fingerprintRE = regexp.MustCompile(`^[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`)

func TestFormatFingerprint(t *testing.T) {
	pub := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xaa, 0xbb}

	fp := encoding.FormatFingerprint(pub)
	if fp != "0102-0304-0506-0708" {
		t.Fatalf("got %q, want 0102-0304-0506-0708", fp)
	}
	if !fingerprintRE.MatchString(fp) {
		t.Fatalf("fingerprint %q does not match the display format", fp)
	}

	// Stability: identical input, identical output, trailing bytes ignored.
	if again := encoding.FormatFingerprint(pub); again != fp {
		t.Fatalf("fingerprint not stable: %q then %q", fp, again)
	}
	longer := append(append([]byte(nil), pub...), 0xcc)
	if other := encoding.FormatFingerprint(longer); other != fp {
		t.Fatalf("bytes past the eighth changed the fingerprint: %q", other)
	}
}
