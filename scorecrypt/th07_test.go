package scorecrypt

import (
	"bytes"
	"io"
	"testing"
)

// buildStream encrypts plaintext with the inverse of Decryptor's recurrence
// so tests can round-trip without a real score file fixture.
func buildStream(skip byte, seed byte, plaintext []byte) []byte {
	key := rotl8(seed, 3)

	var checksum uint16
	for _, b := range plaintext {
		checksum += uint16(b)
	}

	target := [2]byte{byte(checksum), byte(checksum >> 8)}
	t0 := target[0] ^ key
	key = rotl8(key+target[0], 3)
	t1 := target[1] ^ key
	key = rotl8(key+target[1], 3)

	out := make([]byte, 0, 4+len(plaintext))
	out = append(out, skip, seed, t0, t1)

	for _, b := range plaintext {
		x := b ^ key
		out = append(out, x)
		key = rotl8(key+b, 3)
	}

	return out
}

func TestDecryptorRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	stream := buildStream(0x00, 0x7A, plaintext)

	dec, err := NewDecryptor(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewDecryptor: %v", err)
	}

	got, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if !bytes.Equal(got, plaintext) {
		t.Errorf("got %q, want %q", got, plaintext)
	}
	if !dec.ChecksumOK() {
		t.Errorf("checksum mismatch: got %#x, want %#x", dec.Checksum(), dec.TargetChecksum())
	}
}

func TestDecryptorChecksumMismatchIsNonFatal(t *testing.T) {
	plaintext := []byte("payload")
	stream := buildStream(0x00, 0x11, plaintext)
	// Corrupt one of the target checksum bytes after key derivation so the
	// body decrypts fine but the declared checksum no longer matches.
	stream[2] ^= 0xFF

	dec, err := NewDecryptor(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewDecryptor: %v", err)
	}

	if _, err := io.ReadAll(dec); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if dec.ChecksumOK() {
		t.Errorf("expected checksum mismatch to be detected")
	}
}

func TestDecryptorShortPrefixErrors(t *testing.T) {
	if _, err := NewDecryptor(bytes.NewReader([]byte{0x01, 0x02})); err == nil {
		t.Errorf("expected error for truncated prefix")
	}
}
