/*

Package scorecrypt implements the two streaming decryptors used by Touhou
score files: the rotate-XOR cipher shared by every supported game (the
"generation-7" scheme) and the windowed outer cipher ThCrypt layered on top
of it for Touhou 8.

*/
package scorecrypt

import (
	"encoding/binary"
	"io"
)

func rotl8(x byte, n uint) byte {
	n &= 7
	return (x << n) | (x >> (8 - n))
}

// Decryptor decrypts a Touhou score-file body using the rotate-XOR
// recurrence: for every input byte x,
//
//	x_out = x_in XOR key
//	key   = (key + x_out).rotate_left(3)
//	checksum += x_out  (wrapping uint16 add)
//
// It is constructed by skipping one header byte, reading a seed byte that
// seeds the rotating key, and reading two further bytes (under the same
// evolving key, but not folded into the running checksum) that give the
// target checksum the fully-decrypted body is expected to sum to.
//
// Decryptor implements io.Reader, decrypting in place as bytes are pulled
// from the wrapped source; it is meant to be used as a streaming filter
// ahead of the LZSS decompressor (package lzss), not as a block transform.
type Decryptor struct {
	src      io.Reader
	key      byte
	checksum uint16
	target   uint16
}

// NewDecryptor constructs a Decryptor wrapping src, consuming the 4-byte
// key-derivation prefix (1 skipped byte, 1 seed byte, 2 target-checksum
// bytes) from src immediately.
func NewDecryptor(src io.Reader) (*Decryptor, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(src, prefix[:]); err != nil {
		return nil, err
	}

	// prefix[0] is skipped outright.
	key := rotl8(prefix[1], 3)

	target := [2]byte{prefix[2], prefix[3]}
	target[0] ^= key
	key = rotl8(key+target[0], 3)
	target[1] ^= key
	key = rotl8(key+target[1], 3)

	return &Decryptor{
		src:    src,
		key:    key,
		target: binary.LittleEndian.Uint16(target[:]),
	}, nil
}

// Read decrypts bytes read from the wrapped source in place.
func (d *Decryptor) Read(buf []byte) (int, error) {
	n, err := d.src.Read(buf)

	for i := 0; i < n; i++ {
		x := buf[i] ^ d.key
		buf[i] = x
		d.key = rotl8(d.key+x, 3)
		d.checksum += uint16(x)
	}

	return n, err
}

// ChecksumOK reports whether the accumulated checksum over every byte
// decrypted so far (excluding the 2 target-checksum bytes consumed at
// construction) matches the target checksum read from the file.
//
// A false return does not necessarily mean the body failed to parse —
// a checksum mismatch is reported but never halts parsing.
func (d *Decryptor) ChecksumOK() bool {
	return d.checksum == d.target
}

// Checksum returns the running checksum accumulated so far.
func (d *Decryptor) Checksum() uint16 { return d.checksum }

// TargetChecksum returns the checksum value the file declares the body
// should sum to.
func (d *Decryptor) TargetChecksum() uint16 { return d.target }
