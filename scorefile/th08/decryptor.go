package th08

import (
	"io"

	"github.com/hakurei-works/thstat/scorecrypt"
)

// Touhou 8's outer-cipher parameters.
const (
	thCryptInitByte  = 0x59
	thCryptXorStep   = 0x79
	thCryptBlockSize = 0x0100
	thCryptLimit     = 0x0C00
)

// newDecryptor composes this module's generic scorecrypt.Decryptor on top
// of a scorecrypt.ThCrypt-wrapped source. The two ciphers' on-disk key
// derivation turns out to need no game-specific glue: ThCrypt already
// plaintext-passes-through once its own byte limit is reached, so reading
// the 4-byte key-derivation prefix through it rather than directly from
// the raw stream is all Touhou 8's own Decryptor::new does differently
// from Touhou 7's -- the rotate-XOR recurrence beneath it is identical.
func newDecryptor(src io.Reader) (*scorecrypt.Decryptor, error) {
	outer := scorecrypt.NewThCrypt(src, thCryptInitByte, thCryptXorStep, thCryptBlockSize, thCryptLimit)
	return scorecrypt.NewDecryptor(outer)
}
