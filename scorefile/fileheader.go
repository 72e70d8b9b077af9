package scorefile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// FileHeader is the 24-byte header every supported score file's decrypted
// stream begins with, ahead of the LZSS-compressed segment body. It is
// shared between Perfect Cherry Blossom and Imperishable Night: both games
// lay the same seven fields out identically.
type FileHeader struct {
	Version       uint16
	HeaderSize    uint32
	DecompFullSz  uint32
	DecompBodySz  uint32
	EncodedBodySz uint32
}

// ReadFileHeader reads a FileHeader from an already-decrypted stream (the
// output of scorecrypt.Decryptor, read before the LZSS decompressor is
// attached).
func ReadFileHeader(r io.Reader) (FileHeader, error) {
	var buf [24]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FileHeader{}, fmt.Errorf("scorefile: reading file header: %w", err)
	}

	return FileHeader{
		Version:       binary.LittleEndian.Uint16(buf[0:2]),
		HeaderSize:    binary.LittleEndian.Uint32(buf[4:8]),
		DecompFullSz:  binary.LittleEndian.Uint32(buf[12:16]),
		DecompBodySz:  binary.LittleEndian.Uint32(buf[16:20]),
		EncodedBodySz: binary.LittleEndian.Uint32(buf[20:24]),
	}, nil
}
