/*

Package lzss implements the LZ77-family decompressor used by Touhou score
files once their body has been decrypted (package scorecrypt). It is a
streaming, resumable decoder: each call to Read may stop mid-token and pick
up again on the next call, so it composes with io.Reader pipelines built
around arbitrarily small buffers.

*/
package lzss

import (
	"errors"
	"io"

	"github.com/hakurei-works/thstat/bitio"
)

// ErrInvalidRunLength is returned when a back-reference token declares a
// copy length greater than 19, which the format never produces; decoding
// cannot continue once the bitstream has desynchronized this badly.
var ErrInvalidRunLength = errors.New("lzss: invalid run length")

const (
	dictSize = 0x2000
	dictMask = dictSize - 1
)

// decoderState mirrors the token-level state machine: a Decompressor is
// either about to decode the next token, mid-way through emitting a single
// literal byte, or mid-way through emitting a back-reference run.
type decoderState int

const (
	stateInit decoderState = iota
	stateOutputSingle
	stateOutputMultiple
	stateDone
)

// Decompressor decodes the 8192-byte-windowed LZ77 scheme score files use.
// The starting output position determines how the back-reference position is
// folded into the dictionary, which in turn determines whether backward
// references can reach position zero; use NewStream for modern
// (stream-oriented) score file bodies and NewSlice for the legacy format
// that starts at position zero.
type Decompressor struct {
	br  *bitio.Reader
	dict [dictSize]byte
	pos  int

	state      decoderState
	singleByte byte
	multiBuf   [19]byte
	multiPos   int
	multiLen   int

	err error
}

// NewStream returns a Decompressor whose output position starts at 1, as
// used by every score file body this package decodes.
func NewStream(src io.Reader) *Decompressor {
	return newDecompressor(src, 1)
}

// NewSlice returns a Decompressor whose output position starts at 0,
// matching the legacy in-memory variant of the format.
func NewSlice(src io.Reader) *Decompressor {
	return newDecompressor(src, 0)
}

func newDecompressor(src io.Reader, startPos int) *Decompressor {
	return &Decompressor{
		br:    bitio.New(src),
		pos:   startPos,
		state: stateInit,
	}
}

// decodeNext decodes the next token and installs it as the current state.
// It leaves d.state as stateDone once the bitstream signals end of stream
// (an index-zero back-reference) or the underlying reader is exhausted.
func (d *Decompressor) decodeNext() {
	if d.err != nil {
		d.state = stateDone
		return
	}

	isLiteral, ok, err := d.br.ReadBit()
	if err != nil {
		d.err = err
		d.state = stateDone
		return
	}
	if !ok {
		d.state = stateDone
		return
	}

	if isLiteral {
		val, ok, err := d.br.ReadBits(8)
		if err != nil {
			d.err = err
			d.state = stateDone
			return
		}
		if !ok {
			d.state = stateDone
			return
		}

		b := byte(val)
		d.dict[d.pos&dictMask] = b
		d.pos++

		d.singleByte = b
		d.state = stateOutputSingle
		return
	}

	idx, ok, err := d.br.ReadBits(13)
	if err != nil {
		d.err = err
		d.state = stateDone
		return
	}
	if !ok {
		d.state = stateDone
		return
	}
	if idx == 0 {
		// End-of-stream marker.
		d.state = stateDone
		return
	}

	extra, ok, err := d.br.ReadBits(4)
	if err != nil {
		d.err = err
		d.state = stateDone
		return
	}
	if !ok {
		d.state = stateDone
		return
	}

	length := int(extra) + 3
	if length > 19 {
		d.err = ErrInvalidRunLength
		d.state = stateDone
		return
	}

	for i := 0; i < length; i++ {
		srcIdx := (int(idx) + i) & dictMask
		b := d.dict[srcIdx]
		d.dict[d.pos&dictMask] = b
		d.pos++
		d.multiBuf[i] = b
	}

	d.multiPos = 0
	d.multiLen = length
	d.state = stateOutputMultiple
}

// Read implements io.Reader, decoding as many bytes as fit in buf before
// returning. It never blocks past what a single decode step needs from the
// underlying reader.
func (d *Decompressor) Read(buf []byte) (int, error) {
	n := 0

	for len(buf) > 0 {
		switch d.state {
		case stateInit:
			d.decodeNext()

		case stateOutputSingle:
			buf[0] = d.singleByte
			buf = buf[1:]
			n++
			d.decodeNext()

		case stateOutputMultiple:
			remaining := d.multiLen - d.multiPos
			if remaining <= len(buf) {
				copy(buf[:remaining], d.multiBuf[d.multiPos:d.multiLen])
				buf = buf[remaining:]
				n += remaining
				d.decodeNext()
			} else {
				copy(buf, d.multiBuf[d.multiPos:d.multiPos+len(buf)])
				d.multiPos += len(buf)
				n += len(buf)
				buf = nil
			}

		case stateDone:
			if d.err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, d.err
			}
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
	}

	return n, nil
}
