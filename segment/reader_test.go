package segment

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func appendSegment(buf *bytes.Buffer, sig string, body []byte) {
	if len(sig) != 4 {
		panic("signature must be 4 bytes")
	}

	var header [8]byte
	copy(header[:4], sig)
	binary.LittleEndian.PutUint16(header[4:6], uint16(headerSize+len(body)))
	binary.LittleEndian.PutUint16(header[6:8], uint16(len(body)))

	buf.Write(header[:])
	buf.Write(body)
}

func appendTerminator(buf *bytes.Buffer) {
	var header [8]byte
	copy(header[:4], "END_")
	binary.LittleEndian.PutUint16(header[4:6], 4) // size1 <= 8
	buf.Write(header[:])
}

func TestReaderYieldsKnownAndUnknownSignatures(t *testing.T) {
	var buf bytes.Buffer
	appendSegment(&buf, "CATK", []byte{0x01, 0x02, 0x03, 0x04})
	appendSegment(&buf, "FOO_", make([]byte, 32))
	appendSegment(&buf, "PSCR", []byte{0x05, 0x06})
	appendTerminator(&buf)

	r := New(&buf)

	segs, err := ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}

	if got := segs[0].SignatureString(); got != "CATK" {
		t.Errorf("segs[0] signature = %q, want CATK", got)
	}
	if got := segs[1].SignatureString(); got != "FOO_" {
		t.Errorf("segs[1] signature = %q, want FOO_", got)
	}
	if segs[1].Size1 != 40 {
		t.Errorf("segs[1] size1 = %d, want 40", segs[1].Size1)
	}
	if len(segs[1].Body) != 32 {
		t.Errorf("segs[1] body length = %d, want 32", len(segs[1].Body))
	}
	if got := segs[2].SignatureString(); got != "PSCR" {
		t.Errorf("segs[2] signature = %q, want PSCR", got)
	}
}

func TestReaderStopsAtTerminator(t *testing.T) {
	var buf bytes.Buffer
	appendSegment(&buf, "CATK", []byte{0x00})
	appendTerminator(&buf)
	// Anything past the terminator must never be read.
	buf.WriteString("garbage-past-end-of-stream")

	r := New(&buf)
	segs, err := ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
}

func TestReaderTruncatedBodyErrors(t *testing.T) {
	var header [8]byte
	copy(header[:4], "CATK")
	binary.LittleEndian.PutUint16(header[4:6], 100) // declares a body far larger than provided
	r := New(bytes.NewReader(header[:]))

	if _, err := r.Next(); err == nil {
		t.Fatalf("expected an error for a truncated body")
	}
}

func TestReaderEmptyStreamYieldsNoMoreSegments(t *testing.T) {
	r := New(bytes.NewReader(nil))
	if _, err := r.Next(); err != ErrNoMoreSegments {
		t.Errorf("got %v, want ErrNoMoreSegments", err)
	}
}
