package memory

import (
	"encoding/binary"
	"math"
)

// FieldRef is a pointer-chain field description (§4.6): a non-empty
// ordered sequence of byte offsets. Resolution starts from Offsets[0];
// for every subsequent offset it reads a pointer at the running address,
// fails if that pointer is null, and adds the offset to it. A
// single-offset chain resolves directly to that address with no pointer
// reads at all.
type FieldRef struct {
	Offsets []uintptr
}

// Resolve walks the chain against h, returning the address the field's
// value is stored at. It performs a fresh walk on every call; no caching
// is done.
func (f FieldRef) Resolve(h ProcessHandle) (uintptr, error) {
	addr := f.Offsets[0]

	for _, off := range f.Offsets[1:] {
		ptr, err := h.ReadPointer(addr)
		if err != nil {
			return 0, &ReadError{Kind: ReadErrorIO, Offset: addr, Err: err}
		}
		if ptr == 0 {
			return 0, &ReadError{Kind: ReadErrorNullPointer, Offset: addr}
		}

		next := ptr + off
		if next < ptr {
			return 0, &ReadError{Kind: ReadErrorOverflow, Offset: addr}
		}
		addr = next
	}

	return addr, nil
}

// Decoder turns a field's raw little-endian bytes into its typed Go
// value. Every binding table in memory/th07, memory/th08 and memory/th10
// uses one of the decoders below.
type Decoder[T any] func([]byte) T

// Field is one binding-table entry: a pointer chain plus the decoder for
// the value living at the end of it. It is the Go analogue of the
// source's generated FixedData<T, LittleEndian<4>> field.
type Field[T any] struct {
	ref    FieldRef
	width  int
	decode Decoder[T]
}

// NewField constructs a Field reading width bytes at the end of the
// pointer chain described by offsets, decoded by decode.
func NewField[T any](width int, decode Decoder[T], offsets ...uintptr) Field[T] {
	return Field[T]{ref: FieldRef{Offsets: offsets}, width: width, decode: decode}
}

// Read performs one pointer-chain walk and one typed read, returning the
// field's current value.
func (f Field[T]) Read(h ProcessHandle) (T, error) {
	var zero T

	addr, err := f.ref.Resolve(h)
	if err != nil {
		return zero, err
	}

	buf := make([]byte, f.width)
	if err := h.ReadAt(addr, buf); err != nil {
		return zero, &ReadError{Kind: ReadErrorIO, Offset: addr, Err: err}
	}

	return f.decode(buf), nil
}

// DecodeU8, DecodeU16, DecodeU32 and DecodeF32 are the little-endian
// decoders every per-game binding table builds its fields from; §6.2's
// offsets are declared against these wire widths.
func DecodeU8(b []byte) uint8 { return b[0] }

func DecodeU16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func DecodeU32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func DecodeF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// NewU8Field, NewU16Field, NewU32Field and NewF32Field construct a Field
// of the matching wire width and decoder, so a binding table reads as a
// plain table of offsets rather than repeating width/decoder boilerplate
// per field.
func NewU8Field(offsets ...uintptr) Field[uint8] { return NewField(1, DecodeU8, offsets...) }

func NewU16Field(offsets ...uintptr) Field[uint16] { return NewField(2, DecodeU16, offsets...) }

func NewU32Field(offsets ...uintptr) Field[uint32] { return NewField(4, DecodeU32, offsets...) }

func NewF32Field(offsets ...uintptr) Field[float32] { return NewField(4, DecodeF32, offsets...) }
