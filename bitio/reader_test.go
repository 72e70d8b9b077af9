package bitio

import (
	"bytes"
	"testing"
)

func TestReadBit(t *testing.T) {
	// 0b10110010
	br := New(bytes.NewReader([]byte{0xB2}))

	want := []bool{true, false, true, true, false, false, true, false}
	for i, w := range want {
		bit, ok, err := br.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if !ok {
			t.Fatalf("bit %d: expected more input", i)
		}
		if bit != w {
			t.Errorf("bit %d: got %v, want %v", i, bit, w)
		}
	}

	if _, ok, err := br.ReadBit(); err != nil || ok {
		t.Errorf("expected EOF after 8 bits, got ok=%v err=%v", ok, err)
	}
}

func TestReadBits(t *testing.T) {
	// 0x1234 = 0b0001_0010_0011_0100
	br := New(bytes.NewReader([]byte{0x12, 0x34}))

	v, ok, err := br.ReadBits(13)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if want := uint16(0x0246); v != want {
		t.Errorf("got %#x, want %#x", v, want)
	}

	v, ok, err = br.ReadBits(3)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if want := uint16(0x4); v != want {
		t.Errorf("got %#x, want %#x", v, want)
	}
}

func TestReadBitsEOFDiscardsPartial(t *testing.T) {
	br := New(bytes.NewReader([]byte{0xFF}))

	// Consume all 8 bits one at a time first.
	for i := 0; i < 8; i++ {
		if _, ok, _ := br.ReadBit(); !ok {
			t.Fatalf("expected bit %d to be available", i)
		}
	}

	if _, ok, err := br.ReadBits(4); err != nil || ok {
		t.Errorf("expected no-more-input reading straddled field, got ok=%v err=%v", ok, err)
	}
}

func TestReadBitsStraddlingEOF(t *testing.T) {
	br := New(bytes.NewReader([]byte{0xFF}))

	if _, ok, err := br.ReadBits(10); err != nil || ok {
		t.Errorf("expected no-more-input for a field that straddles EOF, got ok=%v err=%v", ok, err)
	}
}
