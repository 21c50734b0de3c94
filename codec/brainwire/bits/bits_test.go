/*
DESCRIPTION
  bits_test.go provides testing for the bit writer and reader.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package bits

import (
	"bytes"
	"io"
	"testing"
)

// TestWriteBits checks that writes of various widths pack MSB-first
// into the expected bytes.
func TestWriteBits(t *testing.T) {
	tests := []struct {
		writes  [][2]uint64 // (pattern, nbits) pairs.
		want    []byte
		wantPos int
	}{
		{
			writes:  [][2]uint64{{0x1, 1}},
			want:    []byte{0x80},
			wantPos: 1,
		},
		{
			writes:  [][2]uint64{{0x8, 4}, {0x3, 2}, {0xf, 4}, {0x23, 6}},
			want:    []byte{0x8f, 0xe3},
			wantPos: 16,
		},
		{
			// Zero-width writes must not move the position.
			writes:  [][2]uint64{{0xff, 0}, {0x1, 1}, {0xff, 0}},
			want:    []byte{0x80},
			wantPos: 1,
		},
		{
			// A write spanning three bytes.
			writes:  [][2]uint64{{0x5, 3}, {0xffff, 16}},
			want:    []byte{0xbf, 0xff, 0xe0},
			wantPos: 19,
		},
		{
			// A 70-bit zero run followed by a terminator.
			writes:  [][2]uint64{{0, 70}, {0x1, 1}},
			want:    []byte{0, 0, 0, 0, 0, 0, 0, 0, 0x02},
			wantPos: 71,
		},
	}

	for i, tt := range tests {
		w := NewWriter(0)
		for _, wr := range tt.writes {
			w.WriteBits(wr[0], int(wr[1]))
		}
		if w.Pos() != tt.wantPos {
			t.Errorf("test %d: unexpected position, got: %d, want: %d", i, w.Pos(), tt.wantPos)
		}
		if !bytes.Equal(w.Bytes(), tt.want) {
			t.Errorf("test %d: unexpected bytes, got: %#v, want: %#v", i, w.Bytes(), tt.want)
		}
	}
}

// TestSymmetry checks that any sequence of writes read back with the
// same widths recovers every value exactly.
func TestSymmetry(t *testing.T) {
	type field struct {
		pattern uint64
		n       int
	}
	var fields []field

	// A deterministic mix of widths 0..16 with patterns derived from a
	// simple recurrence.
	v := uint64(0x2545f4914f6cdd1d)
	for n := 0; n <= 16; n++ {
		for j := 0; j < 8; j++ {
			v ^= v << 13
			v ^= v >> 7
			v ^= v << 17
			fields = append(fields, field{pattern: v & (1<<uint(n) - 1), n: n})
		}
	}

	w := NewWriter(64)
	for _, f := range fields {
		w.WriteBits(f.pattern, f.n)
	}

	r := NewReader(w.Bytes())
	for i, f := range fields {
		got, err := r.ReadBits(f.n)
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != f.pattern {
			t.Fatalf("read %d: got: %#x, want: %#x (width %d)", i, got, f.pattern, f.n)
		}
	}
	if r.Pos() != w.Pos() {
		t.Errorf("unexpected final position, got: %d, want: %d", r.Pos(), w.Pos())
	}
}

// TestReadPastEnd checks that reading beyond the buffer returns
// io.ErrUnexpectedEOF and does not advance the position.
func TestReadPastEnd(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.ReadBits(1); err != io.ErrUnexpectedEOF {
		t.Errorf("unexpected error, got: %v, want: %v", err, io.ErrUnexpectedEOF)
	}
	if _, err := r.ReadBool(); err != io.ErrUnexpectedEOF {
		t.Errorf("unexpected error from ReadBool, got: %v, want: %v", err, io.ErrUnexpectedEOF)
	}
	if r.Pos() != 8 {
		t.Errorf("position moved on failed read, got: %d, want: 8", r.Pos())
	}
}

// TestReadBool checks single-bit reads against a known pattern.
func TestReadBool(t *testing.T) {
	r := NewReader([]byte{0xa5}) // 1010 0101
	want := []bool{true, false, true, false, false, true, false, true}
	for i, wb := range want {
		got, err := r.ReadBool()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if got != wb {
			t.Errorf("bit %d: got: %v, want: %v", i, got, wb)
		}
	}
}
