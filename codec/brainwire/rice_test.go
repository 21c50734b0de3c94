/*
NAME
  rice_test.go

DESCRIPTION
  rice_test.go contains tests for Rice coding and zig-zag folding.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package brainwire

import (
	"bytes"
	"testing"

	"github.com/ausocean/bw/codec/brainwire/bits"
)

// TestFoldUnfold checks the zig-zag bijection on spot values and a
// sweep including the extremes of the tested range.
func TestFoldUnfold(t *testing.T) {
	spots := []struct {
		v int64
		u uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{1 << 30, 1 << 31},
		{-(1 << 30), 1<<31 - 1},
	}
	for _, tt := range spots {
		if got := fold(tt.v); got != tt.u {
			t.Errorf("fold(%d) = %d, want %d", tt.v, got, tt.u)
		}
		if got := unfold(tt.u); got != tt.v {
			t.Errorf("unfold(%d) = %d, want %d", tt.u, got, tt.v)
		}
	}

	for v := int64(-(1 << 30)); v <= 1<<30; v += 40961 {
		if got := unfold(fold(v)); got != v {
			t.Fatalf("unfold(fold(%d)) = %d", v, got)
		}
	}
}

// TestRiceRoundTrip writes then reads values across parameters 0..16,
// checking value recovery and that the reported written length equals
// the bits consumed by the read.
func TestRiceRoundTrip(t *testing.T) {
	var vals []int64
	for v := int64(-1024); v <= 1024; v += 7 {
		vals = append(vals, v)
	}
	vals = append(vals, -(1 << 20), 1<<20, -(1<<20)+1, 1<<20-1)

	for k := uint(0); k <= 16; k++ {
		w := bits.NewWriter(1 << 12)
		var lens []int
		for _, v := range vals {
			lens = append(lens, riceWrite(w, v, k))
		}

		r := bits.NewReader(w.Bytes())
		for i, v := range vals {
			pos := r.Pos()
			got, err := riceRead(r, k)
			if err != nil {
				t.Fatalf("k=%d v=%d: unexpected error: %v", k, v, err)
			}
			if got != v {
				t.Fatalf("k=%d: got: %d, want: %d", k, got, v)
			}
			if n := r.Pos() - pos; n != lens[i] {
				t.Fatalf("k=%d v=%d: length mismatch, wrote: %d, read: %d", k, v, lens[i], n)
			}
		}
	}
}

// TestRiceCodeword checks the exact bit layout of a known codeword:
// v=0 at k=3 is the terminator followed by three zero LSBs.
func TestRiceCodeword(t *testing.T) {
	w := bits.NewWriter(8)
	n := riceWrite(w, 0, 3)
	if n != 4 {
		t.Errorf("unexpected length, got: %d, want: 4", n)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x80}) {
		t.Errorf("unexpected bytes, got: %#v, want: []byte{0x80}", w.Bytes())
	}

	// v=-3 folds to 5 (101b); at k=1 that is two zeros, the
	// terminator, and one LSB: 001 1 -> 0011 0000.
	w = bits.NewWriter(8)
	n = riceWrite(w, -3, 1)
	if n != 4 {
		t.Errorf("unexpected length, got: %d, want: 4", n)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x30}) {
		t.Errorf("unexpected bytes, got: %#v, want: []byte{0x30}", w.Bytes())
	}
}
