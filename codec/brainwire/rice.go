/*
NAME
  rice.go

DESCRIPTION
  rice.go provides Rice coding of signed integers for the brainwire
  bitstream.

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

import "github.com/ausocean/bw/codec/brainwire/bits"

// fold maps a signed value onto the non-negative integers by zig-zag,
// interleaving so that small magnitudes get small images:
// 0, -1, 1, -2, 2, ... -> 0, 1, 2, 3, 4, ...
func fold(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// unfold inverts fold.
func unfold(u uint64) int64 {
	if u&1 != 0 {
		return -int64(u>>1) - 1
	}
	return int64(u >> 1)
}

// riceWrite writes the Rice codeword for v with parameter k to w,
// returning the codeword length in bits. The codeword is u>>k zero
// bits, a single 1 terminator, then the low k bits of u, where u is
// the zig-zag fold of v. The whole codeword is emitted in one write;
// the zero prefix falls out of WriteBits' handling of widths beyond
// the pattern.
func riceWrite(w *bits.Writer, v int64, k uint) int {
	u := fold(v)
	msbs := int(u >> k)
	n := msbs + 1 + int(k)
	pattern := uint64(1)<<k | u&(uint64(1)<<k-1)
	w.WriteBits(pattern, n)
	return n
}

// riceRead reads one Rice codeword with parameter k from r and returns
// the decoded signed value. The codeword length is available to the
// caller as the difference in r.Pos() across the call.
func riceRead(r *bits.Reader, k uint) (int64, error) {
	var msbs uint64
	for {
		b, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if b {
			break
		}
		msbs++
	}

	lsbs, err := r.ReadBits(int(k))
	if err != nil {
		return 0, err
	}

	return unfold(msbs<<k | lsbs), nil
}
