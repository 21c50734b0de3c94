/*
DESCRIPTION
  bitreader.go provides an MSB-first bit reader over a byte buffer,
  symmetric with the writer in bitwriter.go.

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

import "io"

// Reader is a bit reader that consumes a byte buffer MSB-first, i.e.
// the first bit read from a byte is its most significant bit (0x80).
// Reading past the end of the buffer returns io.ErrUnexpectedEOF.
type Reader struct {
	buf []byte
	pos int // Absolute bit position of the next read.
}

// NewReader returns a new Reader over buf. The Reader does not copy
// buf; the caller must not modify it while reading.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits reads n bits from the buffer and returns them in the
// least-significant part of a uint64, advancing the read position.
// For example, with a buffer of []byte{0x8f, 0xe3} (1000 1111,
// 1110 0011), consecutive reads give:
// n = 4, res = 0x8 (1000)
// n = 2, res = 0x3 (0011)
// n = 4, res = 0xf (1111)
// n = 6, res = 0x23 (0010 0011)
func (r *Reader) ReadBits(n int) (uint64, error) {
	if r.pos+n > len(r.buf)<<3 {
		return 0, io.ErrUnexpectedEOF
	}
	var v uint64
	for n > 0 {
		occupied := r.pos & 7
		remaining := 8 - occupied

		read := n
		if read > remaining {
			read = remaining
		}

		// Shift the wanted bits of the current byte down to the bottom
		// and mask off anything above them.
		shift := remaining - read
		b := (r.buf[r.pos>>3] >> uint(shift)) & (0xff >> uint(8-read))
		v = v<<uint(read) | uint64(b)

		r.pos += read
		n -= read
	}
	return v, nil
}

// ReadBool reads a single bit, returning true for 1.
func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= len(r.buf)<<3 {
		return false, io.ErrUnexpectedEOF
	}
	b := r.buf[r.pos>>3]&(1<<uint(7-(r.pos&7))) != 0
	r.pos++
	return b, nil
}

// Pos returns the absolute bit position of the reader.
func (r *Reader) Pos() int {
	return r.pos
}
