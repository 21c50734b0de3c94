/*
NAME
  brainwire.go

DESCRIPTION
  brainwire.go provides encoding and decoding between 16-bit PCM
  neural recordings and the brainwire compressed bitstream.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package brainwire implements a lossless codec for single-channel
// 16-bit PCM neural recordings whose samples were upscaled from 10-bit
// sensor values. Samples are requantized to their 10-bit labels, a
// first-order predictor produces residuals, and the residuals are Rice
// coded with a parameter that adapts to the length of each codeword.
// Every input sample emits its bits immediately; nothing buffers more
// than one sample of state.
package brainwire

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/bw/codec/brainwire/bits"
)

const (
	headerK  = 16  // Fixed Rice parameter for the two header fields.
	initialK = 3.0 // Adaptive parameter start value, after the header.
	maxK     = 16  // Clamp on the controller before truncation.

	// Controller constants. These are part of the wire format: the
	// decoder reconstructs k from codeword lengths alone, so both
	// sides must run this exact float64 update to stay in lockstep.
	kDecay  = 0.99
	kGain   = 0.01
	kLenDiv = 1.55
)

// stream holds the per-stream state shared by the encode and decode
// loops: the previous quantized sample and the adaptive Rice parameter
// controller. A fresh stream is created per call; no state crosses
// streams.
type stream struct {
	k     float64
	qPrev int
}

// param returns the integer Rice parameter for the next codeword:
// the controller clamped to [0, maxK] and truncated.
func (s *stream) param() uint {
	k := s.k
	if k < 0 {
		k = 0
	} else if k > maxK {
		k = maxK
	}
	return uint(k)
}

// update feeds the length in bits of the last codeword back into the
// controller. The expression must stay as written; reassociating it
// changes the float64 result and desynchronizes encoder and decoder.
func (s *stream) update(n int) {
	s.k = s.k*kDecay + float64(n)/kLenDiv*kGain
}

// Encode compresses samples recorded at the given rate into a
// brainwire bitstream. The returned bytes are the whole stream: the
// sample count and rate Rice coded at k=16, then one residual codeword
// per sample, zero-padded to a byte boundary.
//
// Encoding cannot fail on a well-formed sample slice. Lossless
// reconstruction is guaranteed for recordings produced by the 10-bit
// upscaler (see Dequantize); arbitrary 16-bit audio is not.
func Encode(samples []int16, rate uint) []byte {
	w := bits.NewWriter(2*len(samples) + 16)

	riceWrite(w, int64(len(samples)), headerK)
	riceWrite(w, int64(rate), headerK)

	st := stream{k: initialK}
	for _, s := range samples {
		q := Quantize(s)
		r := q - st.qPrev
		st.qPrev = q

		n := riceWrite(w, int64(r), st.param())
		st.update(n)
	}

	return w.Bytes()
}

// Decode reconstructs the sample slice and sample rate from a
// brainwire bitstream produced by Encode. Exactly as many codewords as
// the header declares are consumed; trailing padding bits are ignored.
// A stream that runs out of bits before then returns an error wrapping
// io.ErrUnexpectedEOF.
func Decode(data []byte) ([]int16, uint, error) {
	r := bits.NewReader(data)

	n, err := riceRead(r, headerK)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read sample count")
	}
	rate, err := riceRead(r, headerK)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read sample rate")
	}
	if n < 0 || rate < 0 {
		return nil, 0, errors.Errorf("malformed header: %d samples at %d Hz", n, rate)
	}
	// Every codeword carries at least one bit, so a stream of n samples
	// can never be shorter than n bits.
	if n > int64(len(data))*8 {
		return nil, 0, errors.Wrapf(io.ErrUnexpectedEOF, "header declares %d samples in %d bits", n, len(data)*8)
	}

	samples := make([]int16, n)
	st := stream{k: initialK}
	for i := range samples {
		pos := r.Pos()

		res, err := riceRead(r, st.param())
		if err != nil {
			return nil, 0, errors.Wrapf(err, "could not read residual %d of %d", i, n)
		}

		q := st.qPrev + int(res)
		st.qPrev = q
		samples[i] = Dequantize(q)

		st.update(r.Pos() - pos)
	}

	return samples, uint(rate), nil
}
