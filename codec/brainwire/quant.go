/*
NAME
  quant.go

DESCRIPTION
  quant.go provides the 16 to 10-bit requantization map used by the
  brainwire codec.

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

import "math"

// The recording hardware produces 10-bit sensor values upscaled to 16
// bits by an affine map. These constants were fitted empirically to
// that upscaler; they are a table, not a derivation. Reconstructing
// samples with them is what makes transmitting the 10-bit stream
// lossless on recorded data.
const (
	dequantScale = 64.061577
	dequantBias  = 31.034184
)

// Quantize maps a 16-bit sample to its 10-bit label using floored
// division by 64, so Quantize(-1) == -1. For samples produced by the
// upstream recorder the result lies in [-512, 511], but nothing here
// relies on that bound.
func Quantize(s int16) int {
	return int(s) >> 6
}

// Dequantize reconstructs the original 16-bit sample for a quantized
// label. Rounding is half away from zero, with the negative branch
// mirrored through -1 to match the upscaler.
// Dequantize(Quantize(s)) == s for every sample the recorder emits.
func Dequantize(q int) int16 {
	if q >= 0 {
		return int16(math.Round(float64(q)*dequantScale + dequantBias))
	}
	return int16(-math.Round(float64(-q-1)*dequantScale+dequantBias) - 1)
}
