/*
NAME
  filters.go

DESCRIPTION
  filters.go contains functions for FIR filtering of PCM audio, used
  to band-limit noisy probe recordings before inspection.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package pcm

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"github.com/pkg/errors"
)

// AudioFilter is an interface which contains an Apply function.
// Apply is used to apply the filter to the given buffer of PCM data (b.Data).
type AudioFilter interface {
	Apply(b Buffer) ([]byte, error)
}

// SelectiveFrequencyFilter is a windowed-sinc FIR filter; lowpass or
// highpass depending on construction.
type SelectiveFrequencyFilter struct {
	coeffs []float64
	format BufferFormat
}

// NewLowPass generates a lowpass filter with cutoff fc Hz for audio in
// the given format, using taps coefficients (rounded up to odd), and
// returns a pointer to it.
func NewLowPass(fc float64, info BufferFormat, taps int) (*SelectiveFrequencyFilter, error) {
	coeffs, err := sincCoeffs(fc, info, taps)
	if err != nil {
		return nil, err
	}
	return &SelectiveFrequencyFilter{coeffs: coeffs, format: info}, nil
}

// NewHighPass generates a highpass filter with cutoff fc Hz by
// spectral inversion of the corresponding lowpass filter.
func NewHighPass(fc float64, info BufferFormat, taps int) (*SelectiveFrequencyFilter, error) {
	coeffs, err := sincCoeffs(fc, info, taps)
	if err != nil {
		return nil, err
	}
	for i := range coeffs {
		coeffs[i] = -coeffs[i]
	}
	coeffs[len(coeffs)/2] += 1
	return &SelectiveFrequencyFilter{coeffs: coeffs, format: info}, nil
}

// sincCoeffs computes Hamming-windowed sinc lowpass coefficients,
// normalized to unity gain at DC. taps is forced odd so that spectral
// inversion has a center coefficient.
func sincCoeffs(fc float64, info BufferFormat, taps int) ([]float64, error) {
	if info.Rate == 0 || fc <= 0 || fc >= float64(info.Rate)/2 {
		return nil, errors.Errorf("cutoff %v Hz invalid for rate %v Hz", fc, info.Rate)
	}
	if taps < 3 {
		return nil, errors.Errorf("too few taps: %d", taps)
	}
	if taps%2 == 0 {
		taps++
	}

	w := window.Hamming(taps)
	coeffs := make([]float64, taps)
	mid := float64(taps-1) / 2
	ft := fc / float64(info.Rate)

	var sum float64
	for i := range coeffs {
		x := float64(i) - mid
		if x == 0 {
			coeffs[i] = 2 * math.Pi * ft
		} else {
			coeffs[i] = math.Sin(2*math.Pi*ft*x) / x
		}
		coeffs[i] *= w[i]
		sum += coeffs[i]
	}
	for i := range coeffs {
		coeffs[i] /= sum
	}
	return coeffs, nil
}

// Apply convolves the filter with the given buffer and returns the
// filtered S16_LE data. Only mono S16_LE buffers are handled.
func (f *SelectiveFrequencyFilter) Apply(b Buffer) ([]byte, error) {
	if b.Format.Channels != 1 {
		return nil, errors.Errorf("unhandled channel count: %d", b.Format.Channels)
	}
	in, err := Samples(b)
	if err != nil {
		return nil, errors.Wrap(err, "could not get samples from buffer")
	}

	mid := len(f.coeffs) / 2
	out := make([]int16, len(in))
	for i := range in {
		var acc float64
		for j, c := range f.coeffs {
			idx := i + mid - j
			if idx < 0 || idx >= len(in) {
				continue
			}
			acc += c * float64(in[idx])
		}
		out[i] = capSample(acc)
	}
	return FromSamples(out), nil
}

// Response returns the magnitude of the filter's frequency response at
// n evenly spaced frequencies from DC up to the sample rate.
func (f *SelectiveFrequencyFilter) Response(n int) []float64 {
	padded := make([]float64, n)
	copy(padded, f.coeffs)
	spectrum := fft.FFTReal(padded)

	mags := make([]float64, n)
	for i, c := range spectrum {
		mags[i] = cmplx.Abs(c)
	}
	return mags
}

// capSample rounds a float to the nearest 16-bit sample, saturating
// instead of overflowing.
func capSample(v float64) int16 {
	switch r := math.Round(v); {
	case r < math.MinInt16:
		return math.MinInt16
	case r > math.MaxInt16:
		return math.MaxInt16
	default:
		return int16(r)
	}
}
