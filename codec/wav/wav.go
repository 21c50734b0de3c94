/*
NAME
  wav.go

DESCRIPTION
  wav.go contains functions for reading and writing wav.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package wav provides reading and writing of wav audio containers.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/ausocean/bw/codec/pcm"
)

// ConvertFormat converts the common name for a format in a string type to the specific
// integer required by the wav encoder.
var ConvertFormat = map[string]int{"pcm": PCMFormat}

const PCMFormat = 1 // PCMFormat defines the value for pcm audio as defined by the wav std.

const headerSize = 44

var (
	errInvalidFormat   = fmt.Errorf("invalid or no format defined")
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("invalid or no bit depth defined")
)

// Metadata defines the format of the audio file for writing.
type Metadata struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
}

// WAV couples a metadata descriptor with the bytes of a complete wav
// file, built up by Write.
type WAV struct {
	Metadata Metadata
	Audio    []byte
}

// Write writes the given audio byte slice to the WAV, encoding the appropriate headings.
func (w *WAV) Write(p []byte) (n int, err error) {
	if w.Metadata.AudioFormat != PCMFormat {
		return 0, errInvalidFormat
	}
	if w.Metadata.Channels == 0 {
		return 0, errInvalidChannels
	}
	if w.Metadata.SampleRate == 0 {
		return 0, errInvalidRate
	}
	if w.Metadata.BitDepth == 0 {
		return 0, errInvalidBitDepth
	}

	header := make([]byte, 0, headerSize)

	// RIFF chunk with the size of the overall file.
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(p)+headerSize-8))
	header = append(header, "WAVE"...)

	// fmt chunk describing the audio format.
	header = append(header, "fmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, uint16(w.Metadata.AudioFormat))
	header = binary.LittleEndian.AppendUint16(header, uint16(w.Metadata.Channels))
	header = binary.LittleEndian.AppendUint32(header, uint32(w.Metadata.SampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32((w.Metadata.SampleRate*w.Metadata.BitDepth*w.Metadata.Channels)/8))
	header = binary.LittleEndian.AppendUint16(header, uint16((w.Metadata.BitDepth*w.Metadata.Channels)/8))
	header = binary.LittleEndian.AppendUint16(header, uint16(w.Metadata.BitDepth))

	// data chunk holding the samples.
	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(p)))

	w.Audio = append(header, p...)

	return len(p) + headerSize, nil
}

// Read decodes a wav file into a PCM buffer. Only 16-bit PCM wav is
// handled; anything else is rejected so that malformed recordings
// never reach the codec.
func Read(r io.ReadSeeker) (pcm.Buffer, error) {
	d := gowav.NewDecoder(r)
	if !d.IsValidFile() {
		return pcm.Buffer{}, errors.New("not a valid wav file")
	}
	if int(d.WavAudioFormat) != PCMFormat {
		return pcm.Buffer{}, errors.Errorf("unhandled wav audio format: %d", d.WavAudioFormat)
	}
	if d.BitDepth != 16 {
		return pcm.Buffer{}, errors.Errorf("unhandled bits per sample: %d", d.BitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return pcm.Buffer{}, errors.Wrap(err, "could not decode wav data")
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}

	return pcm.Buffer{
		Format: pcm.BufferFormat{
			SFormat:  pcm.S16_LE,
			Rate:     uint(d.SampleRate),
			Channels: uint(d.NumChans),
		},
		Data: pcm.FromSamples(samples),
	}, nil
}
