/*
NAME
  flac.go

DESCRIPTION
  flac.go provides conversion of FLAC compressed audio to wav, for
  preparing archived reference recordings.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package flac provides decoding of FLAC compressed audio to wav, so
// that archived reference recordings can be fed to the brainwire
// tools.
package flac

import (
	"bytes"
	"io"

	"github.com/mewkiz/flac"
	"github.com/pkg/errors"

	"github.com/ausocean/bw/codec/pcm"
	"github.com/ausocean/bw/codec/wav"
)

// Decode takes buf, a slice of FLAC, and decodes it to a complete
// 16-bit PCM wav file. Only 16-bit streams are handled; recordings are
// archived at that depth.
func Decode(buf []byte) ([]byte, error) {
	stream, err := flac.Parse(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse flac")
	}
	if stream.Info.BitsPerSample != 16 {
		return nil, errors.Errorf("unhandled bits per sample: %d", stream.Info.BitsPerSample)
	}
	nc := int(stream.Info.NChannels)

	// Decode frame by frame, interleaving channels as wav expects.
	var samples []int16
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not parse flac frame")
		}
		for i := 0; i < len(frame.Subframes[0].Samples); i++ {
			for ch := 0; ch < nc; ch++ {
				samples = append(samples, int16(frame.Subframes[ch].Samples[i]))
			}
		}
	}

	w := wav.WAV{Metadata: wav.Metadata{
		AudioFormat: wav.PCMFormat,
		Channels:    nc,
		SampleRate:  int(stream.Info.SampleRate),
		BitDepth:    int(stream.Info.BitsPerSample),
	}}
	if _, err := w.Write(pcm.FromSamples(samples)); err != nil {
		return nil, errors.Wrap(err, "could not write wav")
	}
	return w.Audio, nil
}
