/*
NAME
  bwenc - command-line converter between wav and brainwire files.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package bwenc is a command-line program for converting between
// recordings and brainwire compressed streams. The direction is
// inferred from the file extensions: bwenc in.wav out.bw compresses,
// bwenc in.bw out.wav decompresses. Archived flac recordings are also
// accepted as input, and stereo recordings are folded to mono before
// encoding.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ausocean/bw/codec/brainwire"
	"github.com/ausocean/bw/codec/codecutil"
	"github.com/ausocean/bw/codec/flac"
	"github.com/ausocean/bw/codec/pcm"
	"github.com/ausocean/bw/codec/wav"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatal("Usage: bwenc in.{wav,flac,bw} out.{wav,bw}")
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	samples, rate, err := readInput(inPath)
	if err != nil {
		log.Fatalf("could not load %s: %v", inPath, err)
	}

	n, err := writeOutput(outPath, samples, rate)
	if err != nil {
		log.Fatalf("could not write %s: %v", outPath, err)
	}

	fmt.Printf(
		"%s: size: %d kb (%d bytes) = %.2fx compression\n",
		outPath, n/1024, n,
		float64(len(samples)*2)/float64(n),
	)
}

// readInput decodes the input file into mono samples and a sample
// rate, dispatching on the file extension.
func readInput(path string) ([]int16, uint, error) {
	c, err := codecutil.FromPath(path)
	if err != nil {
		return nil, 0, err
	}

	switch c {
	case codecutil.PCM:
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()

		buf, err := wav.Read(f)
		if err != nil {
			return nil, 0, err
		}
		return monoSamples(buf)

	case codecutil.FLAC:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}
		out, err := flac.Decode(data)
		if err != nil {
			return nil, 0, err
		}
		buf, err := wav.Read(bytes.NewReader(out))
		if err != nil {
			return nil, 0, err
		}
		return monoSamples(buf)

	default: // codecutil.Brainwire
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}
		return brainwire.Decode(data)
	}
}

// monoSamples folds a decoded recording down to mono and returns its
// samples and rate; brainwire carries a single channel only.
func monoSamples(buf pcm.Buffer) ([]int16, uint, error) {
	mono, err := pcm.StereoToMono(buf)
	if err != nil {
		return nil, 0, err
	}
	samples, err := pcm.Samples(mono)
	if err != nil {
		return nil, 0, err
	}
	return samples, mono.Format.Rate, nil
}

// writeOutput encodes the samples into the output file, dispatching on
// the file extension, and returns the number of bytes written.
func writeOutput(path string, samples []int16, rate uint) (int, error) {
	c, err := codecutil.FromPath(path)
	if err != nil {
		return 0, err
	}

	switch c {
	case codecutil.PCM:
		w := wav.WAV{Metadata: wav.Metadata{
			AudioFormat: wav.PCMFormat,
			Channels:    1,
			SampleRate:  int(rate),
			BitDepth:    16,
		}}
		n, err := w.Write(pcm.FromSamples(samples))
		if err != nil {
			return 0, err
		}
		return n, os.WriteFile(path, w.Audio, 0644)

	case codecutil.Brainwire:
		data := brainwire.Encode(samples, rate)
		return len(data), os.WriteFile(path, data, 0644)

	default:
		return 0, fmt.Errorf("cannot encode to %s", path)
	}
}
