/*
NAME
  bwstats.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package bwstats is a command-line program for inspecting how well a
// recording suits the brainwire coder. It reports statistics and an
// entropy estimate for the quantized residual stream, the measured
// compression, and optionally renders a residual histogram. Stereo
// input is folded to mono, and the recording can be downsampled or
// band-limited first to preview those preparation steps.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/bw/codec/brainwire"
	"github.com/ausocean/bw/codec/pcm"
	"github.com/ausocean/bw/codec/wav"
)

// Number of taps used for the optional lowpass preparation filter.
const filterTaps = 129

func main() {
	var (
		inPath, histPath string
		rate             uint
		cutoff           float64
	)
	flag.StringVar(&inPath, "in", "in.wav", "file path of input recording")
	flag.StringVar(&histPath, "hist", "", "optional file path for a residual histogram PNG")
	flag.UintVar(&rate, "rate", 0, "downsample to this rate in Hz before analysis (0 keeps the original)")
	flag.Float64Var(&cutoff, "lowpass", 0, "lowpass cutoff in Hz applied before analysis (0 disables)")
	flag.Parse()

	f, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	buf, err := wav.Read(f)
	if err != nil {
		log.Fatal(err)
	}

	buf, err = pcm.StereoToMono(buf)
	if err != nil {
		log.Fatal(err)
	}

	if rate != 0 {
		buf, err = pcm.Resample(buf, rate)
		if err != nil {
			log.Fatal(err)
		}
	}

	if cutoff != 0 {
		lp, err := pcm.NewLowPass(cutoff, buf.Format, filterTaps)
		if err != nil {
			log.Fatal(err)
		}
		buf.Data, err = lp.Apply(buf)
		if err != nil {
			log.Fatal(err)
		}
	}

	samples, err := pcm.Samples(buf)
	if err != nil {
		log.Fatal(err)
	}
	if len(samples) == 0 {
		log.Fatal("recording holds no samples")
	}

	// Residuals of the first-order predictor on the quantized stream;
	// this is what the Rice coder sees.
	res := make([]float64, len(samples))
	counts := make(map[int]int)
	qPrev := 0
	for i, s := range samples {
		q := brainwire.Quantize(s)
		r := q - qPrev
		qPrev = q
		res[i] = float64(r)
		counts[r]++
	}

	mean := stat.Mean(res, nil)
	sd := math.Sqrt(stat.Variance(res, nil))
	fmt.Printf("%s: %d samples @ %d Hz\n", inPath, len(samples), buf.Format.Rate)
	fmt.Printf("residuals: mean %.3f, stddev %.3f, entropy %.2f bits/sample\n",
		mean, sd, entropy(counts, len(res)))

	data := brainwire.Encode(samples, buf.Format.Rate)
	fmt.Printf("encoded: %d bytes, %.2f bits/sample, %.2fx compression\n",
		len(data), 8*float64(len(data))/float64(len(samples)),
		float64(len(samples)*2)/float64(len(data)))

	if histPath != "" {
		err = histogram(res, histPath)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Wrote residual histogram to", histPath)
	}
}

// entropy returns the empirical entropy of the residual distribution
// in bits per sample, a lower bound on what any entropy coder can
// achieve without context modelling.
func entropy(counts map[int]int, n int) float64 {
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// histogram renders the residual distribution to a PNG.
func histogram(res []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Residual distribution"
	p.X.Label.Text = "residual"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(res), 64)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
