/*
DESCRIPTION
  bwspool is a daemon that watches a spool directory for arriving wav
  recordings and compresses each one to a brainwire file.

AUTHORS
  Trek Hopton <trek@ausocean.org>
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package bwspool is a long-running program that compresses neural
// recordings as they arrive in a spool directory. Recorders drop .wav
// files into the directory; each is encoded to a .bw file alongside
// (or into a separate output directory) and the compression ratio is
// logged.
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ausocean/bw/codec/brainwire"
	"github.com/ausocean/bw/codec/pcm"
	"github.com/ausocean/bw/codec/wav"
	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logging related constants.
const (
	logPath      = "/var/log/bwspool/bwspool.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	dirPtr := flag.String("dir", ".", "Spool directory to watch for wav recordings.")
	outPtr := flag.String("out", "", "Output directory; defaults to the spool directory.")
	flag.Parse()

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}

	// Create logger that we call methods on to log.
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stdout), logSuppress)

	outDir := *outPtr
	if outDir == "" {
		outDir = *dirPtr
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		l.Fatal("could not create watcher", "error", err)
	}
	defer watcher.Close()

	err = watcher.Add(*dirPtr)
	if err != nil {
		l.Fatal("could not watch spool directory", "dir", *dirPtr, "error", err)
	}
	l.Info("watching spool directory", "dir", *dirPtr, "out", outDir)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			// Recorders write then rename into place, so watch for both.
			if ev.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".wav") {
				continue
			}
			compress(ev.Name, outDir, l)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.Error("watcher error", "error", err)
		}
	}
}

// compress encodes one wav recording to a brainwire file in outDir.
// Failures are logged and the file is left for the operator; a bad
// recording must not take the spool down.
func compress(path, outDir string, l logging.Logger) {
	f, err := os.Open(path)
	if err != nil {
		l.Error("could not open recording", "path", path, "error", err)
		return
	}
	defer f.Close()

	buf, err := wav.Read(f)
	if err != nil {
		l.Error("could not read recording", "path", path, "error", err)
		return
	}

	// Brainwire carries a single channel; fold stereo recordings down.
	buf, err = pcm.StereoToMono(buf)
	if err != nil {
		l.Error("could not convert recording to mono", "path", path, "error", err)
		return
	}

	samples, err := pcm.Samples(buf)
	if err != nil {
		l.Error("could not get samples", "path", path, "error", err)
		return
	}

	data := brainwire.Encode(samples, buf.Format.Rate)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+".bw")
	err = os.WriteFile(outPath, data, 0644)
	if err != nil {
		l.Error("could not write stream", "path", outPath, "error", err)
		return
	}

	l.Info("compressed recording",
		"in", path,
		"out", outPath,
		"samples", len(samples),
		"bytes", len(data),
		"ratio", float64(len(samples)*2)/float64(len(data)),
	)
}
