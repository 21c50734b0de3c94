/*
NAME
  list.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package codecutil provides the codec registry and the file-extension
// dispatch used by converter tools.
package codecutil

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// All available codecs for reference in any application.
// When adding or removing a codec from this list, the IsValid function below must be updated.
const (
	PCM       = "pcm"
	FLAC      = "flac"
	Brainwire = "brainwire"
)

// IsValid checks if a string is a known and valid codec in the right format.
func IsValid(s string) bool {
	switch s {
	case PCM, FLAC, Brainwire:
		return true
	default:
		return false
	}
}

// FromPath returns the codec for a file path based on its extension:
// .wav holds pcm audio, .flac holds an archived flac recording and .bw
// holds a brainwire stream. Any other extension is an error;
// converters infer their direction from this.
func FromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return PCM, nil
	case ".flac":
		return FLAC, nil
	case ".bw":
		return Brainwire, nil
	default:
		return "", errors.Errorf("unknown file type for %s", path)
	}
}
