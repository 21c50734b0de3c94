/*
NAME
  flac_test.go

DESCRIPTION
  flac_test.go provides utilities to test FLAC audio decoding.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package flac

import (
	"bytes"
	"os"
	"testing"

	"github.com/ausocean/bw/codec/wav"
)

const testFile = "testdata/reference.flac"

// TestDecodeFlac checks that we can load a flac file and decode it to
// a readable 16-bit wav. Skipped when the fixture is not present.
func TestDecodeFlac(t *testing.T) {
	b, err := os.ReadFile(testFile)
	if err != nil {
		t.Skipf("flac fixture not present: %v", err)
	}

	out, err := Decode(b)
	if err != nil {
		t.Fatalf("could not decode: %v", err)
	}

	buf, err := wav.Read(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("could not read decoded wav: %v", err)
	}
	if len(buf.Data) == 0 {
		t.Error("decoded wav holds no samples")
	}
}

// TestDecodeRejectsJunk checks that non-flac input errors out.
func TestDecodeRejectsJunk(t *testing.T) {
	if _, err := Decode([]byte("not a flac stream")); err == nil {
		t.Error("expected error decoding junk")
	}
}
