/*
NAME
  list_test.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package codecutil

import "testing"

func TestIsValid(t *testing.T) {
	for _, c := range []string{PCM, FLAC, Brainwire} {
		if !IsValid(c) {
			t.Errorf("IsValid(%q) = false", c)
		}
	}
	for _, c := range []string{"", "adpcm", "h264"} {
		if IsValid(c) {
			t.Errorf("IsValid(%q) = true", c)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "recording.wav", want: PCM},
		{path: "/spool/in/REC001.WAV", want: PCM},
		{path: "recording.bw", want: Brainwire},
		{path: "recording.flac", want: FLAC},
		{path: "recording.mp3", wantErr: true},
		{path: "recording", wantErr: true},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromPath(%q): expected error", tt.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromPath(%q): unexpected error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
