package hash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// vector is one known-answer test case: data repeated repeat times
// hashes to the hex digest want. repeat of 0 is treated as 1.
type vector struct {
	name   string
	data   string
	repeat int
	want   string
}

// runVectors feeds each vector through a fresh hasher two ways — a
// single UpdateLast call, and a chunked Update/UpdateLast split at the
// hasher's own block size — and checks both against want, mirroring the
// original paranoid_hash test harness's whole-message/chunked split.
func runVectors(t *testing.T, newHasher func() Hasher, vectors []vector) {
	t.Helper()
	for _, v := range vectors {
		v := v
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()
			repeat := v.repeat
			if repeat == 0 {
				repeat = 1
			}
			msg := bytes.Repeat([]byte(v.data), repeat)
			want, err := hex.DecodeString(v.want)
			if err != nil {
				t.Fatalf("bad vector hex: %v", err)
			}

			got := wholeMessage(t, newHasher(), msg)
			if !bytes.Equal(got, want) {
				t.Fatalf("whole: got %x, want %x", got, want)
			}

			gotChunked := chunkedMessage(t, newHasher(), msg)
			if !bytes.Equal(gotChunked, want) {
				t.Fatalf("chunked: got %x, want %x", gotChunked, want)
			}
		})
	}
}

func wholeMessage(t *testing.T, h Hasher, msg []byte) []byte {
	t.Helper()
	block := h.BlockSize()
	full := len(msg) / block * block
	if err := h.Update(msg[:full]); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := h.UpdateLast(msg[full:]); err != nil {
		t.Fatalf("UpdateLast: %v", err)
	}
	got, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	return got
}

func chunkedMessage(t *testing.T, h Hasher, msg []byte) []byte {
	t.Helper()
	block := h.BlockSize()
	if block < 1 {
		block = 1
	}
	i := 0
	for len(msg)-i > block {
		if err := h.Update(msg[i : i+block]); err != nil {
			t.Fatalf("Update: %v", err)
		}
		i += block
	}
	if err := h.UpdateLast(msg[i:]); err != nil {
		t.Fatalf("UpdateLast: %v", err)
	}
	got, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	return got
}
