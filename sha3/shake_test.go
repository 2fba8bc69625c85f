// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha3

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/decred/dcrhash/internal/uniformprng"
	xsha3 "golang.org/x/crypto/sha3"
)

const (
	shake128Empty = "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"
	shake256Empty = "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"
)

func TestShakeVectors(t *testing.T) {
	out := make([]byte, 32)
	NewShake128().Finalize().Read(out)
	if s := hex.EncodeToString(out); s != shake128Empty {
		t.Fatalf("SHAKE128() = %s, expected %s", s, shake128Empty)
	}

	out = make([]byte, 64)
	ShakeSum256(out, nil)
	if s := hex.EncodeToString(out); s != shake256Empty {
		t.Fatalf("SHAKE256() = %s, expected %s", s, shake256Empty)
	}

	if s := hex.EncodeToString(NewShake128().Sum(nil)); s != shake128Empty {
		t.Fatalf("SHAKE128 Sum() = %s", s)
	}
	if s := hex.EncodeToString(NewShake256().Sum(nil)); s != shake256Empty {
		t.Fatalf("SHAKE256 Sum() = %s", s)
	}
}

type shakeOracle struct {
	name string
	new  func() *Shake
	ref  func() xsha3.ShakeHash
	rate int
}

var shakeOracles = []shakeOracle{
	{"SHAKE128", NewShake128, xsha3.NewShake128, 168},
	{"SHAKE256", NewShake256, xsha3.NewShake256, 136},
}

func TestShakeStreaming(t *testing.T) {
	src := uniformprng.SeedString("shake streaming")
	for _, o := range shakeOracles {
		d := o.new()
		if d.BlockSize() != o.rate {
			t.Fatalf("%s: rate %d, expected %d", o.name, d.BlockSize(), o.rate)
		}
		for n := 0; n <= 3*o.rate+1; n += 5 {
			msg := src.Bytes(n)
			ref := o.ref()
			ref.Write(msg)
			want := make([]byte, 3*o.rate+11)
			ref.Read(want)

			for _, chunk := range src.Split(msg, o.rate+3) {
				d.Write(chunk)
			}
			r := d.Finalize()
			got := make([]byte, len(want))
			for _, chunk := range src.Split(got, o.rate/2) {
				r.Read(chunk)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("%s(len %d) output differs from reference", o.name, n)
			}
		}
	}
}

// TestSqueezeContinuity checks that reading n then m bytes yields the same
// stream as reading n+m bytes at once, for splits around window boundaries.
func TestSqueezeContinuity(t *testing.T) {
	for _, o := range shakeOracles {
		d := o.new()
		io.WriteString(d, "squeeze")
		whole := make([]byte, 4*o.rate)
		d.Sum(nil)
		base := d.Finalize()
		base.Clone().Read(whole)

		for _, n := range []int{0, 1, o.rate - 1, o.rate, o.rate + 1, 2 * o.rate} {
			r := base.Clone()
			first := make([]byte, n)
			second := make([]byte, len(whole)-n)
			r.Read(first)
			if c, err := r.Read(nil); c != 0 || err != nil {
				t.Fatalf("%s: Read(nil) = %d, %v", o.name, c, err)
			}
			r.Read(second)
			if !bytes.Equal(append(first, second...), whole) {
				t.Fatalf("%s: split read at %d differs from single read", o.name, n)
			}
		}
	}
}

func TestShakeFinalizeResets(t *testing.T) {
	d := NewShake256()
	io.WriteString(d, "discarded")
	r1 := d.Finalize()

	// The source is reset and now hashes the empty message.
	out := make([]byte, 64)
	d.Finalize().Read(out)
	if s := hex.EncodeToString(out); s != shake256Empty {
		t.Fatalf("SHAKE256 after finalize = %s", s)
	}

	// Earlier readers are unaffected by the reset.
	io.WriteString(d, "discarded")
	want := make([]byte, 300)
	d.Finalize().Read(want)
	got := make([]byte, 300)
	r1.Read(got)
	if !bytes.Equal(got, want) {
		t.Fatal("reader changed by reset of its source")
	}
}

func TestReaderIsIOReader(t *testing.T) {
	r := NewShake128().Finalize()
	out, err := io.ReadAll(io.LimitReader(r, 1000))
	if err != nil || len(out) != 1000 {
		t.Fatalf("ReadAll = %d bytes, %v", len(out), err)
	}
	if hex.EncodeToString(out[:32]) != shake128Empty {
		t.Fatalf("limited read prefix %x", out[:32])
	}
}
