// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ripemd160

// Test vectors are from:
// http://homes.esat.kuleuven.be/~bosselae/ripemd160.html

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"testing"

	"github.com/decred/dcrhash/internal/uniformprng"
	//lint:ignore SA1019 used as an independent reference implementation.
	xripemd160 "golang.org/x/crypto/ripemd160"
)

type mdTest struct {
	out string
	in  string
}

var vectors = [...]mdTest{
	{"9c1185a5c5e9fc54612808977ee8f548b2258d31", ""},
	{"0bdc9d2d256b3ee9daae347be6f4dc835a467ffe", "a"},
	{"8eb208f7e05d987a9b044a8e98c6b087f15a0bfc", "abc"},
	{"5d0689ef49d2fae572b881b123a85ffa21595f36", "message digest"},
	{"f71c27109c692c1b56bbdceb5b9d2865b3708dbc", "abcdefghijklmnopqrstuvwxyz"},
	{"12a053384a9c0c88e405a06c27dcf49ada62eb2b", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
	{"b0e20b6e3116640286ed3a87a5713079b21f5189", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"9b752e45573d4b39f4dbd3323cab82bf63326bfb", "12345678901234567890123456789012345678901234567890123456789012345678901234567890"},
}

func TestVectors(t *testing.T) {
	for i := 0; i < len(vectors); i++ {
		tv := vectors[i]
		md := New()
		for j := 0; j < 3; j++ {
			if j < 2 {
				io.WriteString(md, tv.in)
			} else {
				io.WriteString(md, tv.in[0:len(tv.in)/2])
				md.Sum(nil)
				io.WriteString(md, tv.in[len(tv.in)/2:])
			}
			s := fmt.Sprintf("%x", md.Sum(nil))
			if s != tv.out {
				t.Fatalf("RIPEMD-160[%d](%s) = %s, expected %s", j, tv.in, s, tv.out)
			}
			md.Reset()
		}
	}
}

func TestFinalizeResets(t *testing.T) {
	md := New()
	io.WriteString(md, "some earlier message")
	md.Finalize()

	io.WriteString(md, "abc")
	got := md.Finalize()
	if hex.EncodeToString(got[:]) != vectors[2].out {
		t.Fatalf("RIPEMD-160(abc) after reuse = %x", got)
	}

	// The digest must be back at its initial state once more.
	got = md.Finalize()
	if hex.EncodeToString(got[:]) != vectors[0].out {
		t.Fatalf("RIPEMD-160() after finalize = %x", got)
	}
}

func TestZeroValue(t *testing.T) {
	var md Digest
	io.WriteString(&md, "abc")
	if s := fmt.Sprintf("%x", md.Sum(nil)); s != vectors[2].out {
		t.Fatalf("zero Digest Sum(abc) = %s, expected %s", s, vectors[2].out)
	}
	if got := md.Finalize(); hex.EncodeToString(got[:]) != vectors[2].out {
		t.Fatalf("zero Digest Finalize(abc) = %x", got)
	}

	var empty Digest
	if got := empty.Finalize(); hex.EncodeToString(got[:]) != vectors[0].out {
		t.Fatalf("zero Digest Finalize() = %x", got)
	}
	var summed Digest
	if s := fmt.Sprintf("%x", summed.Sum(nil)); s != vectors[0].out {
		t.Fatalf("zero Digest Sum() = %s", s)
	}
}

func TestEmptyWrites(t *testing.T) {
	for _, tv := range vectors {
		md := New()
		md.Write(nil)
		io.WriteString(md, tv.in)
		md.Write([]byte{})
		if s := fmt.Sprintf("%x", md.Sum(nil)); s != tv.out {
			t.Fatalf("RIPEMD-160(%q) with empty writes = %s, expected %s", tv.in, s, tv.out)
		}
	}
}

// TestStreaming compares arbitrary write partitions against a reference
// implementation, covering every message length across three blocks.
func TestStreaming(t *testing.T) {
	src := uniformprng.SeedString("ripemd160 streaming")
	for n := 0; n <= 3*BlockSize+1; n++ {
		msg := src.Bytes(n)
		ref := xripemd160.New()
		ref.Write(msg)
		want := ref.Sum(nil)

		oneShot := Sum160(msg)
		if !bytes.Equal(oneShot[:], want) {
			t.Fatalf("Sum160(len %d) = %x, expected %x", n, oneShot, want)
		}

		md := New()
		for _, chunk := range src.Split(msg, 70) {
			md.Write(chunk)
		}
		if got := md.Sum(nil); !bytes.Equal(got, want) {
			t.Fatalf("chunked RIPEMD-160(len %d) = %x, expected %x", n, got, want)
		}
	}
}

func TestHash160(t *testing.T) {
	data := []byte("public key bytes")
	sha := sha256.Sum256(data)
	ref := xripemd160.New()
	ref.Write(sha[:])
	want := ref.Sum(nil)
	if got := Hash160(data); !bytes.Equal(got[:], want) {
		t.Fatalf("Hash160 = %x, expected %x", got, want)
	}
}

func TestSumAppends(t *testing.T) {
	md := New()
	prefix := []byte{0xde, 0xad}
	out := md.Sum(prefix)
	if len(out) != len(prefix)+Size || !bytes.Equal(out[:2], prefix) {
		t.Fatalf("Sum did not append to prefix: %x", out)
	}
	if md.Size() != Size || md.BlockSize() != BlockSize {
		t.Fatalf("Size/BlockSize = %d/%d", md.Size(), md.BlockSize())
	}
}

func millionA() string {
	md := New()
	for i := 0; i < 100000; i++ {
		io.WriteString(md, "aaaaaaaaaa")
	}
	return fmt.Sprintf("%x", md.Sum(nil))
}

func TestMillionA(t *testing.T) {
	const out = "52783243c1697bdbe16d37f97f68f08325dc1528"
	if s := millionA(); s != out {
		t.Fatalf("RIPEMD-160 (1 million 'a') = %s, expected %s", s, out)
	}
}

func BenchmarkMillionA(b *testing.B) {
	for i := 0; i < b.N; i++ {
		millionA()
	}
}

func BenchmarkWrite1K(b *testing.B) {
	buf := make([]byte, 1024)
	md := New()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		md.Write(buf)
	}
}
