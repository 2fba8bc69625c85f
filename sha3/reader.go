// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha3

import (
	"io"

	"github.com/decred/dcrhash/internal/blockbuf"
	"github.com/decred/dcrhash/keccakf"
)

// Reader squeezes output from a finalized extendable-output sponge.  Its
// output never ends.  A Reader must not be used concurrently.
type Reader struct {
	a      [25]uint64
	rate   int
	window [blockbuf.MaxBlockSize]byte
	pos    int // index of the next unread byte of window
}

var _ io.Reader = (*Reader)(nil)

// newReader takes a copy of the padded and permuted lanes a.
func newReader(a *[25]uint64, rate int) *Reader {
	r := &Reader{a: *a, rate: rate}
	keccakf.CopyOut(&r.a, r.window[:rate])
	return r
}

// Read fills p with the next len(p) bytes of output.  It always returns
// len(p), nil.
func (r *Reader) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if r.pos == r.rate {
			keccakf.Permute(&r.a)
			keccakf.CopyOut(&r.a, r.window[:r.rate])
			r.pos = 0
		}
		c := copy(p, r.window[r.pos:r.rate])
		r.pos += c
		p = p[c:]
	}
	return n, nil
}

// Clone returns an independent Reader positioned at the same point of the
// output stream.
func (r *Reader) Clone() *Reader {
	c := *r
	return &c
}
