// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha256"
	"hash"
	"io"

	"github.com/decred/dcrhash/ripemd160"
	"github.com/decred/dcrhash/sha3"
)

// ripemd adapts the fixed-size array result of ripemd160.Digest.Finalize.
type ripemd struct {
	*ripemd160.Digest
}

func (r *ripemd) Finalize() []byte {
	d := r.Digest.Finalize()
	return d[:]
}

// hash160 computes RIPEMD160(SHA256(m)) incrementally.  Only the SHA-256
// pass streams; RIPEMD-160 is applied to its digest when finalizing.
type hash160 struct {
	inner hash.Hash
}

func newHash160() Hasher {
	return &hash160{inner: sha256.New()}
}

func (h *hash160) Write(p []byte) (int, error) { return h.inner.Write(p) }
func (h *hash160) Reset()                      { h.inner.Reset() }
func (h *hash160) Size() int                   { return ripemd160.Size }
func (h *hash160) BlockSize() int              { return h.inner.BlockSize() }

func (h *hash160) Sum(in []byte) []byte {
	d := ripemd160.Sum160(h.inner.Sum(nil))
	return append(in, d[:]...)
}

func (h *hash160) Finalize() []byte {
	out := h.Sum(nil)
	h.Reset()
	return out
}

// shake adapts sha3.Shake to the XOF interface.
type shake struct {
	*sha3.Shake
}

func (s *shake) FinalizeXOF() io.Reader {
	return s.Shake.Finalize()
}
