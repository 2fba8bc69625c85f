// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ripemd160 implements the RIPEMD-160 hash algorithm.
//
// Input is limited to 2^61-1 bytes per message since the padding encodes the
// message length in bits as a 64-bit value.  Longer inputs are unsupported and
// are not detected.
package ripemd160

import (
	"crypto/sha256"
	"hash"

	"github.com/decred/dcrhash/internal/blockbuf"
)

// The size of the checksum in bytes.
const Size = 20

// The block size of the hash algorithm in bytes.
const BlockSize = 64

const (
	_s0 = 0x67452301
	_s1 = 0xefcdab89
	_s2 = 0x98badcfe
	_s3 = 0x10325476
	_s4 = 0xc3d2e1f0
)

// Digest represents the partial evaluation of a checksum.  The zero value is
// ready to use.
type Digest struct {
	s   [5]uint32       // running context
	buf blockbuf.Buffer // pending partial block
	tc  uint64          // total count of bytes processed
}

var _ hash.Hash = (*Digest)(nil)

// Reset returns the digest to its initial state.
func (d *Digest) Reset() {
	d.s[0], d.s[1], d.s[2], d.s[3], d.s[4] = _s0, _s1, _s2, _s3, _s4
	d.buf.Init(BlockSize)
	d.tc = 0
}

// New returns a new Digest computing the RIPEMD-160 checksum.
func New() *Digest {
	result := new(Digest)
	result.Reset()
	return result
}

// Size returns the hash size in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// compress is the block callback handed to the buffer.
func (d *Digest) compress(b []byte) {
	block(d, b)
}

// lazyInit resets a zero Digest to the initial state.
func (d *Digest) lazyInit() {
	if d.buf.Size() == 0 {
		d.Reset()
	}
}

// Write adds p to the running checksum.  It never returns an error.
func (d *Digest) Write(p []byte) (nn int, err error) {
	d.lazyInit()
	nn = len(p)
	d.tc += uint64(nn)
	d.buf.Input(p, d.compress)
	return
}

// Finalize pads the message, returns the checksum and resets d so that it
// may be used for a new message.
func (d *Digest) Finalize() [Size]byte {
	d.lazyInit()
	d.buf.LengthPadding(d.tc<<3, d.compress)

	var digest [Size]byte
	for i, s := range d.s {
		digest[i*4] = byte(s)
		digest[i*4+1] = byte(s >> 8)
		digest[i*4+2] = byte(s >> 16)
		digest[i*4+3] = byte(s >> 24)
	}

	d.Reset()
	return digest
}

// Sum appends the checksum of the data written so far to in.  It does not
// change the underlying state, so the caller may keep writing and summing.
func (d0 *Digest) Sum(in []byte) []byte {
	// Make a copy of d0 so that caller can keep writing and summing.
	d := *d0
	digest := d.Finalize()
	return append(in, digest[:]...)
}

// Sum160 returns the RIPEMD-160 checksum of data.
func Sum160(data []byte) [Size]byte {
	var d Digest
	d.Write(data)
	return d.Finalize()
}

// Hash160 returns RIPEMD160(SHA256(data)), the hash used to commit to public
// keys and scripts in addresses.
func Hash160(data []byte) [Size]byte {
	h := sha256.Sum256(data)
	return Sum160(h[:])
}
