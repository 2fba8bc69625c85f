// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sha3 implements the SHA-3 fixed-output hash functions and the SHAKE
extendable-output functions defined in FIPS 202, along with the original
Keccak submission padding still used by Ethereum.

Every variant is the same sponge over Keccak-f[1600], differing only in rate,
output length and domain separation suffix.

Finalizing a hash or XOF resets it, so the value may be reused for a new
message.  Sum is provided for the hash.Hash interface and leaves the running
state untouched.
*/
package sha3

import (
	"hash"

	"github.com/decred/dcrhash/keccakf"
)

// Digest is a fixed-output sponge hash.  The zero value is not usable and
// panics on use; create values with New224, New256, New384, New512 or the
// NewLegacyKeccak constructors.
type Digest struct {
	state
}

var _ hash.Hash = (*Digest)(nil)

func newDigest(p params) *Digest {
	d := new(Digest)
	d.init(p)
	return d
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return d.p.outputLen }

// Finalize pads the message, returns the digest and resets d.
func (d *Digest) Finalize() []byte {
	d.padAndPermute()
	out := make([]byte, d.p.outputLen)
	keccakf.CopyOut(&d.a, out)
	d.Reset()
	return out
}

// Sum appends the digest of the data written so far to in without changing
// the running state.
func (d *Digest) Sum(in []byte) []byte {
	dup := *d
	return append(in, dup.Finalize()...)
}

// New224 creates a new SHA3-224 hash.
func New224() *Digest { return newDigest(paramsSHA3224) }

// New256 creates a new SHA3-256 hash.
func New256() *Digest { return newDigest(paramsSHA3256) }

// New384 creates a new SHA3-384 hash.
func New384() *Digest { return newDigest(paramsSHA3384) }

// New512 creates a new SHA3-512 hash.
func New512() *Digest { return newDigest(paramsSHA3512) }

// NewLegacyKeccak224 creates a new Keccak-224 hash using the original Keccak
// padding rather than the FIPS 202 domain suffix.
func NewLegacyKeccak224() *Digest { return newDigest(paramsKeccak224) }

// NewLegacyKeccak256 creates a new Keccak-256 hash, the variant Ethereum
// calls "sha3".
func NewLegacyKeccak256() *Digest { return newDigest(paramsKeccak256) }

// NewLegacyKeccak384 creates a new Keccak-384 hash.
func NewLegacyKeccak384() *Digest { return newDigest(paramsKeccak384) }

// NewLegacyKeccak512 creates a new Keccak-512 hash.
func NewLegacyKeccak512() *Digest { return newDigest(paramsKeccak512) }

// sum hashes data with a throwaway sponge and writes the digest into out,
// whose length must equal the output length of p.
func sum(p params, out, data []byte) {
	var d Digest
	d.init(p)
	d.Write(data)
	d.padAndPermute()
	keccakf.CopyOut(&d.a, out)
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	sum(paramsSHA3224, digest[:], data)
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	sum(paramsSHA3256, digest[:], data)
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	sum(paramsSHA3384, digest[:], data)
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	sum(paramsSHA3512, digest[:], data)
	return
}

// SumLegacyKeccak256 returns the Keccak-256 digest of data.
func SumLegacyKeccak256(data []byte) (digest [32]byte) {
	sum(paramsKeccak256, digest[:], data)
	return
}
