// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/decred/dcrhash/internal/blockbuf"
	"github.com/decred/dcrhash/keccakf"
)

// Domain separation suffixes.  Each value holds the suffix bits followed by
// the first bit of the pad10*1 rule, least significant bit first.
const (
	dsbyteKeccak = 0x01
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f
)

// params describes one member of the sponge family.
type params struct {
	name      string
	rate      int  // bytes absorbed or squeezed per permutation
	outputLen int  // digest size, or default Sum size for XOFs
	dsbyte    byte // domain separation suffix
}

// rateFor returns the rate for a fixed output length of n bytes, leaving a
// capacity of twice the output length.
func rateFor(n int) int {
	return keccakf.StateSize - 2*n
}

var (
	paramsSHA3224 = params{"SHA3-224", rateFor(28), 28, dsbyteSHA3}
	paramsSHA3256 = params{"SHA3-256", rateFor(32), 32, dsbyteSHA3}
	paramsSHA3384 = params{"SHA3-384", rateFor(48), 48, dsbyteSHA3}
	paramsSHA3512 = params{"SHA3-512", rateFor(64), 64, dsbyteSHA3}

	paramsKeccak224 = params{"Keccak-224", rateFor(28), 28, dsbyteKeccak}
	paramsKeccak256 = params{"Keccak-256", rateFor(32), 32, dsbyteKeccak}
	paramsKeccak384 = params{"Keccak-384", rateFor(48), 48, dsbyteKeccak}
	paramsKeccak512 = params{"Keccak-512", rateFor(64), 64, dsbyteKeccak}

	// SHAKE rates follow from their security level rather than an output
	// length.
	paramsShake128 = params{"SHAKE128", rateFor(16), 32, dsbyteShake}
	paramsShake256 = params{"SHAKE256", rateFor(32), 64, dsbyteShake}
)

// state is the absorbing half of the sponge.  Squeezing only ever happens on
// a Reader or on the lanes of a finalized copy, so a state never needs to
// track a direction.
type state struct {
	a   [25]uint64      // main state of the sponge
	buf blockbuf.Buffer // pending partial block
	p   params
}

func (d *state) init(p params) {
	d.p = p
	d.Reset()
}

// Reset clears the sponge and discards any buffered input.
func (d *state) Reset() {
	d.a = [25]uint64{}
	d.buf.Init(d.p.rate)
}

// BlockSize returns the rate of the sponge.
func (d *state) BlockSize() int { return d.p.rate }

// absorb XORs one rate-sized block into the state and permutes it.
func (d *state) absorb(block []byte) {
	keccakf.XORIn(&d.a, block)
	keccakf.Permute(&d.a)
}

// Write absorbs more data into the sponge.  It never returns an error.
func (d *state) Write(p []byte) (written int, err error) {
	d.buf.Input(p, d.absorb)
	return len(p), nil
}

// padAndPermute absorbs the final padded block.  Afterwards the leading rate
// bytes of the lanes are the first block of output.
func (d *state) padAndPermute() {
	d.buf.PadWith(d.p.dsbyte, d.absorb)
}

// String returns the name of the sponge variant.
func (d *state) String() string { return d.p.name }
