// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha3

// Shake is an extendable-output sponge.  Data is absorbed with Write and
// output is read from the Reader returned by Finalize.  The zero value is not
// usable and panics on use; create values with NewShake128 or NewShake256.
type Shake struct {
	state
}

func newShake(p params) *Shake {
	d := new(Shake)
	d.init(p)
	return d
}

// NewShake128 creates a new SHAKE128 XOF.  Its output has 128-bit security
// against all attacks when at least 32 bytes are used.
func NewShake128() *Shake { return newShake(paramsShake128) }

// NewShake256 creates a new SHAKE256 XOF.  Its output has 256-bit security
// against all attacks when at least 64 bytes are used.
func NewShake256() *Shake { return newShake(paramsShake256) }

// Size returns the number of bytes Sum appends, the minimum output length
// providing the full security level.
func (d *Shake) Size() int { return d.p.outputLen }

// Finalize pads the message and returns a Reader over the output stream.
// d is reset and may absorb a new message; the Reader is unaffected.
func (d *Shake) Finalize() *Reader {
	d.padAndPermute()
	r := newReader(&d.a, d.p.rate)
	d.Reset()
	return r
}

// Sum appends Size bytes of output for the data written so far to in without
// changing the running state.
func (d *Shake) Sum(in []byte) []byte {
	dup := *d
	out := make([]byte, d.p.outputLen)
	dup.Finalize().Read(out)
	return append(in, out...)
}

// shakeSum writes len(out) bytes of XOF output for data into out.
func shakeSum(p params, out, data []byte) {
	var d Shake
	d.init(p)
	d.Write(data)
	d.Finalize().Read(out)
}

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) {
	shakeSum(paramsShake128, hash, data)
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) {
	shakeSum(paramsShake256, hash, data)
}
