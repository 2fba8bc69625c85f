// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockbuf implements the fixed-capacity byte accumulator shared by the
block-oriented hash engines.  A Buffer splits an arbitrary stream of writes
into whole blocks which are handed to a compression callback, holding back any
partial trailing block until more data or a padding call arrives.

Two end-of-message padding rules are provided: the Merkle–Damgård rule used by
the MD4 family (a single 1 bit, zero bits, then a 64-bit little-endian message
bit length) and the Keccak pad10*1 rule preceded by a domain separation suffix.
*/
package blockbuf

// MaxBlockSize is the largest block size supported by a Buffer.  It is the
// SHAKE128 rate, the widest block of any engine in this module.
const MaxBlockSize = 168

// lengthSize is the number of bytes used by LengthPadding to encode the
// message bit length.
const lengthSize = 8

// Buffer accumulates bytes into blocks of a fixed size.  The zero value is not
// usable; create buffers with New or Init.  Input and the padding methods
// panic on an uninitialized buffer.
//
// Buffer is a plain value.  Copying a Buffer copies any pending bytes, so a
// copy of an engine that embeds a Buffer can be finalized without disturbing
// the original.
type Buffer struct {
	x    [MaxBlockSize]byte // pending block storage
	size int                // block size
	nx   int                // index into x
}

// New returns an empty buffer with the given block size.  It panics if size
// is not in the range [lengthSize+1, MaxBlockSize].
func New(size int) Buffer {
	var b Buffer
	b.Init(size)
	return b
}

// Init sets the block size of b and empties it.
func (b *Buffer) Init(size int) {
	if size <= lengthSize || size > MaxBlockSize {
		panic("blockbuf: invalid block size")
	}
	b.size = size
	b.Reset()
}

// Reset discards any pending bytes.  The block size is unchanged.
func (b *Buffer) Reset() {
	b.nx = 0
}

// Size returns the block size.
func (b *Buffer) Size() int { return b.size }

// Len returns the number of pending bytes which have not yet been passed to a
// compression callback.
func (b *Buffer) Len() int { return b.nx }

// mustInit panics unless a block size has been set.
func (b *Buffer) mustInit() {
	if b.size == 0 {
		panic("blockbuf: uninitialized buffer")
	}
}

// Remaining returns the number of bytes needed to complete the pending block.
func (b *Buffer) Remaining() int { return b.size - b.nx }

// Input appends p to the buffer.  Each time a full block is available it is
// passed to compress.  Whole blocks of p that begin on a block boundary are
// passed directly without being copied.  compress must not retain the block.
func (b *Buffer) Input(p []byte, compress func(block []byte)) {
	b.mustInit()
	if b.nx > 0 {
		n := copy(b.x[b.nx:b.size], p)
		b.nx += n
		p = p[n:]
		if b.nx < b.size {
			return
		}
		compress(b.x[:b.size])
		b.nx = 0
	}
	for len(p) >= b.size {
		compress(p[:b.size])
		p = p[b.size:]
	}
	if len(p) > 0 {
		b.nx = copy(b.x[:], p)
	}
}

// zeroFrom clears the pending block from index i up to end.
func (b *Buffer) zeroFrom(i, end int) {
	for ; i < end; i++ {
		b.x[i] = 0
	}
}

// LengthPadding applies Merkle–Damgård strengthening.  A 0x80 byte is
// appended, followed by zero bytes up to the final lengthSize bytes of a
// block, which receive bitLen in little-endian order.  When the 0x80 byte
// does not leave room for the length, the current block is zero filled and
// emitted first, making the padding span two blocks.  The buffer is empty
// afterwards.
func (b *Buffer) LengthPadding(bitLen uint64, compress func(block []byte)) {
	b.mustInit()
	b.x[b.nx] = 0x80
	b.nx++

	lenStart := b.size - lengthSize
	if b.nx > lenStart {
		b.zeroFrom(b.nx, b.size)
		compress(b.x[:b.size])
		b.nx = 0
	}
	b.zeroFrom(b.nx, lenStart)
	for i := 0; i < lengthSize; i++ {
		b.x[lenStart+i] = byte(bitLen >> (8 * uint(i)))
	}
	compress(b.x[:b.size])
	b.nx = 0
}

// PadWith applies the sponge pad10*1 rule preceded by a domain separation
// suffix.  suffix must already contain the first padding bit after the
// suffix bits (0x06 for SHA-3, 0x1f for SHAKE, 0x01 for Keccak).  The final
// bit of the block is set by XOR, so when only one byte of the block is free
// the suffix and final bit share it.  Exactly one block is emitted and the
// buffer is empty afterwards.
func (b *Buffer) PadWith(suffix byte, compress func(block []byte)) {
	b.mustInit()
	b.x[b.nx] = suffix
	b.zeroFrom(b.nx+1, b.size)
	b.x[b.size-1] ^= 0x80
	compress(b.x[:b.size])
	b.nx = 0
}
