// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keccakf implements the Keccak-f[1600] permutation underlying SHA-3,
SHAKE and the original Keccak hash functions.

The state is 25 lanes of 64 bits.  Lane (x, y) of the 5x5 grid is stored at
index x+5*y and is serialized little-endian, so byte i of the 200-byte state
is byte i%8 of lane i/8.

The permutation has no branches or memory accesses that depend on the state.
*/
package keccakf

import (
	"encoding/binary"
	"math/bits"
)

// Rounds is the number of rounds of Keccak-f[1600].
const Rounds = 24

// StateSize is the size of the permutation state in bytes.
const StateSize = 200

// RoundConstants are XORed into lane (0, 0) by the ι step of each round.
var RoundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// The combined ρ and π steps walk the single 24-lane cycle of π starting at
// lane (1, 0).  piLane[i] is the i-th lane on the cycle and rhoOffset[i] the
// rotation applied to the lane moved into it.
var (
	rhoOffset = [24]int{
		1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
		27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
	}
	piLane = [24]int{
		10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
		15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
	}
)

// Permute applies Keccak-f[1600] to a in place.
func Permute(a *[25]uint64) {
	var c [5]uint64
	for round := 0; round < Rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π
		t := a[1]
		for i, j := range piLane {
			t, a[j] = a[j], bits.RotateLeft64(t, rhoOffset[i])
		}

		// χ
		for y := 0; y < 25; y += 5 {
			copy(c[:], a[y:y+5])
			for x := 0; x < 5; x++ {
				a[y+x] = c[x] ^ ^c[(x+1)%5]&c[(x+2)%5]
			}
		}

		// ι
		a[0] ^= RoundConstants[round]
	}
}

// XORIn XORs b into the leading len(b) bytes of the state.  b must not be
// longer than StateSize.
func XORIn(a *[25]uint64, b []byte) {
	i := 0
	for ; len(b) >= 8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(b)
		b = b[8:]
	}
	for j, v := range b {
		a[i] ^= uint64(v) << (8 * uint(j))
	}
}

// CopyOut copies the leading len(b) bytes of the state into b.  b must not be
// longer than StateSize.
func CopyOut(a *[25]uint64, b []byte) {
	i := 0
	for ; len(b) >= 8; i++ {
		binary.LittleEndian.PutUint64(b, a[i])
		b = b[8:]
	}
	for j := range b {
		b[j] = byte(a[i] >> (8 * uint(j)))
	}
}
