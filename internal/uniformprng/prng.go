// Package uniformprng implements a seeded, uniform pseudo-random source used
// to generate reproducible hash inputs and write partitions.
package uniformprng

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

// Source returns pseudorandom numbers and bytes with uniform distribution.
// The output is fully determined by the seed.
type Source struct {
	buf    [4]byte
	cipher *chacha20.Cipher
}

var nonce = make([]byte, chacha20.NonceSize)

// NewSource seeds a Source from a 32-byte key.
func NewSource(seed *[32]byte) *Source {
	cipher, _ := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	return &Source{cipher: cipher}
}

// SeedString seeds a Source from a short label, zero padded or truncated to
// 32 bytes.  It exists so tests can name their streams.
func SeedString(label string) *Source {
	var seed [32]byte
	copy(seed[:], label)
	return NewSource(&seed)
}

// Read fills p with keystream bytes.  It never fails.
func (s *Source) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes returns n pseudo-random bytes.
func (s *Source) Bytes(n int) []byte {
	b := make([]byte, n)
	s.Read(b)
	return b
}

// Uint32 returns a pseudo-random uint32.
func (s *Source) Uint32() uint32 {
	b := s.buf[:]
	s.Read(b)
	return binary.LittleEndian.Uint32(b)
}

// Uint32n returns a pseudo-random uint32 in range [0,n) without modulo bias.
func (s *Source) Uint32n(n uint32) uint32 {
	if n < 2 {
		return 0
	}
	n--
	mask := ^uint32(0) >> bits.LeadingZeros32(n)
	for {
		u := s.Uint32() & mask
		if u <= n {
			return u
		}
	}
}

// Split partitions p into consecutive chunks of pseudo-random length, each at
// most maxChunk bytes.  Empty chunks are produced as well so callers exercise
// zero-length writes.  The concatenation of the result always equals p.
func (s *Source) Split(p []byte, maxChunk int) [][]byte {
	if maxChunk < 1 {
		maxChunk = 1
	}
	var chunks [][]byte
	for len(p) > 0 {
		n := int(s.Uint32n(uint32(maxChunk) + 1))
		if n > len(p) {
			n = len(p)
		}
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}
