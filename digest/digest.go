// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package digest provides a uniform interface over the hash functions of this
module and a registry for selecting them by name.

Fixed-output functions implement Hasher, a hash.Hash which can additionally be
finalized.  Extendable-output functions implement XOF and are finalized to an
io.Reader producing an unbounded output stream.  In both cases finalizing
resets the source so it can be used for a new message.
*/
package digest

import (
	"hash"
	"io"
	"sort"
	"strings"

	"github.com/decred/dcrhash/errors"
	"github.com/decred/dcrhash/ripemd160"
	"github.com/decred/dcrhash/sha3"
)

// Hasher is a fixed-output hash function.
type Hasher interface {
	hash.Hash

	// Finalize returns the digest of the data written so far and resets
	// the hasher.
	Finalize() []byte
}

// XOF is an extendable-output function.
type XOF interface {
	// Write absorbs more data.  It never returns an error.
	io.Writer

	// Reset discards all absorbed data.
	Reset()

	// BlockSize returns the rate of the underlying sponge.
	BlockSize() int

	// Size returns the default output length in bytes.
	Size() int

	// FinalizeXOF returns a reader over the output stream for the data
	// written so far and resets the XOF.
	FinalizeXOF() io.Reader
}

// Algorithm identifies a hash function.
type Algorithm int

// Supported algorithms.
const (
	RIPEMD160 Algorithm = iota + 1
	Hash160
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	Keccak224
	Keccak256
	Keccak384
	Keccak512
	SHAKE128
	SHAKE256
)

type algorithmInfo struct {
	name   string
	newH   func() Hasher
	newXOF func() XOF
}

var algorithms = map[Algorithm]algorithmInfo{
	RIPEMD160: {name: "ripemd160", newH: func() Hasher { return &ripemd{ripemd160.New()} }},
	Hash160:   {name: "hash160", newH: newHash160},
	SHA3_224:  {name: "sha3-224", newH: func() Hasher { return sha3.New224() }},
	SHA3_256:  {name: "sha3-256", newH: func() Hasher { return sha3.New256() }},
	SHA3_384:  {name: "sha3-384", newH: func() Hasher { return sha3.New384() }},
	SHA3_512:  {name: "sha3-512", newH: func() Hasher { return sha3.New512() }},
	Keccak224: {name: "keccak-224", newH: func() Hasher { return sha3.NewLegacyKeccak224() }},
	Keccak256: {name: "keccak-256", newH: func() Hasher { return sha3.NewLegacyKeccak256() }},
	Keccak384: {name: "keccak-384", newH: func() Hasher { return sha3.NewLegacyKeccak384() }},
	Keccak512: {name: "keccak-512", newH: func() Hasher { return sha3.NewLegacyKeccak512() }},
	SHAKE128:  {name: "shake128", newXOF: func() XOF { return &shake{sha3.NewShake128()} }},
	SHAKE256:  {name: "shake256", newXOF: func() XOF { return &shake{sha3.NewShake256()} }},
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return "unknown"
}

// Extendable returns whether a is an extendable-output function.
func (a Algorithm) Extendable() bool {
	return algorithms[a].newXOF != nil
}

// normalizeName lowercases a name and strips separators so that "SHA3-256",
// "sha3_256" and "sha3256" compare equal.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

var byName = func() map[string]Algorithm {
	m := make(map[string]Algorithm, len(algorithms))
	for alg, info := range algorithms {
		m[normalizeName(info.name)] = alg
	}
	m["rmd160"] = RIPEMD160
	return m
}()

// ParseAlgorithm returns the algorithm with the given name.  Matching ignores
// case and the separators '-', '_', '.' and space.
func ParseAlgorithm(name string) (Algorithm, error) {
	const op errors.Op = "digest.ParseAlgorithm"
	alg, ok := byName[normalizeName(name)]
	if !ok {
		return 0, errors.E(op, errors.Invalid, errors.Errorf("unknown algorithm %q", name))
	}
	return alg, nil
}

// Algorithms returns the canonical names of all supported algorithms in
// lexical order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for _, info := range algorithms {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}

// New returns a new Hasher for a fixed-output algorithm.
func (a Algorithm) New() (Hasher, error) {
	op := errors.Opf("digest.New(%v)", a)
	info, ok := algorithms[a]
	if !ok {
		return nil, errors.E(op, errors.Invalid, "unknown algorithm")
	}
	if info.newH == nil {
		return nil, errors.E(op, errors.Invalid, "algorithm has extendable output")
	}
	log.Tracef("New %v hasher", a)
	return info.newH(), nil
}

// NewXOF returns a new XOF for an extendable-output algorithm.
func (a Algorithm) NewXOF() (XOF, error) {
	op := errors.Opf("digest.NewXOF(%v)", a)
	info, ok := algorithms[a]
	if !ok {
		return nil, errors.E(op, errors.Invalid, "unknown algorithm")
	}
	if info.newXOF == nil {
		return nil, errors.E(op, errors.Invalid, "algorithm has fixed output")
	}
	log.Tracef("New %v XOF", a)
	return info.newXOF(), nil
}

// Sum hashes data with algorithm a.  For fixed-output algorithms outLen must
// be zero or the digest size.  For XOFs outLen bytes are produced, or the
// default output size when outLen is zero.
func Sum(a Algorithm, data []byte, outLen int) ([]byte, error) {
	op := errors.Opf("digest.Sum(%v)", a)
	if outLen < 0 {
		return nil, errors.E(op, errors.Invalid, errors.Errorf("negative output length %d", outLen))
	}
	if a.Extendable() {
		x, err := a.NewXOF()
		if err != nil {
			return nil, errors.E(op, err)
		}
		if outLen == 0 {
			outLen = x.Size()
		}
		x.Write(data)
		out := make([]byte, outLen)
		x.FinalizeXOF().Read(out)
		return out, nil
	}
	h, err := a.New()
	if err != nil {
		return nil, errors.E(op, err)
	}
	if outLen != 0 && outLen != h.Size() {
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("output length %d differs from digest size %d", outLen, h.Size()))
	}
	h.Write(data)
	return h.Finalize(), nil
}
