// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/decred/dcrhash/digest"
	"github.com/decred/dcrhash/errors"
	"golang.org/x/sync/errgroup"
)

// stdinName is the file name which selects standard input.
const stdinName = "-"

// readBufferSize is the size of each read from an input file.
const readBufferSize = 32 * 1024

// sink accumulates input for one file and produces its checksum.
type sink interface {
	io.Writer
	finish() []byte
}

type hasherSink struct{ digest.Hasher }

func (s hasherSink) finish() []byte { return s.Finalize() }

type xofSink struct {
	digest.XOF
	outLen int
}

func (s xofSink) finish() []byte {
	out := make([]byte, s.outLen)
	s.FinalizeXOF().Read(out)
	return out
}

// newSink returns a sink for alg.  outLen selects the output length of an
// extendable-output algorithm and is ignored otherwise; zero selects the
// algorithm's default.
func newSink(alg digest.Algorithm, outLen int) (sink, error) {
	if !alg.Extendable() {
		h, err := alg.New()
		if err != nil {
			return nil, err
		}
		return hasherSink{h}, nil
	}
	x, err := alg.NewXOF()
	if err != nil {
		return nil, err
	}
	if outLen == 0 {
		outLen = x.Size()
	}
	return xofSink{x, outLen}, nil
}

// hashReader reads r to EOF and returns its checksum.  The context is checked
// between reads so a large input can be abandoned on shutdown.
func hashReader(ctx context.Context, s sink, r io.Reader) ([]byte, error) {
	const op errors.Op = "hashReader"
	buf := make([]byte, readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.E(op, errors.Canceled, err)
		}
		n, err := r.Read(buf)
		s.Write(buf[:n])
		if err == io.EOF {
			return s.finish(), nil
		}
		if err != nil {
			return nil, errors.E(op, errors.IO, err)
		}
	}
}

// openInput opens a named input file, or standard input for stdinName.
func openInput(name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.E(errors.NotExist, err)
		}
		return nil, errors.E(errors.IO, err)
	}
	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		f.Close()
		return nil, errors.E(errors.Invalid, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")})
	}
	return f, nil
}

// job describes one input to hash.
type job struct {
	name   string
	outLen int
}

// result is the outcome of hashing one input.
type result struct {
	name string
	sum  []byte
	err  error
}

// hashFile computes the checksum of a single job.
func hashFile(ctx context.Context, alg digest.Algorithm, j job) ([]byte, error) {
	op := errors.Opf("hashFile(%s)", j.name)
	s, err := newSink(alg, j.outLen)
	if err != nil {
		return nil, errors.E(op, err)
	}
	r, err := openInput(j.name)
	if err != nil {
		return nil, errors.E(op, err)
	}
	defer r.Close()
	sum, err := hashReader(ctx, s, r)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return sum, nil
}

// hashAll hashes every job using at most workers goroutines, each owning its
// own hasher.  Results are returned in job order.  Failures of individual
// files are recorded in their result; only cancellation or a panic in a hash
// engine aborts the batch, the latter as a Bug error carrying its stack.
func hashAll(ctx context.Context, alg digest.Algorithm, jobs []job, workers int) ([]result, error) {
	const op errors.Op = "hashAll"

	results := make([]result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i := i
		g.Go(func() (err error) {
			j := jobs[i]
			defer func() {
				if r := recover(); r != nil {
					err = errors.WithStack(op, errors.Bug, errors.Errorf("%s: %v", j.name, r))
				}
			}()
			sum, err := hashFile(gctx, alg, j)
			results[i] = result{name: j.name, sum: sum, err: err}
			if errors.Is(errors.Canceled, err) {
				return err
			}
			if err != nil {
				log.Debugf("%v", err)
			} else {
				log.Tracef("%s: %x", j.name, sum)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.E(op, err)
	}
	return results, nil
}
