// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrhash/digest"
	"github.com/decred/dcrhash/errors"
)

// checkEntry is one parsed line of a checksum file.
type checkEntry struct {
	line int
	sum  []byte
	name string
}

// parseCheckLine parses a line in the format written by sum mode:
// the hex checksum, a space, a mode character (' ' for text or '*' for
// binary) and the file name.
func parseCheckLine(line string) (sum []byte, name string, err error) {
	sp := strings.IndexByte(line, ' ')
	if sp <= 0 || sp+2 > len(line) {
		return nil, "", errors.E(errors.Encoding, "improperly formatted checksum line")
	}
	if mode := line[sp+1]; mode != ' ' && mode != '*' {
		return nil, "", errors.E(errors.Encoding, "improperly formatted checksum line")
	}
	sum, err = hex.DecodeString(line[:sp])
	if err != nil {
		return nil, "", errors.E(errors.Encoding, err)
	}
	name = line[sp+2:]
	if name == "" {
		return nil, "", errors.E(errors.Encoding, "missing file name")
	}
	return sum, name, nil
}

// readCheckFile parses every non-blank line of a checksum file.  Checksum
// lengths must match the digest size of fixed-output algorithms; for
// extendable-output algorithms the length of each checksum selects the
// output length to compute.
func readCheckFile(r io.Reader, alg digest.Algorithm) ([]checkEntry, error) {
	const op errors.Op = "readCheckFile"

	fixedSize := 0
	if !alg.Extendable() {
		h, err := alg.New()
		if err != nil {
			return nil, errors.E(op, err)
		}
		fixedSize = h.Size()
	}

	var entries []checkEntry
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		sum, name, err := parseCheckLine(line)
		if err != nil {
			return nil, errors.E(op, errors.Encoding, errors.Errorf("line %d: %v", lineNo, err))
		}
		if fixedSize != 0 && len(sum) != fixedSize {
			return nil, errors.E(op, errors.Encoding,
				errors.Errorf("line %d: %d-byte checksum for %v", lineNo, len(sum), alg))
		}
		if len(sum) == 0 {
			return nil, errors.E(op, errors.Encoding, errors.Errorf("line %d: empty checksum", lineNo))
		}
		entries = append(entries, checkEntry{line: lineNo, sum: sum, name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(op, errors.IO, err)
	}
	return entries, nil
}

// checkFiles verifies the checksums listed in each named checksum file,
// writing a status line per entry to w.  A Mismatch error is returned when
// any file failed to verify or could not be read.
func checkFiles(ctx context.Context, cfg *config, sumFiles []string, w io.Writer) error {
	const op errors.Op = "checkFiles"

	var entries []checkEntry
	for _, name := range sumFiles {
		r, err := openInput(name)
		if err != nil {
			return errors.E(op, err)
		}
		e, err := readCheckFile(r, cfg.algorithm)
		r.Close()
		if err != nil {
			return errors.E(errors.Opf("checkFiles(%s)", name), err)
		}
		entries = append(entries, e...)
	}

	jobs := make([]job, len(entries))
	for i, e := range entries {
		jobs[i] = job{name: e.name, outLen: len(e.sum)}
	}
	results, err := hashAll(ctx, cfg.algorithm, jobs, cfg.Jobs)
	if err != nil {
		return errors.E(op, err)
	}

	var mismatched, unreadable int
	for i, res := range results {
		switch {
		case res.err != nil:
			unreadable++
			fmt.Fprintf(w, "%s: FAILED open or read\n", res.name)
		case !bytes.Equal(res.sum, entries[i].sum):
			mismatched++
			fmt.Fprintf(w, "%s: FAILED\n", res.name)
		case !cfg.Quiet:
			fmt.Fprintf(w, "%s: OK\n", res.name)
		}
	}

	if mismatched+unreadable == 0 {
		return nil
	}
	return errors.E(op, errors.Mismatch,
		errors.Errorf("%d computed checksums did NOT match, %d listed files could not be read",
			mismatched, unreadable))
}
