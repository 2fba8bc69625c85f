// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Command dcrhashsum prints or checks RIPEMD-160, SHA-3, Keccak and SHAKE
checksums.

	dcrhashsum [options] [FILE...]

With no FILE, or when FILE is -, standard input is read.  Each output line
holds the hex checksum, two spaces and the file name.  With --check the FILEs
are read as lists of such lines and every listed file is verified.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/dcrhash/digest"
	"github.com/decred/dcrhash/errors"
	"github.com/decred/dcrhash/version"
	flags "github.com/jessevdk/go-flags"
)

func init() {
	// Format nested errors without newlines (better for logs).
	errors.Separator = ":: "
}

func main() {
	// Create a context that is cancelled when a shutdown request is received
	// through an interrupt signal.
	ctx := withShutdownCancel(context.Background())
	go shutdownListener()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		closeLogRotator()
		os.Exit(1)
	}
}

// appName returns the base name of the running executable.
func appName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// run parses the configuration and performs the requested sum or check
// operation.  Checksums and status lines go to stdout; diagnostics go to
// stderr.  A non-nil error means the process should exit unsuccessfully.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, files, err := loadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp {
				return nil
			}
			// go-flags has already printed the error.
			return err
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName(), err)
		return err
	}
	defer closeLogRotator()

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s (Go version %s %s/%s)\n", appName(),
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}
	if cfg.ListAlgorithms {
		for _, name := range digest.Algorithms() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if len(files) == 0 {
		files = []string{stdinName}
	}

	if cfg.Check {
		err = checkFiles(ctx, cfg, files, stdout)
	} else {
		err = sumFiles(ctx, cfg, files, stdout, stderr)
	}
	if err != nil {
		log.Debugf("%v", err)
		for _, stack := range errors.Stacks(err) {
			log.Debugf("%s", stack)
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName(), err)
	}
	return err
}

// sumFiles writes the checksum of every named file to w in the order given.
// Files which cannot be read are reported to errw and make the operation
// fail once all other files have been processed.
func sumFiles(ctx context.Context, cfg *config, files []string, w, errw io.Writer) error {
	const op errors.Op = "sumFiles"

	jobs := make([]job, len(files))
	for i, name := range files {
		jobs[i] = job{name: name, outLen: cfg.Length}
	}
	log.Infof("Computing %v of %d inputs with %d workers", cfg.algorithm, len(jobs), cfg.Jobs)
	results, err := hashAll(ctx, cfg.algorithm, jobs, cfg.Jobs)
	if err != nil {
		return errors.E(op, err)
	}

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(errw, "%s: %v\n", appName(), res.err)
			continue
		}
		fmt.Fprintf(w, "%x  %s\n", res.sum, res.name)
	}
	if failed != 0 {
		return errors.E(op, errors.IO, errors.Errorf("%d of %d inputs could not be read", failed, len(results)))
	}
	return nil
}
