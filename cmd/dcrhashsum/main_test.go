// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decred/dcrhash/digest"
	"github.com/decred/dcrhash/errors"
	"github.com/decred/dcrhash/internal/uniformprng"
)

// testDir creates a directory holding an empty config file and a few input
// files, returning the directory, the config file path and the input paths.
func testDir(t *testing.T) (string, string, []string) {
	t.Helper()
	dir := t.TempDir()
	conf := filepath.Join(dir, "empty.conf")
	require.NoError(t, os.WriteFile(conf, nil, 0600))

	src := uniformprng.SeedString("dcrhashsum inputs")
	var files []string
	for i, n := range []int{0, 1, 135, 136, 137, readBufferSize + 17} {
		name := filepath.Join(dir, fmt.Sprintf("input%d", i))
		require.NoError(t, os.WriteFile(name, src.Bytes(n), 0600))
		files = append(files, name)
	}
	return dir, conf, files
}

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestLoadConfig(t *testing.T) {
	dir, conf, _ := testDir(t)

	cfg, rest, err := loadConfig([]string{"-C", conf, "-a", "SHAKE256", "-l", "100", "-j", "0", "a", "b"})
	require.NoError(t, err)
	require.Equal(t, digest.SHAKE256, cfg.algorithm)
	require.Equal(t, 100, cfg.Length)
	require.Equal(t, 1, cfg.Jobs)
	require.Equal(t, []string{"a", "b"}, rest)

	_, _, err = loadConfig([]string{"-C", conf, "-a", "sha3-256", "-l", "20"})
	require.True(t, errors.Is(errors.Invalid, err))

	_, _, err = loadConfig([]string{"-C", conf, "-a", "md5"})
	require.True(t, errors.Is(errors.Invalid, err))

	_, _, err = loadConfig([]string{"-C", conf, "-d", "NOPE=debug"})
	require.True(t, errors.Is(errors.Invalid, err))

	// Options from the config file apply unless overridden on the command
	// line.
	ini := filepath.Join(dir, "dcrhashsum.conf")
	require.NoError(t, os.WriteFile(ini, []byte("[Application Options]\nalgorithm=ripemd160\njobs=3\n"), 0600))
	cfg, _, err = loadConfig([]string{"-C", ini})
	require.NoError(t, err)
	require.Equal(t, digest.RIPEMD160, cfg.algorithm)
	require.Equal(t, 3, cfg.Jobs)

	cfg, _, err = loadConfig([]string{"-C", ini, "-a", "keccak256"})
	require.NoError(t, err)
	require.Equal(t, digest.Keccak256, cfg.algorithm)

	// A config file named explicitly must exist.
	_, _, err = loadConfig([]string{"-C", filepath.Join(dir, "missing.conf")})
	require.Error(t, err)
}

func TestSumOutput(t *testing.T) {
	_, conf, files := testDir(t)
	for _, alg := range []string{"ripemd160", "sha3-512", "keccak-256", "shake128"} {
		stdout, stderr, err := runArgs(t, append([]string{"-C", conf, "-a", alg, "-j", "2"}, files...)...)
		require.NoError(t, err, stderr)

		a, err := digest.ParseAlgorithm(alg)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		require.Len(t, lines, len(files))
		for i, name := range files {
			data, err := os.ReadFile(name)
			require.NoError(t, err)
			want, err := digest.Sum(a, data, 0)
			require.NoError(t, err)
			require.Equal(t, hex.EncodeToString(want)+"  "+name, lines[i])
		}
	}
}

func TestSumXOFLength(t *testing.T) {
	_, conf, files := testDir(t)
	stdout, _, err := runArgs(t, "-C", conf, "-a", "shake256", "-l", "300", files[4])
	require.NoError(t, err)

	data, err := os.ReadFile(files[4])
	require.NoError(t, err)
	want, err := digest.Sum(digest.SHAKE256, data, 300)
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(want)+"  "+files[4]+"\n", stdout)
}

func TestSumMissingFile(t *testing.T) {
	dir, conf, files := testDir(t)
	missing := filepath.Join(dir, "does-not-exist")
	stdout, stderr, err := runArgs(t, "-C", conf, files[0], missing, files[1])
	require.True(t, errors.Is(errors.IO, err))
	require.Contains(t, stderr, "does-not-exist")
	require.Equal(t, 2, strings.Count(stdout, "\n"))
}

func TestCheck(t *testing.T) {
	dir, conf, files := testDir(t)

	for _, alg := range []string{"sha3-256", "shake128"} {
		stdout, _, err := runArgs(t, append([]string{"-C", conf, "-a", alg, "-l", "0"}, files...)...)
		require.NoError(t, err)
		sums := filepath.Join(dir, alg+".sums")
		require.NoError(t, os.WriteFile(sums, []byte(stdout), 0600))

		out, _, err := runArgs(t, "-C", conf, "-a", alg, "-c", sums)
		require.NoError(t, err)
		require.Equal(t, len(files), strings.Count(out, ": OK\n"))

		out, _, err = runArgs(t, "-C", conf, "-a", alg, "-c", "-q", sums)
		require.NoError(t, err)
		require.Empty(t, out)
	}

	// Corrupt one input and verify again.
	sums := filepath.Join(dir, "sha3-256.sums")
	require.NoError(t, os.WriteFile(files[2], []byte("changed"), 0600))
	out, _, err := runArgs(t, "-C", conf, "-c", sums)
	require.True(t, errors.Is(errors.Mismatch, err))
	require.Contains(t, out, files[2]+": FAILED\n")
	require.Equal(t, len(files)-1, strings.Count(out, ": OK\n"))
}

func TestCheckExtendedLength(t *testing.T) {
	dir, conf, files := testDir(t)
	stdout, _, err := runArgs(t, "-C", conf, "-a", "shake256", "-l", "7", files[1])
	require.NoError(t, err)
	sums := filepath.Join(dir, "short.sums")
	require.NoError(t, os.WriteFile(sums, []byte(stdout), 0600))

	// The checksum length in the file selects the output length.
	out, _, err := runArgs(t, "-C", conf, "-a", "shake256", "-c", sums)
	require.NoError(t, err)
	require.Equal(t, files[1]+": OK\n", out)
}

func TestParseCheckLine(t *testing.T) {
	sum, name, err := parseCheckLine("00ff  some file.txt")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff}, sum)
	require.Equal(t, "some file.txt", name)

	_, name, err = parseCheckLine("abcd *bin")
	require.NoError(t, err)
	require.Equal(t, "bin", name)

	for _, bad := range []string{"abcd", "abcd ", "abcd  ", "zz  x", " abcd  x", "abcd -x"} {
		_, _, err := parseCheckLine(bad)
		require.True(t, errors.Is(errors.Encoding, err), bad)
	}
}

func TestReadCheckFileSize(t *testing.T) {
	_, err := readCheckFile(strings.NewReader("00ff  x\n"), digest.SHA3_256)
	require.True(t, errors.Is(errors.Encoding, err))

	entries, err := readCheckFile(strings.NewReader("\n00ff  x\r\n\n"), digest.SHAKE128)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].line)
}

func TestCanceled(t *testing.T) {
	_, _, files := testDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := []job{{name: files[5]}}
	_, err := hashAll(ctx, digest.SHA3_256, jobs, 1)
	require.True(t, errors.Is(errors.Canceled, err))
}

func TestWorkerPanic(t *testing.T) {
	_, _, files := testDir(t)
	// An output length no slice can hold makes the XOF sink panic.
	jobs := []job{{name: files[0]}, {name: files[1], outLen: math.MaxInt}}
	_, err := hashAll(context.Background(), digest.SHAKE256, jobs, 2)
	require.True(t, errors.Is(errors.Bug, err))
	require.Contains(t, err.Error(), files[1])
	require.Len(t, errors.Stacks(err), 1)
}

func TestListAndVersion(t *testing.T) {
	out, _, err := runArgs(t, "--list")
	require.NoError(t, err)
	require.Equal(t, strings.Join(digest.Algorithms(), "\n")+"\n", out)

	out, _, err = runArgs(t, "-V")
	require.NoError(t, err)
	require.Contains(t, out, "version 1.0.0")
}
