// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/decred/dcrhash/digest"
	"github.com/decred/dcrhash/errors"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "dcrhashsum.conf"
	defaultLogLevel       = "warn"
	defaultLogFilename    = "dcrhashsum.log"
	defaultAlgorithm      = "sha3-256"
)

var (
	defaultAppDataDir = appDataDir()
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultJobs       = runtime.NumCPU()
)

// appDataDir returns the per-user configuration directory for dcrhashsum,
// falling back to the working directory when none can be determined.
func appDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "dcrhashsum")
}

type config struct {
	ConfigFile     string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	ListAlgorithms bool   `long:"list" description:"List supported algorithms and exit"`
	Algorithm      string `short:"a" long:"algorithm" description:"Hash algorithm (see --list)"`
	Length         int    `short:"l" long:"length" description:"Output length in bytes of extendable-output algorithms (0 selects the default)"`
	Jobs           int    `short:"j" long:"jobs" description:"Maximum number of files hashed concurrently"`
	Check          bool   `short:"c" long:"check" description:"Read checksums from the FILEs and verify them"`
	Quiet          bool   `short:"q" long:"quiet" description:"Do not print OK for each successfully verified file"`
	LogDir         string `long:"logdir" description:"Also write logs to a rotated file in this directory"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical} or SUBSYS=level pairs"`

	algorithm digest.Algorithm
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but they variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	const op errors.Op = "parseAndSetDebugLevels"

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", debugLevel))
		}
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level contains an invalid "+
					"subsystem/level pair [%v]", logLevelPair))
		}
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsysID]; !exists {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified subsystem [%v] is invalid -- "+
					"supported subsystems %v", subsysID, supportedSubsystems()))
		}
		if !validLogLevel(logLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", logLevel))
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//      1) Start with a default config with sane settings
//      2) Pre-parse the command line to check for an alternative config file
//      3) Load configuration file overwriting defaults with any specified options
//      4) Parse CLI options and overwrite/add any specified options
//
// Command line options always take precedence.  The returned slice holds the
// positional FILE arguments.
func loadConfig(args []string) (*config, []string, error) {
	const op errors.Op = "loadConfig"

	cfg := config{
		ConfigFile: defaultConfigFile,
		Algorithm:  defaultAlgorithm,
		Jobs:       defaultJobs,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if preCfg.ShowVersion || preCfg.ListAlgorithms {
		return &preCfg, nil, nil
	}

	// Load additional config from file.  A missing default config file is
	// not an error.
	parser := flags.NewParser(&cfg, flags.Default)
	configFilePath := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok || preCfg.ConfigFile != defaultConfigFile {
			return nil, nil, errors.E(op, errors.Encoding, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
			return nil, nil, errors.E(op, errors.IO, err)
		}
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, errors.E(op, err)
	}

	cfg.algorithm, err = digest.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, nil, errors.E(op, err)
	}
	if cfg.Length < 0 {
		return nil, nil, errors.E(op, errors.Invalid,
			errors.Errorf("output length %d is negative", cfg.Length))
	}
	if cfg.Length != 0 && !cfg.algorithm.Extendable() {
		return nil, nil, errors.E(op, errors.Invalid,
			fmt.Sprintf("--length requires an extendable-output algorithm, not %v", cfg.algorithm))
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}

	log.Debugf("Loaded config: algorithm %v, %d jobs", cfg.algorithm, cfg.Jobs)
	return &cfg, remainingArgs, nil
}
