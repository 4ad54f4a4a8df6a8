// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/blockcheck/blockcheck/bloom"
	"github.com/blockcheck/blockcheck/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCorpusFilename = "malicious.csv"
	defaultLogFilename    = "blockcheck.log"
	defaultDebugLevel     = "info"
)

// config defines the configuration options for blockcheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Corpus      string `short:"c" long:"corpus" description:"Line-oriented corpus file of known-bad identifiers to populate the filter with"`
	NumBits     uint64 `long:"bits" description:"Number of bits in the filter bit array"`
	Check       string `long:"check" description:"Check a single candidate string against the filter and exit"`
	CheckFile   string `long:"checkfile" description:"Check every line of the provided file against the filter and exit"`
	LogDir      string `long:"logdir" description:"Directory to write log files to; file logging is disabled when empty"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse command line options which override defaults
//  3. Validate the final values
//
// It also initializes logging and configures it accordingly.
func loadConfig(appName string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Corpus:     defaultCorpusFilename,
		NumBits:    bloom.DefaultNumBits,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// A zero-size filter is a configuration error which must be rejected
	// here rather than at first use.
	if cfg.NumBits == 0 {
		str := "%s: the bits option may not be 0"
		err := fmt.Errorf(str, "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Validate debug log level.
	if !validLogLevel(cfg.DebugLevel) {
		str := "%s: the specified debug level [%v] is invalid -- supported " +
			"levels: {trace, debug, info, warn, error, critical}"
		err := fmt.Errorf(str, "loadConfig", cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}
	setLogLevels(cfg.DebugLevel)

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
