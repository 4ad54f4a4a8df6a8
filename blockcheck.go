// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/blockcheck/blockcheck/bloom"
	"github.com/blockcheck/blockcheck/internal/blocklist"
	"github.com/blockcheck/blockcheck/internal/version"
)

var cfg *config

// checkString queries a single candidate string against the filter and
// writes the verdict to w.
func checkString(w io.Writer, filter *bloom.Filter, candidate string) {
	verdict := "not malicious"
	if filter.Contains(candidate) {
		verdict = "possibly malicious"
	}
	fmt.Fprintf(w, "%s : %s\n", candidate, verdict)
}

// checkFile scans every line of the file at the provided path against the
// filter and writes the tallies and the list of possible members to w.
func checkFile(w io.Writer, filter *bloom.Filter, path string) error {
	result, err := blocklist.CheckFile(path, filter)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Total positives: %d\n", result.Positives)
	fmt.Fprintf(w, "Total negatives: %d\n", result.Negatives)
	if len(result.Matches) == 0 {
		fmt.Fprintln(w, "No possibly malicious entries found.")
		return nil
	}
	fmt.Fprintln(w, "Possibly malicious entries:")
	for _, match := range result.Matches {
		fmt.Fprintln(w, match)
	}
	return nil
}

// menuLoop runs the interactive menu until the user chooses to exit or the
// input stream is exhausted.  All prompts and results are written to w.
func menuLoop(r io.Reader, w io.Writer, filter *bloom.Filter) {
	reader := bufio.NewReader(r)
	readLine := func() (string, bool) {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		return strings.TrimSpace(line), true
	}

	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "--- Bloom Filter Menu ---")
		fmt.Fprintf(w, "Filter size: %d bits (%d entries, estimated false "+
			"positive rate %.6f)\n", filter.Size(), filter.Items(),
			filter.FPRate())
		fmt.Fprintln(w, "Hash functions: Polynomial Rolling, DJB2, SDBM")
		fmt.Fprintln(w, "1. Check a file")
		fmt.Fprintln(w, "2. Check a string")
		fmt.Fprintln(w, "3. Exit")
		fmt.Fprint(w, "Enter your choice: ")

		choice, ok := readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			fmt.Fprint(w, "Enter the file name to check: ")
			path, ok := readLine()
			if !ok {
				return
			}
			if err := checkFile(w, filter, path); err != nil {
				fmt.Fprintln(w, err)
			}

		case "2":
			fmt.Fprint(w, "Enter the string to check: ")
			candidate, ok := readLine()
			if !ok {
				return
			}
			checkString(w, filter, candidate)

		case "3":
			return

		default:
			fmt.Fprintln(w, "Invalid choice. Please enter a number between "+
				"1 and 3.")
		}
	}
}

// blockcheckMain is the real main function for blockcheck.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func blockcheckMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	tcfg, _, err := loadConfig(appName)
	if err != nil {
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version at startup.
	bcLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	// Create the filter and populate it from the corpus.  A corpus that
	// cannot be read is surfaced as a diagnostic and simply results in zero
	// insertions rather than a partially-initialized filter.
	filter, err := bloom.NewFilter(cfg.NumBits)
	if err != nil {
		bcLog.Errorf("Unable to create filter: %v", err)
		return err
	}
	numAdded, err := blocklist.Load(cfg.Corpus, filter)
	if err != nil {
		bcLog.Warnf("Unable to fully load corpus: %v -- continuing with the "+
			"%d entries loaded before the failure", err, numAdded)
	}
	bcLog.Infof("Filter ready: %d bits, %d entries, estimated false "+
		"positive rate %.6f", filter.Size(), numAdded, filter.FPRate())

	// One-shot modes for non-interactive use.
	if cfg.Check != "" {
		checkString(os.Stdout, filter, cfg.Check)
		return nil
	}
	if cfg.CheckFile != "" {
		return checkFile(os.Stdout, filter, cfg.CheckFile)
	}

	menuLoop(os.Stdin, os.Stdout, filter)
	return nil
}

func main() {
	if err := blockcheckMain(); err != nil {
		os.Exit(1)
	}
}
