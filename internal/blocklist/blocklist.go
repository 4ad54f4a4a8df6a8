// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blocklist streams line-oriented corpora of known-bad identifiers
// into a Bloom filter and scans candidate files against it.
package blocklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blockcheck/blockcheck/bloom"
)

// maxLineSize is the maximum supported length in bytes of a single corpus
// or candidate line.  A longer line causes the scan to fail rather than
// being silently dropped along with everything after it.
const maxLineSize = 1 << 20

// newLineScanner returns a scanner for r sized to accept lines up to
// maxLineSize.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return scanner
}

// LoadReader adds every non-empty line read from r to the provided filter
// and returns the number of lines added.  Trailing carriage returns are
// stripped so corpora produced on other platforms behave identically.
//
// The order of the lines does not affect the resulting filter.
//
// A read failure, including a line longer than the supported maximum,
// terminates the load and is returned along with the number of lines added
// before the failure so a partial load is never mistaken for a complete
// one.
func LoadReader(r io.Reader, filter *bloom.Filter) (int, error) {
	var numAdded int
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		filter.Add(line)
		numAdded++
	}
	if err := scanner.Err(); err != nil {
		return numAdded, fmt.Errorf("unable to read corpus: %w", err)
	}
	return numAdded, nil
}

// Load opens the corpus file at the provided path and adds every non-empty
// line to the provided filter.  It returns the number of lines added.
//
// When the file cannot be opened, an error is returned and the filter is
// left untouched, so a missing or unreadable corpus results in zero
// insertions rather than a partially-initialized filter.  A read failure
// partway through is likewise returned along with the number of entries
// added before the failure.
func Load(path string, filter *bloom.Filter) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("unable to open corpus file: %w", err)
	}
	defer file.Close()

	numAdded, err := LoadReader(file, filter)
	if err != nil {
		return numAdded, err
	}
	log.Infof("Loaded %d entries from corpus %s", numAdded, path)
	return numAdded, nil
}

// Result houses the outcome of scanning a sequence of candidate strings
// against a filter.
type Result struct {
	// Positives is the number of candidates the filter reported as
	// possible members.
	Positives int

	// Negatives is the number of candidates the filter reported as
	// definite non-members.
	Negatives int

	// Matches are the candidate strings the filter reported as possible
	// members, in input order.
	Matches []string
}

// CheckReader queries every non-empty line read from r against the provided
// filter and returns the tallied results.
//
// A read failure, including a line longer than the supported maximum,
// results in an error rather than a partial tally.
func CheckReader(r io.Reader, filter *bloom.Filter) (*Result, error) {
	var result Result
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if filter.Contains(line) {
			result.Positives++
			result.Matches = append(result.Matches, line)
		} else {
			result.Negatives++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read candidates: %w", err)
	}
	return &result, nil
}

// CheckFile opens the file at the provided path and queries every non-empty
// line against the provided filter.
//
// When the file cannot be opened, an error is returned and the filter state
// is unaffected.
func CheckFile(path string, filter *bloom.Filter) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer file.Close()

	result, err := CheckReader(file, filter)
	if err != nil {
		return nil, err
	}
	log.Debugf("Checked %d entries from %s (%d possible members)",
		result.Positives+result.Negatives, path, result.Positives)
	return result, nil
}
