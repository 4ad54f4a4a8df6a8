// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"fmt"
	"testing"
)

// TestPolyHash ensures the polynomial rolling hash produces the expected
// values for known inputs, including the empty string.
func TestPolyHash(t *testing.T) {
	tests := []struct {
		name string // test description
		in   string // input string
		want uint64 // expected hash
	}{{
		name: "empty string",
		in:   "",
		want: 0,
	}, {
		name: "single char",
		in:   "a",
		want: 98,
	}, {
		name: "short ascii",
		in:   "abc",
		want: 99267,
	}, {
		name: "hostname",
		in:   "evil.com",
		want: 697609793,
	}, {
		name: "url with path",
		in:   "https://example.com/login",
		want: 189804067,
	}}

	for _, test := range tests {
		got := polyHash(test.in, polyBase, polyModulus)
		if got != test.want {
			t.Errorf("%q: unexpected hash -- got %d, want %d", test.name,
				got, test.want)
		}
		if got >= polyModulus {
			t.Errorf("%q: hash %d not reduced below modulus %d", test.name,
				got, uint64(polyModulus))
		}
	}
}

// TestDjb2 ensures the djb2 hash produces the expected values for known
// inputs with fixed-width unsigned wraparound semantics.
func TestDjb2(t *testing.T) {
	tests := []struct {
		name string // test description
		in   string // input string
		want uint64 // expected hash
	}{{
		name: "empty string",
		in:   "",
		want: 5381,
	}, {
		name: "single char",
		in:   "a",
		want: 177670,
	}, {
		name: "short ascii",
		in:   "abc",
		want: 193485963,
	}, {
		name: "hostname",
		in:   "evil.com",
		want: 7572345869776258,
	}, {
		name: "url with path",
		in:   "https://example.com/login",
		want: 7138512621368635793,
	}}

	for _, test := range tests {
		got := djb2(test.in)
		if got != test.want {
			t.Errorf("%q: unexpected hash -- got %d, want %d", test.name,
				got, test.want)
		}
	}
}

// TestSdbm ensures the sdbm hash produces the expected values for known
// inputs with fixed-width unsigned wraparound semantics.
func TestSdbm(t *testing.T) {
	tests := []struct {
		name string // test description
		in   string // input string
		want uint64 // expected hash
	}{{
		name: "empty string",
		in:   "",
		want: 0,
	}, {
		name: "single char",
		in:   "a",
		want: 97,
	}, {
		name: "short ascii",
		in:   "abc",
		want: 417419622498,
	}, {
		name: "hostname",
		in:   "evil.com",
		want: 1228690785140581383,
	}, {
		name: "url with path",
		in:   "https://example.com/login",
		want: 6379267263512048872,
	}}

	for _, test := range tests {
		got := sdbm(test.in)
		if got != test.want {
			t.Errorf("%q: unexpected hash -- got %d, want %d", test.name,
				got, test.want)
		}
	}
}

// TestHashDeterminism ensures repeated invocations of each hash function
// produce identical results for the same input.
func TestHashDeterminism(t *testing.T) {
	for i := 0; i < 10; i++ {
		item := fmt.Sprintf("malicious-site-%d.example", i)
		h1a, h2a, h3a := hashes(item)
		h1b, h2b, h3b := hashes(item)
		if h1a != h1b || h2a != h2b || h3a != h3b {
			t.Fatalf("hashes for %q not deterministic -- got (%d, %d, %d) "+
				"then (%d, %d, %d)", item, h1a, h2a, h3a, h1b, h2b, h3b)
		}
	}
}

// TestHashIndependence ensures the three hash functions do not collapse to
// the same bit index across a representative sample of inputs.  A regression
// that reduces the hash family to a single effective function would make
// every item set a single bit and silently wreck the false positive rate.
func TestHashIndependence(t *testing.T) {
	samples := []string{
		"evil.com", "bad.net", "good.org", "a", "abc",
		"https://example.com/login", "phishing-login.example",
	}
	for i := 0; i < 50; i++ {
		samples = append(samples, fmt.Sprintf("sample-url-%d.example/path", i))
	}

	filter, err := NewFilter(DefaultNumBits)
	if err != nil {
		t.Fatalf("unexpected error creating filter: %v", err)
	}
	for _, item := range samples {
		i1, i2, i3 := filter.indices(item)
		if i1 == i2 && i2 == i3 {
			t.Errorf("all hash functions produced index %d for %q", i1, item)
		}
	}
}
