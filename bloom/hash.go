// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

// References:
//   [PRH] Polynomial rolling hash function
//     https://cp-algorithms.com/string/string-hashing.html
//
//   [DJB2] Dan Bernstein's times-33 hash, comp.lang.c
//
//   [SDBM] The hash used by the sdbm database library

// These parameters configure the polynomial rolling hash.  The base is a
// small prime chosen to exceed the size of the expected input alphabet and
// the modulus is a large prime used to bound the accumulator.
//
// Note that the modulus only serves as an internal mixing parameter for the
// polynomial hash.  It is intentionally unrelated to the number of bits in a
// filter since the final reduction of every hash to a bit index is always
// performed against the filter size.
const (
	polyBase    = 31
	polyModulus = 1000000009
)

// polyHash returns the polynomial rolling hash of the provided string per
// [PRH].  The string is treated as the coefficients of a base-p polynomial
// such that the result is:
//
//	(s[0]+1) + (s[1]+1)*p + (s[2]+1)*p^2 + ... mod m
//
// Each byte is offset by one so strings consisting of the zero symbol still
// contribute to the hash instead of collapsing to zero.
//
// Both the accumulator and the running power are reduced modulo m at every
// step, so intermediate products are bounded well below 64 bits and never
// silently truncate.
func polyHash(s string, p, m uint64) uint64 {
	var hash uint64
	pPow := uint64(1)
	for i := 0; i < len(s); i++ {
		hash = (hash + (uint64(s[i])+1)*pPow) % m
		pPow = (pPow * p) % m
	}
	return hash
}

// djb2 returns the times-33 hash popularized by Dan Bernstein [DJB2]:
//
//	hash = 5381
//	hash = hash*33 + c, for each byte c
//
// The arithmetic is performed in a fixed-width unsigned integer that wraps
// on overflow.  The wraparound is part of the function definition, not an
// error condition.
func djb2(s string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) + hash) + uint64(s[i])
	}
	return hash
}

// sdbm returns the hash function used by the sdbm database library [SDBM]:
//
//	hash = c + hash<<6 + hash<<16 - hash, for each byte c
//
// As with djb2, the fixed-width unsigned wraparound is intentional.
func sdbm(s string) uint64 {
	var hash uint64
	for i := 0; i < len(s); i++ {
		hash = uint64(s[i]) + (hash << 6) + (hash << 16) - hash
	}
	return hash
}

// hashes returns the three independent hash values for the provided item.
//
// The three functions deliberately use structurally different mixing
// strategies (polynomial evaluation, multiply-and-add, shift combination) to
// approximate the independence the filter math assumes.  Three variants of a
// single family would correlate and understate the true false positive rate.
func hashes(item string) (uint64, uint64, uint64) {
	return polyHash(item, polyBase, polyModulus), djb2(item), sdbm(item)
}
