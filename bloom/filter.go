// Copyright (c) 2026 The blockcheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bloom implements a classic Bloom filter for string membership.
package bloom

import (
	"fmt"
	"math"
	"sync"

	"github.com/jrick/bitset"
)

const (
	// NumHashFuncs is the number of independent hash functions used to
	// derive bit indices for each item.  It is the k parameter in the
	// standard false positive rate approximation.
	NumHashFuncs = 3

	// DefaultNumBits is a reasonable default filter size for corpora on
	// the order of tens of thousands of items.
	DefaultNumBits = 1000001

	// maxNumBits is the largest supported filter size.  Sizes beyond it
	// would overflow the byte-count arithmetic of the underlying bit set
	// allocation.
	maxNumBits = math.MaxInt - 7
)

// CalcFPRate calculates and returns the expected false positive rate for a
// filter with the given number of bits after the given number of items have
// been added to it.
//
// The rate is the standard approximation (1 - e^(-kn/m))^k, where k is the
// number of hash functions, n is the number of items, and m is the number of
// bits.  Since bits are only ever set and never cleared, the rate is
// monotonically non-decreasing in the number of items.
//
// This function is safe for concurrent access.
func CalcFPRate(numBits, numItems uint64) float64 {
	if numBits == 0 {
		return 1
	}
	exponent := -float64(NumHashFuncs) * float64(numItems) / float64(numBits)
	return math.Pow(1-math.Exp(exponent), NumHashFuncs)
}

// Filter implements a classic Bloom filter that is safe for concurrent
// access.
//
// A Bloom filter is a probabilistic data structure that supports membership
// queries with one-sided error: an item that was added is always reported as
// a member (zero false negatives), while an item that was never added is
// reported as a member with a probability that grows with the number of
// items added relative to the filter size (false positives).
//
// Items may only be added, never removed.  Consequently, the false positive
// rate only ever increases as items are added, and a filter must be sized
// for its expected corpus up front via NewFilter.
type Filter struct {
	// numBits is the fixed capacity of the bit set.  Every hash value is
	// reduced modulo this value before being used as a bit index, so no
	// out-of-range access is possible.  It never changes after creation.
	numBits uint64

	// mtx protects the fields below.  Adds take the write lock for the
	// full duration of the multi-bit update so queries never observe a
	// partially-applied insertion.
	mtx sync.RWMutex

	// bits is the packed bit set that backs the filter.  Bits are only
	// ever set, never cleared.
	bits bitset.Bytes

	// numItems is the total number of items added.  It exists only for
	// diagnostics and false positive rate estimation and has no effect on
	// membership results.
	numItems uint64
}

// NewFilter returns a Bloom filter with the provided fixed number of bits.
//
// The number of bits must be larger than the expected item count scaled by a
// safety factor to keep the false positive rate acceptable.  CalcFPRate may
// be used to evaluate candidate sizes.  A zero size, or a size too large for
// the underlying bit set to represent, is a configuration error and is
// rejected here rather than at first use.
func NewFilter(numBits uint64) (*Filter, error) {
	if numBits == 0 {
		return nil, fmt.Errorf("filter size must be greater than zero")
	}
	if numBits > maxNumBits {
		return nil, fmt.Errorf("filter size %d exceeds the maximum supported "+
			"size %d", numBits, uint64(maxNumBits))
	}
	return &Filter{
		numBits: numBits,
		bits:    bitset.NewBytes(int(numBits)),
	}, nil
}

// indices returns the three bit indices for the provided item.  Each index
// is the corresponding hash value reduced modulo the filter size.
func (f *Filter) indices(item string) (uint64, uint64, uint64) {
	h1, h2, h3 := hashes(item)
	return h1 % f.numBits, h2 % f.numBits, h3 % f.numBits
}

// Add inserts the provided item into the filter.
//
// This function is safe for concurrent access.
func (f *Filter) Add(item string) {
	i1, i2, i3 := f.indices(item)
	f.mtx.Lock()
	f.bits.Set(int(i1))
	f.bits.Set(int(i2))
	f.bits.Set(int(i3))
	f.numItems++
	f.mtx.Unlock()
}

// Contains returns the result of a probabilistic membership test for the
// provided item.
//
// A false return is definitive: the item was never added.  A true return
// means the item was either added or is a false positive whose probability
// is reported by FPRate.  Items that were added always return true
// regardless of how many other items were added before or after.
//
// This function is safe for concurrent access.
func (f *Filter) Contains(item string) bool {
	i1, i2, i3 := f.indices(item)
	f.mtx.RLock()
	result := f.bits.Get(int(i1)) && f.bits.Get(int(i2)) && f.bits.Get(int(i3))
	f.mtx.RUnlock()
	return result
}

// Size returns the fixed number of bits the filter was created with.
//
// This function is safe for concurrent access.
func (f *Filter) Size() uint64 {
	return f.numBits
}

// Items returns the total number of items that have been added to the
// filter.  The count is purely diagnostic and has no effect on membership
// results.
//
// This function is safe for concurrent access.
func (f *Filter) Items() uint64 {
	f.mtx.RLock()
	numItems := f.numItems
	f.mtx.RUnlock()
	return numItems
}

// FPRate calculates and returns the expected false positive rate of the
// filter given the number of items added to it so far.
//
// This function is safe for concurrent access.
func (f *Filter) FPRate() float64 {
	return CalcFPRate(f.numBits, f.Items())
}
