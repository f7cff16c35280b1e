// Package bitset implements a fixed-width bitset over target vertices,
// used by the homomorphism search core as the candidate-set
// representation for every pattern vertex's domain.
package bitset

import "math/bits"

const wordBits = 64

// BitDomain is a dense, fixed-width set of vertex indices in [0, Size).
// The zero value is not usable; construct with New or Full.
type BitDomain struct {
	words []uint64
	size  int
}

// New returns an empty BitDomain over [0, size).
func New(size int) BitDomain {
	return BitDomain{words: make([]uint64, wordsFor(size)), size: size}
}

// Full returns a BitDomain over [0, size) with every bit set.
func Full(size int) BitDomain {
	b := New(size)
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.maskTrailing()
	return b
}

func wordsFor(size int) int {
	if size == 0 {
		return 0
	}
	return (size + wordBits - 1) / wordBits
}

// maskTrailing clears any bits beyond size in the last word.
func (b *BitDomain) maskTrailing() {
	if b.size == 0 || len(b.words) == 0 {
		return
	}
	extra := len(b.words)*wordBits - b.size
	if extra == 0 {
		return
	}
	last := len(b.words) - 1
	b.words[last] &^= ^uint64(0) << (wordBits - extra)
}

// Size returns the fixed universe size this BitDomain ranges over.
func (b BitDomain) Size() int { return b.size }

// Clone returns an independent copy.
func (b BitDomain) Clone() BitDomain {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return BitDomain{words: words, size: b.size}
}

// Set adds i to the set.
func (b *BitDomain) Set(i int) {
	b.words[i/wordBits] |= uint64(1) << uint(i%wordBits)
}

// Reset removes i from the set.
func (b *BitDomain) Reset(i int) {
	b.words[i/wordBits] &^= uint64(1) << uint(i%wordBits)
}

// ResetAll clears every bit.
func (b *BitDomain) ResetAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Test reports whether i is a member.
func (b BitDomain) Test(i int) bool {
	return b.words[i/wordBits]&(uint64(1)<<uint(i%wordBits)) != 0
}

// Count returns the number of members (popcount).
func (b BitDomain) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Any reports whether any bit is set.
func (b BitDomain) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// FindFirst returns the smallest member and true, or (0, false) if empty.
func (b BitDomain) FindFirst() (int, bool) {
	for wi, w := range b.words {
		if w == 0 {
			continue
		}
		return wi*wordBits + bits.TrailingZeros64(w), true
	}
	return 0, false
}

// ForEach calls fn for every member in ascending order, word at a time,
// stopping early if fn returns false. This is the "find_first / reset /
// repeat" idiom spelled out as an iterator rather than a mutating loop,
// so callers that only need to read values never have to clone first.
func (b BitDomain) ForEach(fn func(i int) bool) {
	for wi, w := range b.words {
		base := wi * wordBits
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !fn(base + tz) {
				return
			}
			w &^= uint64(1) << uint(tz)
		}
	}
}

// IntersectWith sets b to the intersection of b and other.
func (b *BitDomain) IntersectWith(other BitDomain) {
	for i := range b.words {
		b.words[i] &= other.words[i]
	}
}

// IntersectWithComplement sets b to b AND NOT(other), i.e. removes
// every member of other from b.
func (b *BitDomain) IntersectWithComplement(other BitDomain) {
	for i := range b.words {
		b.words[i] &^= other.words[i]
	}
}

// UnionWith sets b to the union of b and other.
func (b *BitDomain) UnionWith(other BitDomain) {
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// Equal reports whether b and other have identical membership.
func (b BitDomain) Equal(other BitDomain) bool {
	if len(b.words) != len(other.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Slice returns every member as a sorted slice. Intended for tests and
// diagnostics, not the hot path.
func (b BitDomain) Slice() []int {
	out := make([]int, 0, b.Count())
	b.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}
