package ecsgo

import (
	"encoding/binary"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Fingerprint is the content-addressed identity of a kind set: one bit per
// kind id. Two fingerprints built from the same kinds are equal regardless
// of the order the kinds were declared in.
type Fingerprint struct {
	bits *bitset.BitSet
	key  string
}

// NewFingerprint builds the fingerprint of the given kinds.
func NewFingerprint(types ...ComponentType) Fingerprint {
	b := bitset.New(uint(maxID(types) + 1))
	for _, ct := range types {
		b.Set(uint(ct.ID()))
	}
	return Fingerprint{bits: b, key: encodeKey(b)}
}

// encodeKey packs the words of b into a string, dropping trailing zero words
// so the key depends on the set bits only.
func encodeKey(b *bitset.BitSet) string {
	words := b.Words()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}

	var sb strings.Builder
	sb.Grow(n * 8)
	var buf [8]byte
	for _, w := range words[:n] {
		binary.LittleEndian.PutUint64(buf[:], w)
		sb.Write(buf[:])
	}
	return sb.String()
}

// Key returns a comparable representation usable as a map key.
func (f Fingerprint) Key() string { return f.key }

// Equal reports whether f and other describe the same kind set.
func (f Fingerprint) Equal(other Fingerprint) bool { return f.key == other.key }

// Contains reports whether the kind with the given id is part of the set.
func (f Fingerprint) Contains(id int) bool {
	if f.bits == nil || id < 0 {
		return false
	}
	return f.bits.Test(uint(id))
}

// ContainsAll reports whether every kind of other is also in f.
func (f Fingerprint) ContainsAll(other Fingerprint) bool {
	if other.bits == nil {
		return true
	}
	for i, ok := other.bits.NextSet(0); ok; i, ok = other.bits.NextSet(i + 1) {
		if !f.Contains(int(i)) {
			return false
		}
	}
	return true
}

// Len returns the number of kinds in the set.
func (f Fingerprint) Len() int {
	if f.bits == nil {
		return 0
	}
	return int(f.bits.Count())
}

// IDs returns the kind ids in ascending order.
func (f Fingerprint) IDs() []int {
	if f.bits == nil {
		return nil
	}
	ids := make([]int, 0, f.bits.Count())
	for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
		ids = append(ids, int(i))
	}
	return ids
}

func maxID(types []ComponentType) int {
	m := -1
	for _, ct := range types {
		if ct.ID() > m {
			m = ct.ID()
		}
	}
	return m
}
