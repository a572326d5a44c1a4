package compactstr

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a content hash of s's bytes, suitable for use as a map key
// surrogate or for content-addressing. Two CompactString values with the
// same contents always hash identically regardless of which variant
// (Inline/Heap/Static) currently backs them.
func (s *CompactString) Hash() uint64 {
	return xxhash.Sum64(s.r.Bytes())
}

// Compare returns -1, 0, or 1 depending on whether s sorts before, equal
// to, or after other, byte-wise (the same ordering strings.Compare uses).
func (s *CompactString) Compare(other CompactString) int {
	return bytes.Compare(s.r.Bytes(), other.r.Bytes())
}

// Equal reports whether s and other hold the same bytes.
func (s *CompactString) Equal(other CompactString) bool {
	return bytes.Equal(s.r.Bytes(), other.r.Bytes())
}

// Less reports whether s sorts strictly before other.
func (s *CompactString) Less(other CompactString) bool {
	return s.Compare(other) < 0
}
