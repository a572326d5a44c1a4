package compactstr

import "github.com/foldwire/compactstr/internal/repr"

// Push appends a single rune.
func (s *CompactString) Push(ch rune) error { return s.r.Push(ch) }

// PushStr appends str.
func (s *CompactString) PushStr(str string) error { return s.r.PushStr(str) }

// Pop removes and returns the last rune, reporting false if s is empty.
func (s *CompactString) Pop() (rune, bool) { return s.r.Pop() }

// Insert inserts a single rune at byte offset idx.
func (s *CompactString) Insert(idx int, ch rune) error { return s.r.Insert(idx, ch) }

// InsertStr inserts str at byte offset idx.
func (s *CompactString) InsertStr(idx int, str string) error { return s.r.InsertStr(idx, str) }

// Remove removes and returns the rune starting at byte offset idx.
func (s *CompactString) Remove(idx int) (rune, error) { return s.r.Remove(idx) }

// Truncate shortens s to newLen bytes, which must fall on a character
// boundary. It never reallocates.
func (s *CompactString) Truncate(newLen int) error { return s.r.Truncate(newLen) }

// Clear empties s, releasing any heap allocation. The result is always
// the Inline empty value.
func (s *CompactString) Clear() { s.r.Clear() }

// Reserve ensures s can hold at least Len()+additional bytes without
// another reallocation.
func (s *CompactString) Reserve(additional uint64) error { return s.r.Reserve(additional) }

// ShrinkTo reduces capacity to max(Len(), minCap).
func (s *CompactString) ShrinkTo(minCap uint64) error { return s.r.ShrinkTo(minCap) }

// ShrinkToFit shrinks capacity as far as possible.
func (s *CompactString) ShrinkToFit() error { return s.r.ShrinkToFit() }

// ReplaceRange replaces the bytes in [start:end) with str.
func (s *CompactString) ReplaceRange(start, end int, str string) error {
	return s.r.ReplaceRange(start, end, str)
}

// Drain removes the bytes in [start:end) and returns them as a new
// CompactString, leaving s holding what remains.
func (s *CompactString) Drain(start, end int) (CompactString, error) {
	r, err := s.r.Drain(start, end)
	if err != nil {
		return CompactString{}, err
	}
	return CompactString{r: r}, nil
}

// SplitOff splits s at byte offset at: s keeps [:at), and the returned
// value holds [at:).
func (s *CompactString) SplitOff(at int) (CompactString, error) {
	r, err := s.r.SplitOff(at)
	if err != nil {
		return CompactString{}, err
	}
	return CompactString{r: r}, nil
}

// Repeat returns a new CompactString holding s repeated n times.
func (s *CompactString) Repeat(n uint64) (CompactString, error) {
	r, err := repr.Repeat(s.r.Bytes(), n)
	if err != nil {
		return CompactString{}, err
	}
	return CompactString{r: r}, nil
}

// Extend appends str; an alias for PushStr kept for callers that prefer
// an iterator-style name alongside the bulk one.
func (s *CompactString) Extend(str string) error { return s.r.PushStr(str) }
