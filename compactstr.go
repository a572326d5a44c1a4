// Package compactstr implements CompactString, a small-string-optimized
// string value type whose footprint is exactly three machine words (24
// bytes on 64-bit targets, 12 bytes on 32-bit). Strings that fit are
// stored entirely inline, with no allocation; longer strings spill to a
// heap buffer managed outside the Go garbage collector. See SPEC_FULL.md
// for why that buffer is allocated with libc's malloc rather than Go's own
// allocator.
package compactstr

import (
	"fmt"

	"github.com/foldwire/compactstr/internal/repr"
)

// CompactString is the public value type. Unlike a Go string or slice,
// its zero value is NOT a valid empty string: an all-zero cell's last
// byte is 0x00, which the last-byte discriminant reads as a full Inline
// cell of CellSize NUL bytes (0x00 is itself valid UTF-8, the NUL
// character, so this is indistinguishable from a legitimate payload). Always
// construct through New, NewStatic, WithCapacity, or another constructor
// in this package; never use a bare `var s CompactString`.
type CompactString struct {
	r repr.Repr
}

// Kind identifies which representation a CompactString currently holds.
type Kind int

const (
	Inline Kind = iota
	Heap
	Static
)

func fromReprKind(k repr.Kind) Kind {
	switch k {
	case repr.KindHeap:
		return Heap
	case repr.KindStatic:
		return Static
	default:
		return Inline
	}
}

// Variant reports whether s is currently Inline, Heap, or Static. This is
// an implementation-visibility escape hatch for diagnostics and tests, not
// something most callers should branch on.
func (s *CompactString) Variant() Kind { return fromReprKind(s.r.Kind()) }

// New builds a CompactString from s, inlining when it fits and allocating
// a Heap buffer otherwise. The returned value owns a copy of s's bytes.
//
// s must be valid UTF-8. Go strings carry no such guarantee the way Rust's
// do, and New does not check: a 24-byte (12 on 32-bit) argument whose last
// byte happens to land at or above 0xC0 would be misread as a shorter
// inline string, and a trailing 0xFF would forge the niche pattern
// OptionalCompactString reserves for None. Callers with untrusted or
// binary bytes should go through FromUTF8 instead, which validates first.
func New(s string) CompactString {
	r, err := repr.NewFromBytes([]byte(s))
	if err != nil {
		// Allocation of a string already resident in memory failing
		// means the process is effectively out of address space; there
		// is no sensible recovery for a constructor signature that
		// promises an unconditional value.
		panic(err)
	}
	return CompactString{r: r}
}

// NewStatic builds a CompactString borrowing s with no allocation. s must
// have the lifetime of the program: a string literal, or a value built
// entirely from string literals and constants. Any mutation of the
// returned value promotes it to an owned representation first; the
// borrowed memory itself is never written to.
func NewStatic(s string) CompactString {
	return CompactString{r: repr.NewStatic(s)}
}

// WithCapacity builds an empty CompactString with room for at least cap
// bytes without reallocating.
func WithCapacity(cap uint64) (CompactString, error) {
	s := CompactString{r: repr.NewEmpty()}
	if cap <= uint64(repr.MaxInline) {
		return s, nil
	}
	if err := s.r.Reserve(cap); err != nil {
		return CompactString{}, err
	}
	return s, nil
}

// FromGoString is the Go analogue of constructing from an owned heap
// string. Unlike compact_str's move-from-String constructor, this always
// copies when s does not fit inline: a Go string's backing array is
// immutable, GC-owned memory, and our cell cannot safely hide a pointer
// into it. See DESIGN.md for the full rationale.
func FromGoString(s string) CompactString { return New(s) }

// Len reports the length in bytes.
func (s *CompactString) Len() int { return s.r.Len() }

// IsEmpty reports whether s has zero length.
func (s *CompactString) IsEmpty() bool { return s.r.IsEmpty() }

// Capacity reports how many bytes s can hold without reallocating.
func (s *CompactString) Capacity() uint64 { return s.r.Capacity() }

// AsBytes returns a view of s's bytes. The slice aliases s's internal
// storage (stack cell, C allocation, or borrowed static memory) and must
// not be retained past the next mutation of s or past a call to Release.
func (s *CompactString) AsBytes() []byte { return s.r.Bytes() }

// String returns an independent copy of s's contents as a Go string. This
// always copies: a Go string is immutable and must not alias a C
// allocation or borrowed memory that could later be released.
func (s *CompactString) String() string {
	b := s.r.Bytes()
	if len(b) == 0 {
		return ""
	}
	return string(b)
}

// ToByteSlice returns an independent copy of s's bytes as a new []byte.
func (s *CompactString) ToByteSlice() []byte {
	b := s.r.Bytes()
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Clone returns an independent copy of s. Clone is O(n) for a Heap value:
// there is no reference-counted fast path.
func (s *CompactString) Clone() (CompactString, error) {
	r, err := s.r.Clone()
	if err != nil {
		return CompactString{}, err
	}
	return CompactString{r: r}, nil
}

// Release frees the C allocation backing s if s currently holds a Heap
// value. It is safe (a no-op) to call on an Inline or Static value. s must
// not be used again afterward unless it is first reassigned.
func (s *CompactString) Release() { s.r.Release() }

// GoString implements fmt.GoStringer so %#v output is readable instead of
// exposing the raw cell bytes.
func (s *CompactString) GoString() string {
	return fmt.Sprintf("compactstr.New(%q)", s.String())
}
