// Package repr implements the discriminated Inline/Heap/Static union that
// backs compactstr.CompactString. Every exported function here operates on
// a *Repr directly; nothing above this package needs to know that a single
// [CellSize]byte array is doing triple duty as a string buffer, a pointer +
// length + capacity record, and (for OptionalCompactString) a None marker.
package repr

import "unsafe"

const (
	// PtrSize is the machine word size: 8 on 64-bit targets, 4 on 32-bit.
	// unsafe.Sizeof yields a uintptr-typed constant; it is converted to
	// int here once so every other constant and every index expression
	// derived from it can mix freely with ordinary int-typed lengths
	// (len(), slice indices) without per-use conversions.
	PtrSize = int(unsafe.Sizeof(uintptr(0)))
	// CellSize is WORD from spec: three machine words. 24 bytes on
	// 64-bit, 12 bytes on 32-bit. This is also sizeof(Repr) and
	// sizeof(compactstr.CompactString).
	CellSize = PtrSize * 3
	// lastIdx is the index of the discriminant byte within the cell.
	lastIdx = CellSize - 1
)

// Repr is the union cell itself: exactly CellSize bytes, no discriminant
// field beyond byte[lastIdx], no padding. Whatever the current variant is,
// every byte of Repr participates in representing it.
type Repr struct {
	cell [CellSize]byte
}

// NewEmpty returns the empty representation: Inline, length 0. The zero
// value `var r Repr` is not that: an all-zero cell has last byte 0x00,
// which classify() reads as an Inline cell filled with CellSize NUL bytes.
// NewEmpty therefore writes the length-0 tag explicitly.
func NewEmpty() Repr {
	var r Repr
	r.cell[lastIdx] = inlineTag(0)
	return r
}

func (r *Repr) last() byte { return r.cell[lastIdx] }

// Kind reports which variant r currently holds.
func (r *Repr) Kind() Kind {
	k, _ := classify(r.last())
	return k
}

// NewNiche returns the cell pattern OptionalCompactString reserves for
// None: every byte but the last is unspecified (here, zeroed), and the
// last byte is NicheMask. CompactString itself must never produce this
// pattern; only OptionalCompactString's None constructor does.
func NewNiche() Repr {
	var r Repr
	r.cell[lastIdx] = NicheMask
	return r
}

// IsNiche reports whether r currently holds the reserved None pattern.
func (r *Repr) IsNiche() bool { return r.Kind() == KindNiche }
