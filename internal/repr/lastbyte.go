package repr

// Kind identifies which of the three mutually exclusive states a cell is
// currently in. It is never stored anywhere; it is recomputed on demand
// from the cell's last byte.
type Kind int

const (
	KindInline Kind = iota
	KindHeap
	KindStatic
	// KindNiche is never a live value of Repr; it is the sentinel
	// OptionalCompactString reserves for None.
	KindNiche
	// kindReserved marks a last-byte value that must never occur. Seeing
	// it means memory has been corrupted or a bug wrote the byte by hand.
	kindReserved
)

const (
	// inlineTagBase is added to an inline length to produce the tag byte
	// for any inline string shorter than the full cell.
	inlineTagBase byte = 0xC0
	// StaticMask marks a Static (borrowed, non-owning) cell.
	StaticMask byte = 0xFD
	// HeapMask marks a Heap (owned) cell.
	HeapMask byte = 0xFE
	// NicheMask is reserved for OptionalCompactString's None sentinel.
	// Repr must never produce this value.
	NicheMask byte = 0xFF
)

// classify inspects the final byte of a cell and reports its variant and,
// for Inline, the encoded length. It touches no other byte: the whole
// point of the scheme is that this decision needs only the final byte.
func classify(last byte) (kind Kind, inlineLen int) {
	switch {
	case last < inlineTagBase:
		// A valid UTF-8 byte can never be >= 0xC0 in trailing position,
		// so this byte is payload: the string fills the cell.
		return KindInline, CellSize
	case last == StaticMask:
		return KindStatic, 0
	case last == HeapMask:
		return KindHeap, 0
	case last == NicheMask:
		return KindNiche, 0
	case int(last-inlineTagBase) < CellSize:
		return KindInline, int(last - inlineTagBase)
	default:
		return kindReserved, 0
	}
}

// inlineTag returns the byte that must be written to bytes[LAST] to mark
// an inline string of length n, for n < CellSize. Callers must not call
// this for n == CellSize: a full cell's tag is whatever its final payload
// byte happens to be, and no write is needed.
func inlineTag(n int) byte {
	return inlineTagBase + byte(n)
}
