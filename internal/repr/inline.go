package repr

// MaxInline is the largest string that fits inline: the full cell.
const MaxInline = CellSize

// inlineLen reads the length encoded in an Inline cell. Callers must have
// already classified the cell as KindInline.
func inlineLen(r *Repr) int {
	_, n := classify(r.last())
	return n
}

// inlineBytes returns a slice view over exactly the live bytes of an
// Inline cell. The slice aliases r's own storage; it must not outlive
// mutation of r.
func inlineBytes(r *Repr) []byte {
	n := inlineLen(r)
	return r.cell[:n]
}

// setInline overwrites r with s, which must satisfy len(s) <= MaxInline.
// It always produces a well-formed Inline cell: the tag byte is written
// for every length except MaxInline, whose tag is implicit in the UTF-8
// payload itself.
func setInline(r *Repr, s []byte) {
	n := len(s)
	if n > MaxInline {
		panic("repr: setInline called with oversized input")
	}
	var zero [CellSize]byte
	r.cell = zero
	copy(r.cell[:], s)
	if n < MaxInline {
		r.cell[lastIdx] = inlineTag(n)
	}
	// n == MaxInline: the last byte is already s[MaxInline-1], which by
	// the UTF-8 trailing-byte invariant is < 0xC0, a valid implicit-length
	// tag on its own.
}

// inlineSetLen re-tags an Inline cell to length n without touching the
// bytes before it. Truncate and Pop use it to shrink the visible prefix;
// appendBytes uses it to extend the length after writing the new bytes
// into the cell itself.
func inlineSetLen(r *Repr, n int) {
	if n < 0 || n > MaxInline {
		panic("repr: inlineSetLen out of range")
	}
	if n < MaxInline {
		r.cell[lastIdx] = inlineTag(n)
	} else {
		// Growing back out to MaxInline only happens as part of
		// rewriting the full payload elsewhere; nothing to tag here.
	}
}
