package repr

import (
	"unicode/utf8"
	"unsafe"
)

// initialHeapCap is the minimum capacity given to a buffer the first time
// a cell promotes from Inline/Static to Heap, following the usual advice
// to size the first heap allocation generously (max(needed, 2x the
// inline footprint)) so an immediately-following append doesn't force a
// second reallocation right away.
const initialHeapCap = uint64(MaxInline * 2)

// NewFromBytes builds a Repr holding a copy of s: Inline if it fits,
// otherwise a fresh Heap allocation sized exactly to len(s).
func NewFromBytes(s []byte) (Repr, error) {
	if len(s) <= MaxInline {
		var r Repr
		setInline(&r, s)
		return r, nil
	}
	return newHeap(s, uint64(len(s)))
}

// NewStatic builds a Repr borrowing s with no allocation: Inline if it
// fits in the cell (inlining is strictly cheaper than a borrow record and
// carries no lifetime obligation), Static otherwise. s must have the
// program's lifetime when Static is chosen; see static.go.
func NewStatic(s string) Repr {
	if len(s) <= MaxInline {
		var r Repr
		setInline(&r, []byte(s))
		return r
	}
	return newStatic(s)
}

// Len reports the number of bytes currently stored.
func (r *Repr) Len() int {
	switch r.Kind() {
	case KindInline:
		return inlineLen(r)
	case KindHeap:
		return int(heapLen(r))
	case KindStatic:
		return int(staticLen(r))
	default:
		panic("repr: Len on invalid cell")
	}
}

// IsEmpty reports whether the string is zero-length.
func (r *Repr) IsEmpty() bool { return r.Len() == 0 }

// Capacity reports how many bytes can be held without reallocating.
func (r *Repr) Capacity() uint64 {
	switch r.Kind() {
	case KindInline:
		return uint64(MaxInline)
	case KindHeap:
		return heapCap(r)
	case KindStatic:
		// A borrow has nothing to grow into until it is written to,
		// at which point it promotes and gets a real capacity.
		return staticLen(r)
	default:
		panic("repr: Capacity on invalid cell")
	}
}

// Bytes returns a view of the live bytes. For Inline and Static this
// aliases r's own storage or the borrowed memory; for Heap it aliases the
// C allocation. Callers must not retain the slice past the next mutation
// of r, nor past a call to Release.
func (r *Repr) Bytes() []byte {
	switch r.Kind() {
	case KindInline:
		return inlineBytes(r)
	case KindHeap:
		return heapBytes(r)
	case KindStatic:
		return staticBytes(r)
	default:
		panic("repr: Bytes on invalid cell")
	}
}

// Clone produces an independent copy. Heap cells allocate and copy
// (spec's explicitly-not-ref-counted clone cost, O(n)); Inline and Static
// cells copy for free since the cell itself is the only state.
func (r *Repr) Clone() (Repr, error) {
	switch r.Kind() {
	case KindInline, KindStatic:
		return *r, nil
	case KindHeap:
		return newHeap(heapBytes(r), heapCap(r))
	default:
		panic("repr: Clone on invalid cell")
	}
}

// Release frees the C allocation backing a Heap cell. It is a no-op for
// Inline and Static. Calling it more than once, or using r afterward
// without reassigning it, is undefined — exactly as using a freed pointer
// would be in C.
func (r *Repr) Release() {
	if r.Kind() == KindHeap {
		releaseHeap(r)
	}
}

// Clear empties r, releasing any Heap allocation. The result is always
// Inline(0).
func (r *Repr) Clear() {
	r.Release()
	*r = NewEmpty()
}

// ensureCapacity makes sure r can hold at least need bytes without
// reallocating again, promoting Inline/Static to Heap if necessary.
func (r *Repr) ensureCapacity(need uint64) error {
	switch r.Kind() {
	case KindInline:
		if need <= uint64(MaxInline) {
			return nil
		}
		cap := need
		if cap < initialHeapCap {
			cap = initialHeapCap
		}
		cur := append([]byte(nil), inlineBytes(r)...)
		nr, err := newHeap(cur, cap)
		if err != nil {
			return err
		}
		*r = nr
		return nil
	case KindStatic:
		if need <= uint64(MaxInline) {
			return nil
		}
		cap := need
		if cap < initialHeapCap {
			cap = initialHeapCap
		}
		cur := staticBytes(r)
		nr, err := newHeap(cur, cap)
		if err != nil {
			return err
		}
		*r = nr
		return nil
	case KindHeap:
		return growHeap(r, need)
	default:
		panic("repr: ensureCapacity on invalid cell")
	}
}

// Reserve grows r so it can hold at least Len()+additional bytes without
// another reallocation.
func (r *Repr) Reserve(additional uint64) error {
	return r.ensureCapacity(uint64(r.Len()) + additional)
}

// ShrinkTo reduces capacity to max(Len(), minCap), demoting Heap to
// Inline when the result fits. ShrinkToFit is ShrinkTo(0).
func (r *Repr) ShrinkTo(minCap uint64) error {
	if r.Kind() != KindHeap {
		return nil
	}
	length := uint64(r.Len())
	target := minCap
	if target < length {
		target = length
	}
	if target <= uint64(MaxInline) {
		// Demote: copy the live bytes out before releasing the
		// allocation that currently holds them.
		var tmp [MaxInline]byte
		copy(tmp[:], heapBytes(r))
		releaseHeap(r)
		var nr Repr
		setInline(&nr, tmp[:length])
		*r = nr
		return nil
	}
	return shrinkHeap(r, target)
}

// ShrinkToFit is ShrinkTo(0): shrink as far as possible.
func (r *Repr) ShrinkToFit() error { return r.ShrinkTo(0) }

// appendBytes appends b to r's current contents, promoting the variant
// if the result no longer fits in whatever representation r currently
// holds.
func (r *Repr) appendBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	switch r.Kind() {
	case KindInline:
		cur := inlineLen(r)
		total := cur + len(b)
		if total <= MaxInline {
			copy(r.cell[cur:], b)
			inlineSetLen(r, total)
			return nil
		}
		existing := append([]byte(nil), inlineBytes(r)...)
		cap := uint64(total)
		if cap < initialHeapCap {
			cap = initialHeapCap
		}
		nr, err := newHeapParts(cap, existing, b)
		if err != nil {
			return err
		}
		*r = nr
		return nil
	case KindStatic:
		cur := staticBytes(r)
		total := len(cur) + len(b)
		if total <= MaxInline {
			var tmp [MaxInline]byte
			n := copy(tmp[:], cur)
			copy(tmp[n:], b)
			var nr Repr
			setInline(&nr, tmp[:total])
			*r = nr
			return nil
		}
		cap := uint64(total)
		if cap < initialHeapCap {
			cap = initialHeapCap
		}
		nr, err := newHeapParts(cap, cur, b)
		if err != nil {
			return err
		}
		*r = nr
		return nil
	case KindHeap:
		cur := heapLen(r)
		total := cur + uint64(len(b))
		if err := growHeap(r, total); err != nil {
			return err
		}
		dst := unsafe.Pointer(uintptr(heapPtr(r)) + uintptr(cur))
		callocCopy(dst, unsafe.Pointer(&b[0]), uint64(len(b)))
		setHeapLen(r, total)
		return nil
	default:
		panic("repr: appendBytes on invalid cell")
	}
}

// PushStr appends s.
func (r *Repr) PushStr(s string) error {
	return r.appendBytes([]byte(s))
}

// Push appends a single rune.
func (r *Repr) Push(ch rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return r.appendBytes(buf[:n])
}

// Pop removes and returns the last rune, reporting false if r is empty.
// A Heap cell that shrinks to MaxInline or below opportunistically
// demotes to Inline; this is a performance tradeoff, not a correctness
// requirement, so other demotion policies (never, or threshold-based)
// would be equally valid.
func (r *Repr) Pop() (rune, bool) {
	b := r.Bytes()
	if len(b) == 0 {
		return 0, false
	}
	ch, size := utf8.DecodeLastRune(b)
	newLen := len(b) - size
	switch r.Kind() {
	case KindInline:
		inlineSetLen(r, newLen)
	case KindStatic:
		if newLen <= MaxInline {
			var nr Repr
			setInline(&nr, b[:newLen])
			*r = nr
			break
		}
		nr, err := newHeap(b[:newLen], uint64(newLen))
		if err != nil {
			// b[:newLen] is already resident in borrowed memory; a copy
			// of it failing to allocate means the process is
			// effectively out of address space, which Pop's signature
			// has no way to report.
			panic(err)
		}
		*r = nr
	case KindHeap:
		setHeapLen(r, uint64(newLen))
		if newLen <= MaxInline {
			_ = r.ShrinkToFit()
		}
	}
	return ch, true
}

// isBoundary reports whether idx is a valid UTF-8 character boundary
// within a string of the given bytes: either the end of the string, or
// the start of a rune.
func isBoundary(b []byte, idx int) bool {
	if idx == 0 || idx == len(b) {
		return true
	}
	if idx < 0 || idx > len(b) {
		return false
	}
	return utf8.RuneStart(b[idx])
}

// InsertStr inserts s at byte offset idx, which must be a character
// boundary.
func (r *Repr) InsertStr(idx int, s string) error {
	if len(s) == 0 {
		if !isBoundary(r.Bytes(), idx) {
			return &BoundaryError{Index: idx, Len: r.Len()}
		}
		return nil
	}
	b := r.Bytes()
	if !isBoundary(b, idx) {
		return &BoundaryError{Index: idx, Len: len(b)}
	}
	if idx == len(b) {
		return r.appendBytes([]byte(s))
	}
	// General case: build the spliced content and reinstall it. This
	// always reallocates/rewrites, which is the correct cost for an
	// interior insert regardless of variant.
	head := append([]byte(nil), b[:idx]...)
	tail := append([]byte(nil), b[idx:]...)
	total := len(head) + len(s) + len(tail)
	if total <= MaxInline {
		var tmp [MaxInline]byte
		n := copy(tmp[:], head)
		n += copy(tmp[n:], s)
		n += copy(tmp[n:], tail)
		r.Release()
		var nr Repr
		setInline(&nr, tmp[:n])
		*r = nr
		return nil
	}
	cap := uint64(total)
	if cap < initialHeapCap {
		cap = initialHeapCap
	}
	nr, err := newHeapParts(cap, head, []byte(s), tail)
	if err != nil {
		return err
	}
	r.Release()
	*r = nr
	return nil
}

// Insert inserts a single rune at byte offset idx.
func (r *Repr) Insert(idx int, ch rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return r.InsertStr(idx, string(buf[:n]))
}

// Remove removes and returns the rune starting at byte offset idx.
func (r *Repr) Remove(idx int) (rune, error) {
	b := r.Bytes()
	if idx < 0 || idx >= len(b) || !utf8.RuneStart(b[idx]) {
		return 0, &BoundaryError{Index: idx, Len: len(b)}
	}
	ch, size := utf8.DecodeRune(b[idx:])
	if err := r.ReplaceRange(idx, idx+size, ""); err != nil {
		return 0, err
	}
	return ch, nil
}

// Truncate shortens r to newLen bytes, which must be a character
// boundary not longer than the current length. It never reallocates.
func (r *Repr) Truncate(newLen int) error {
	b := r.Bytes()
	if newLen > len(b) || !isBoundary(b, newLen) {
		return &BoundaryError{Index: newLen, Len: len(b)}
	}
	switch r.Kind() {
	case KindInline:
		inlineSetLen(r, newLen)
	case KindStatic:
		*staticLenSlot(r) = uintptr(newLen)
	case KindHeap:
		setHeapLen(r, uint64(newLen))
	}
	return nil
}

// ReplaceRange replaces the bytes in [start:end) with s. start and end
// must be character boundaries with start <= end.
func (r *Repr) ReplaceRange(start, end int, s string) error {
	b := r.Bytes()
	if start < 0 || end > len(b) || start > end || !isBoundary(b, start) || !isBoundary(b, end) {
		return &BoundaryError{Index: end, Len: len(b)}
	}
	head := append([]byte(nil), b[:start]...)
	tail := append([]byte(nil), b[end:]...)
	total := len(head) + len(s) + len(tail)
	if total <= MaxInline {
		var tmp [MaxInline]byte
		n := copy(tmp[:], head)
		n += copy(tmp[n:], s)
		n += copy(tmp[n:], tail)
		r.Release()
		var nr Repr
		setInline(&nr, tmp[:n])
		*r = nr
		return nil
	}
	cap := uint64(total)
	if cap < initialHeapCap {
		cap = initialHeapCap
	}
	nr, err := newHeapParts(cap, head, []byte(s), tail)
	if err != nil {
		return err
	}
	r.Release()
	*r = nr
	return nil
}

// Drain removes the bytes in [start:end) and returns them as a new Repr,
// leaving r holding what remains.
func (r *Repr) Drain(start, end int) (Repr, error) {
	b := r.Bytes()
	if start < 0 || end > len(b) || start > end || !isBoundary(b, start) || !isBoundary(b, end) {
		return Repr{}, &BoundaryError{Index: end, Len: len(b)}
	}
	drained := append([]byte(nil), b[start:end]...)
	if err := r.ReplaceRange(start, end, ""); err != nil {
		return Repr{}, err
	}
	dr, err := NewFromBytes(drained)
	if err != nil {
		return Repr{}, err
	}
	return dr, nil
}

// SplitOff splits r at byte offset at: r keeps [:at), and the returned
// Repr holds [at:).
func (r *Repr) SplitOff(at int) (Repr, error) {
	b := r.Bytes()
	if at < 0 || at > len(b) || !isBoundary(b, at) {
		return Repr{}, &BoundaryError{Index: at, Len: len(b)}
	}
	tail := append([]byte(nil), b[at:]...)
	tailRepr, err := NewFromBytes(tail)
	if err != nil {
		return Repr{}, err
	}
	if err := r.Truncate(at); err != nil {
		tailRepr.Release()
		return Repr{}, err
	}
	if r.Kind() == KindHeap {
		_ = r.ShrinkToFit()
	}
	return tailRepr, nil
}

// Repeat returns a new Repr holding s repeated n times. Integer overflow
// while computing the resulting length is fatal: there is no sensible
// value to return for a length that cannot be represented.
func Repeat(s []byte, n uint64) (Repr, error) {
	if n == 0 || len(s) == 0 {
		return NewEmpty(), nil
	}
	total := uint64(len(s)) * n
	if n != 0 && total/n != uint64(len(s)) {
		panic(&CapacityOverflow{Op: "Repeat"})
	}
	if total <= uint64(MaxInline) {
		var tmp [MaxInline]byte
		var off int
		for i := uint64(0); i < n; i++ {
			off += copy(tmp[off:], s)
		}
		var r Repr
		setInline(&r, tmp[:total])
		return r, nil
	}
	parts := make([][]byte, n)
	for i := range parts {
		parts[i] = s
	}
	return newHeapParts(total, parts...)
}
