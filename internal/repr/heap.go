package repr

import "unsafe"

// Heap cell layout: [ ptr : PtrSize | len : PtrSize |
// cap[0:spaceForCapacity] | discriminant ]. The discriminant and the last
// byte of the capacity word are adjacent but distinct: the discriminant
// is always HeapMask, and packCapacity never touches it.

func heapPtrSlot(r *Repr) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(&r.cell[0]))
}

func heapLenSlot(r *Repr) *uintptr {
	return (*uintptr)(unsafe.Pointer(&r.cell[PtrSize]))
}

func heapCapBytes(r *Repr) *[spaceForCapacity]byte {
	return (*[spaceForCapacity]byte)(unsafe.Pointer(&r.cell[2*PtrSize]))
}

func heapPtr(r *Repr) unsafe.Pointer { return *heapPtrSlot(r) }
func heapLen(r *Repr) uint64         { return uint64(*heapLenSlot(r)) }

// heapCap returns the buffer's true capacity, following the 32-bit spill
// header when the cell's own capacity word holds the spill sentinel.
func heapCap(r *Repr) uint64 {
	c, spilled := unpackCapacity(*heapCapBytes(r))
	if !spilled {
		return c
	}
	return readSpillHeader(heapPtr(r))
}

// spillDataOffset is how far the data pointer sits past the start of the
// allocation when a header is present: one machine word.
const spillDataOffset = PtrSize

func readSpillHeader(dataPtr unsafe.Pointer) uint64 {
	base := unsafe.Pointer(uintptr(dataPtr) - uintptr(spillDataOffset))
	return uint64(*(*uintptr)(base))
}

func writeSpillHeader(basePtr unsafe.Pointer, cap uint64) {
	*(*uintptr)(basePtr) = uintptr(cap)
}

// setHeapFields writes ptr/len/cap into r, choosing the 32-bit spill
// layout automatically when cap is at or above MaxCapacityInline. ptr must
// already point at the data start (past any spill header); basePtr is the
// true allocation start, used only to locate the header when spilling.
func setHeapFields(r *Repr, basePtr, dataPtr unsafe.Pointer, length, cap uint64) {
	*heapPtrSlot(r) = dataPtr
	*heapLenSlot(r) = uintptr(length)
	capBytes, spilled := packCapacity(cap)
	*heapCapBytes(r) = capBytes
	if spilled {
		writeSpillHeader(basePtr, cap)
	}
	r.cell[lastIdx] = HeapMask
}

func setHeapLen(r *Repr, n uint64) { *heapLenSlot(r) = uintptr(n) }

// heapBytes returns a slice view over the buffer's live bytes. The slice
// aliases C memory; it is valid only as long as r is not mutated or
// released.
func heapBytes(r *Repr) []byte {
	p := heapPtr(r)
	n := heapLen(r)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(n))
}

// allocatedSize returns how many bytes were actually requested from the C
// allocator for the given desired capacity: the capacity itself, plus one
// spill header word if the capacity won't fit in the cell's own capacity
// field.
func allocatedSize(cap uint64) (size uint64, hasHeader bool) {
	if cap >= MaxCapacityInline {
		return cap + uint64(spillDataOffset), true
	}
	return cap, false
}

// newHeap allocates a fresh Heap cell holding a copy of s, with room for
// at least cap total bytes (cap >= len(s)).
func newHeap(s []byte, cap uint64) (Repr, error) {
	return newHeapParts(cap, s)
}

// newHeapParts allocates a fresh Heap cell holding the concatenation of
// parts, with room for at least cap total bytes.
func newHeapParts(cap uint64, parts ...[]byte) (Repr, error) {
	var r Repr
	size, hasHeader := allocatedSize(cap)
	base, err := callocAlloc(size)
	if err != nil {
		return Repr{}, err
	}
	data := base
	if hasHeader {
		data = unsafe.Pointer(uintptr(base) + uintptr(spillDataOffset))
	}
	var off uint64
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		dst := unsafe.Pointer(uintptr(data) + uintptr(off))
		callocCopy(dst, unsafe.Pointer(&p[0]), uint64(len(p)))
		off += uint64(len(p))
	}
	setHeapFields(&r, base, data, off, cap)
	return r, nil
}

// heapBasePtr recovers the true allocation start, accounting for a
// possible spill header.
func heapBasePtr(r *Repr) unsafe.Pointer {
	_, spilled := unpackCapacity(*heapCapBytes(r))
	p := heapPtr(r)
	if spilled {
		return unsafe.Pointer(uintptr(p) - uintptr(spillDataOffset))
	}
	return p
}

// growHeap grows r's heap buffer to hold at least need total bytes,
// following a 1.5x growth policy: newCap = max(need, cap*3/2). The
// resize goes through reallocHeap, which calls realloc (which may
// relocate the buffer) unless a spill header has to be introduced or
// removed, in which case it allocates fresh and copies.
func growHeap(r *Repr, need uint64) error {
	cap := heapCap(r)
	if need <= cap {
		return nil
	}
	newCap := cap + cap/2
	if newCap < cap { // overflow guard
		panic(&CapacityOverflow{Op: "growHeap"})
	}
	if newCap < need {
		newCap = need
	}
	return reallocHeap(r, newCap)
}

// shrinkHeap reduces r's capacity to minCap, never below its current
// length. It is a no-op if that wouldn't shrink anything.
func shrinkHeap(r *Repr, minCap uint64) error {
	length := heapLen(r)
	if minCap < length {
		minCap = length
	}
	if minCap >= heapCap(r) {
		return nil
	}
	return reallocHeap(r, minCap)
}

// reallocHeap resizes the backing allocation to exactly newCap bytes,
// preserving length and content, and handles crossing the spill boundary
// in either direction.
func reallocHeap(r *Repr, newCap uint64) error {
	oldBase := heapBasePtr(r)
	_, oldHasHeader := unpackCapacity(*heapCapBytes(r))
	length := heapLen(r)
	newSize, newHasHeader := allocatedSize(newCap)

	if oldHasHeader == newHasHeader {
		// Simple case: the header's presence doesn't change, so a
		// plain realloc keeps ptr/header math untouched.
		newBase, err := callocRealloc(oldBase, newSize)
		if err != nil {
			return err
		}
		newData := newBase
		if newHasHeader {
			newData = unsafe.Pointer(uintptr(newBase) + uintptr(spillDataOffset))
			writeSpillHeader(newBase, newCap)
		}
		setHeapFields(r, newBase, newData, length, newCap)
		return nil
	}

	// The header is appearing or disappearing: allocate fresh so the
	// data payload lands at the right offset, then copy and free old.
	newBase, err := callocAlloc(newSize)
	if err != nil {
		return err
	}
	newData := newBase
	if newHasHeader {
		newData = unsafe.Pointer(uintptr(newBase) + uintptr(spillDataOffset))
		writeSpillHeader(newBase, newCap)
	}
	if length > 0 {
		callocCopy(newData, heapPtr(r), length)
	}
	callocFree(oldBase)
	setHeapFields(r, newBase, newData, length, newCap)
	return nil
}

// releaseHeap frees r's C allocation. r must currently be KindHeap;
// callers are responsible for checking that first.
func releaseHeap(r *Repr) {
	callocFree(heapBasePtr(r))
}
