package repr

import "unsafe"

// Static cell layout: [ ptr : PtrSize | len : PtrSize |
// unused[0:spaceForCapacity] | StaticMask ]. Unlike Heap, the pointer here
// is never freed: it must point at memory with the program's lifetime,
// which in Go means the data backing a string literal or a package-level
// constant built from one. The caller of NewStatic is asserting that
// guarantee; this package has no way to check it, exactly as Rust's
// `&'static str` contract is enforced by the caller providing a value with
// that lifetime, not by any runtime check.

func staticPtrSlot(r *Repr) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(&r.cell[0]))
}

func staticLenSlot(r *Repr) *uintptr {
	return (*uintptr)(unsafe.Pointer(&r.cell[PtrSize]))
}

func staticPtr(r *Repr) unsafe.Pointer { return *staticPtrSlot(r) }
func staticLen(r *Repr) uint64         { return uint64(*staticLenSlot(r)) }

// newStatic builds a Static cell borrowing s. s must outlive every use of
// the returned Repr; it is the caller's responsibility, typically because
// s is a Go string literal or derived entirely from string literals.
func newStatic(s string) Repr {
	var r Repr
	if len(s) > 0 {
		*staticPtrSlot(&r) = unsafe.Pointer(unsafe.StringData(s))
	}
	*staticLenSlot(&r) = uintptr(len(s))
	r.cell[lastIdx] = StaticMask
	return r
}

// staticBytes returns a zero-copy view of the borrowed bytes.
func staticBytes(r *Repr) []byte {
	n := staticLen(r)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(staticPtr(r)), int(n))
}
