package repr

import "fmt"

// ReserveError reports that the allocator refused a (re)allocation
// request. It wraps whatever the C allocator shim observed (typically
// nothing more than "malloc returned NULL").
type ReserveError struct {
	Requested uint64
	Reason    string
}

func (e *ReserveError) Error() string {
	return fmt.Sprintf("repr: failed to reserve %d bytes: %s", e.Requested, e.Reason)
}

// Utf8Error reports that input bytes were not valid UTF-8. The byte at Index
// begins an invalid sequence, which is InvalidLen bytes long (0 means the
// sequence was truncated at the end of the input).
type Utf8Error struct {
	Index      int
	InvalidLen int
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("repr: invalid UTF-8 at byte %d (length %d)", e.Index, e.InvalidLen)
}

// Utf16Error reports an unpaired surrogate or an odd byte count when
// decoding UTF-16.
type Utf16Error struct {
	Index  int
	Reason string
}

func (e *Utf16Error) Error() string {
	return fmt.Sprintf("repr: invalid UTF-16 at unit %d: %s", e.Index, e.Reason)
}

// BoundaryError reports an index that is out of range or does not fall on
// a UTF-8 character boundary.
type BoundaryError struct {
	Index int
	Len   int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("repr: index %d is not a valid boundary for a string of length %d", e.Index, e.Len)
}

// CapacityOverflow is raised (via panic, never returned) when length or
// capacity arithmetic would overflow the address space. This is fatal,
// not recoverable: there is no sensible value to return.
type CapacityOverflow struct {
	Op string
}

func (e *CapacityOverflow) Error() string {
	return fmt.Sprintf("repr: capacity overflow during %s", e.Op)
}
