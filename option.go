package compactstr

import "github.com/foldwire/compactstr/internal/repr"

// OptionalCompactString is the hand-written analogue of a niche-optimized
// Option<CompactString>: it occupies exactly sizeof(CompactString) bytes,
// with byte[LAST] == 0xFF marking None. CompactString never produces that
// byte pattern on its own, so the two types can share the footprint with
// no extra discriminant.
type OptionalCompactString struct {
	r repr.Repr
}

// None returns the empty optional.
func None() OptionalCompactString {
	return OptionalCompactString{r: repr.NewNiche()}
}

// Some wraps v.
func Some(v CompactString) OptionalCompactString {
	return OptionalCompactString{r: v.r}
}

// IsSome reports whether o holds a value.
func (o *OptionalCompactString) IsSome() bool { return !o.r.IsNiche() }

// IsNone reports whether o is empty.
func (o *OptionalCompactString) IsNone() bool { return o.r.IsNiche() }

// Get returns the wrapped value and true, or the zero value and false if
// o is None.
func (o *OptionalCompactString) Get() (CompactString, bool) {
	if o.r.IsNiche() {
		return CompactString{}, false
	}
	return CompactString{r: o.r}, true
}

// Set wraps v, replacing whatever o previously held.
func (o *OptionalCompactString) Set(v CompactString) { o.r = v.r }

// Clear resets o to None.
func (o *OptionalCompactString) Clear() { o.r = repr.NewNiche() }
