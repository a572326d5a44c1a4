package compactstr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNoneIsNone(t *testing.T) {
	o := None()
	require.True(t, o.IsNone())
	require.False(t, o.IsSome())
	_, ok := o.Get()
	require.False(t, ok)
}

func TestSomeRoundTrips(t *testing.T) {
	o := Some(New("hello"))
	require.True(t, o.IsSome())
	v, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, "hello", v.String())
}

func TestOptionalSizeofMatchesCompactString(t *testing.T) {
	var o OptionalCompactString
	var s CompactString
	require.Equal(t, unsafe.Sizeof(s), unsafe.Sizeof(o))
}

func TestClearResetsToNone(t *testing.T) {
	o := Some(New("hello"))
	o.Clear()
	require.True(t, o.IsNone())
}
