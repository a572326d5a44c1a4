package compactstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAndRemove(t *testing.T) {
	s := New("hllo")
	require.NoError(t, s.Insert(1, 'e'))
	require.Equal(t, "hello", s.String())

	ch, err := s.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 'e', ch)
	require.Equal(t, "hllo", s.String())
}

func TestTruncateAndClear(t *testing.T) {
	s := New("hello world")
	require.NoError(t, s.Truncate(5))
	require.Equal(t, "hello", s.String())
	s.Clear()
	require.True(t, s.IsEmpty())
	require.Equal(t, Inline, s.Variant())
}

func TestReserveAndShrink(t *testing.T) {
	s := New("")
	require.NoError(t, s.Reserve(200))
	require.Equal(t, Heap, s.Variant())
	require.NoError(t, s.PushStr("short"))
	require.NoError(t, s.ShrinkToFit())
	require.Equal(t, Inline, s.Variant())
}

func TestReplaceRangeDrainFacade(t *testing.T) {
	s := New("hello world")
	require.NoError(t, s.ReplaceRange(6, 11, "there"))
	require.Equal(t, "hello there", s.String())

	drained, err := s.Drain(0, 5)
	require.NoError(t, err)
	require.Equal(t, "hello", drained.String())
	require.Equal(t, " there", s.String())
}

func TestRepeatFacade(t *testing.T) {
	s := New("ab")
	r, err := s.Repeat(3)
	require.NoError(t, err)
	require.Equal(t, "ababab", r.String())
}
