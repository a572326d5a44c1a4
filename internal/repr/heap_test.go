package repr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHeapAndRelease(t *testing.T) {
	s := []byte("0123456789012345678901234")
	r, err := newHeap(s, uint64(len(s)))
	require.NoError(t, err)
	require.Equal(t, KindHeap, r.Kind())
	require.Equal(t, s, heapBytes(&r))
	require.GreaterOrEqual(t, heapCap(&r), uint64(len(s)))
	releaseHeap(&r)
}

func TestNewHeapPartsConcatenates(t *testing.T) {
	r, err := newHeapParts(64, []byte("hello "), []byte("world"))
	require.NoError(t, err)
	defer releaseHeap(&r)
	require.Equal(t, "hello world", string(heapBytes(&r)))
	require.Equal(t, uint64(64), heapCap(&r))
}

func TestGrowHeapFollows150PercentPolicy(t *testing.T) {
	r, err := newHeap([]byte("0123456789012345678901234"), 26)
	require.NoError(t, err)
	defer releaseHeap(&r)

	err = growHeap(&r, 27)
	require.NoError(t, err)
	// new cap = max(need, cap*3/2) = max(27, 39) = 39
	require.Equal(t, uint64(39), heapCap(&r))
}

func TestGrowHeapNoopWhenAlreadyLargeEnough(t *testing.T) {
	r, err := newHeap([]byte("0123456789012345678901234"), 100)
	require.NoError(t, err)
	defer releaseHeap(&r)

	err = growHeap(&r, 50)
	require.NoError(t, err)
	require.Equal(t, uint64(100), heapCap(&r))
}

func TestShrinkHeapNeverBelowLength(t *testing.T) {
	s := []byte("0123456789012345678901234")
	r, err := newHeap(s, 100)
	require.NoError(t, err)
	defer releaseHeap(&r)

	err = shrinkHeap(&r, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(len(s)), heapCap(&r))
	require.Equal(t, s, heapBytes(&r))
}

func TestReallocHeapPreservesContent(t *testing.T) {
	s := []byte("0123456789012345678901234")
	r, err := newHeap(s, 30)
	require.NoError(t, err)
	defer releaseHeap(&r)

	require.NoError(t, reallocHeap(&r, 1000))
	require.Equal(t, s, heapBytes(&r))
	require.Equal(t, uint64(1000), heapCap(&r))
}
