package repr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromBytesPicksVariantByLength(t *testing.T) {
	r, err := NewFromBytes([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, KindInline, r.Kind())

	long := []byte("0123456789012345678901234")
	r2, err := NewFromBytes(long)
	require.NoError(t, err)
	require.Equal(t, KindHeap, r2.Kind())
	require.GreaterOrEqual(t, r2.Capacity(), uint64(len(long)))
	r2.Release()
}

func TestPushStrStaysInlineThenPromotes(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("hello"))
	require.Equal(t, KindInline, r.Kind())
	require.Equal(t, "hello", string(r.Bytes()))

	require.NoError(t, r.PushStr("0123456789012345678901234"))
	require.Equal(t, KindHeap, r.Kind())
	require.Equal(t, "hello0123456789012345678901234", string(r.Bytes()))
	r.Release()
}

func TestPushRune(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.Push('£'))
	require.Equal(t, []byte{0xC2, 0xA3}, r.Bytes())
	require.Equal(t, KindInline, r.Kind())
}

func TestPopReturnsLastRuneAndShrinks(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("ab£"))
	ch, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, '£', ch)
	require.Equal(t, "ab", string(r.Bytes()))

	_, ok = r.Pop()
	require.True(t, ok)
	_, ok = r.Pop()
	require.True(t, ok)
	_, ok = r.Pop()
	require.False(t, ok)
}

func TestPopDemotesHeapToInline(t *testing.T) {
	r, err := NewFromBytes([]byte("0123456789012345678901234"))
	require.NoError(t, err)
	for r.Len() > MaxInline {
		_, ok := r.Pop()
		require.True(t, ok)
	}
	require.NoError(t, r.ShrinkToFit())
	require.Equal(t, KindInline, r.Kind())
}

func TestPopOnLongStaticPromotesToHeapWithoutTruncation(t *testing.T) {
	long := "a borrowed literal longer than the inline cell footprint"
	r := NewStatic(long)
	require.Equal(t, KindStatic, r.Kind())

	ch, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, 't', ch)
	require.Equal(t, KindHeap, r.Kind())
	require.Equal(t, long[:len(long)-1], string(r.Bytes()))
	r.Release()
}

func TestPopOnStaticDemotesToInlineWhenResultFits(t *testing.T) {
	// One byte longer than MaxInline so NewStatic itself produces a
	// Static cell, but popping one rune brings the result back inline.
	long := make([]byte, MaxInline+1)
	for i := range long {
		long[i] = byte('a' + i%26)
	}
	r := NewStatic(string(long))
	require.Equal(t, KindStatic, r.Kind())

	ch, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, rune(long[len(long)-1]), ch)
	require.Equal(t, KindInline, r.Kind())
	require.Equal(t, string(long[:len(long)-1]), string(r.Bytes()))
}

func TestInsertStrAtBoundary(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("helloworld"))
	require.NoError(t, r.InsertStr(5, " "))
	require.Equal(t, "hello world", string(r.Bytes()))
}

func TestInsertStrRejectsNonBoundary(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("£"))
	err := r.InsertStr(1, "x")
	require.Error(t, err)
	var be *BoundaryError
	require.ErrorAs(t, err, &be)
}

func TestRemoveRune(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("hello"))
	ch, err := r.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 'e', ch)
	require.Equal(t, "hllo", string(r.Bytes()))
}

func TestTruncateNeverReallocates(t *testing.T) {
	r, err := NewFromBytes([]byte("0123456789012345678901234"))
	require.NoError(t, err)
	defer r.Release()
	capBefore := r.Capacity()
	require.NoError(t, r.Truncate(5))
	require.Equal(t, "01234", string(r.Bytes()))
	require.Equal(t, KindHeap, r.Kind())
	require.Equal(t, capBefore, r.Capacity())
}

func TestClearReleasesAndResetsToInlineEmpty(t *testing.T) {
	r, err := NewFromBytes([]byte("0123456789012345678901234"))
	require.NoError(t, err)
	r.Clear()
	require.Equal(t, KindInline, r.Kind())
	require.Equal(t, 0, r.Len())
}

func TestReservePromotesInlineToHeap(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.Reserve(100))
	require.Equal(t, KindHeap, r.Kind())
	require.GreaterOrEqual(t, r.Capacity(), uint64(100))
	r.Release()
}

func TestShrinkToFitDemotesToInline(t *testing.T) {
	r, err := NewFromBytes([]byte("0123456789012345678901234"))
	require.NoError(t, err)
	require.NoError(t, r.Truncate(3))
	require.NoError(t, r.ShrinkToFit())
	require.Equal(t, KindInline, r.Kind())
	require.Equal(t, "012", string(r.Bytes()))
}

func TestReplaceRangeInterior(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("hello world"))
	require.NoError(t, r.ReplaceRange(6, 11, "there"))
	require.Equal(t, "hello there", string(r.Bytes()))
}

func TestDrainRemovesAndReturnsSlice(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("hello world"))
	drained, err := r.Drain(5, 11)
	require.NoError(t, err)
	require.Equal(t, " world", string(drained.Bytes()))
	require.Equal(t, "hello", string(r.Bytes()))
}

func TestSplitOffSplitsAtBoundary(t *testing.T) {
	r := NewEmpty()
	require.NoError(t, r.PushStr("helloworld"))
	tail, err := r.SplitOff(5)
	require.NoError(t, err)
	require.Equal(t, "hello", string(r.Bytes()))
	require.Equal(t, "world", string(tail.Bytes()))
}

func TestSplitOffThenReconcatenationReconstructsOriginal(t *testing.T) {
	original := "0123456789012345678901234hello"
	r, err := NewFromBytes([]byte(original))
	require.NoError(t, err)
	defer r.Release()

	tail, err := r.SplitOff(26)
	require.NoError(t, err)
	reconstructed := string(r.Bytes()) + string(tail.Bytes())
	require.Equal(t, original, reconstructed)
}

func TestRepeatPicksVariantByTotalLength(t *testing.T) {
	small, err := Repeat([]byte("ab"), 3)
	require.NoError(t, err)
	require.Equal(t, KindInline, small.Kind())
	require.Equal(t, "ababab", string(small.Bytes()))

	large, err := Repeat([]byte("ab"), 20)
	require.NoError(t, err)
	require.Equal(t, KindHeap, large.Kind())
	require.Equal(t, 40, large.Len())
	large.Release()
}

func TestRepeatZero(t *testing.T) {
	r, err := Repeat([]byte("ab"), 0)
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	r, err := NewFromBytes([]byte("0123456789012345678901234"))
	require.NoError(t, err)
	defer r.Release()

	clone, err := r.Clone()
	require.NoError(t, err)
	defer clone.Release()

	require.Equal(t, r.Bytes(), clone.Bytes())
	require.NoError(t, clone.PushStr("x"))
	require.NotEqual(t, string(r.Bytes()), string(clone.Bytes()))
}

func TestBoundaryLengthsRoundTrip(t *testing.T) {
	lengths := []int{0, 1, MaxInline - 1, MaxInline, MaxInline + 1}
	for _, n := range lengths {
		s := make([]byte, n)
		for i := range s {
			s[i] = byte('a' + i%26)
		}
		r, err := NewFromBytes(s)
		require.NoError(t, err)
		require.Equal(t, s, r.Bytes())
		r.Release()
	}
}
