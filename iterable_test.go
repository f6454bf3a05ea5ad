package gollections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceIterator(t *testing.T) {
	itr := newSliceIterator([]int{1, 2, 3})

	require.Panics(t, func() { itr.GetCurrent() })

	got := make([]int, 0)
	for itr.MoveNext() {
		got = append(got, itr.GetCurrent())
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.False(t, itr.MoveNext())
}

func TestEnhancedIteratorWhere(t *testing.T) {
	set := NewMultiset[int]()
	for i := 1; i <= 6; i++ {
		require.NoError(t, set.Add(i))
	}

	odd := set.Where(func(a int) bool { return a%2 == 1 })
	require.Equal(t, []int{1, 3, 5}, odd.ToList())
	require.Equal(t, 3, odd.Count())

	// the iterable re-runs against the live collection
	set.RemoveAll(3)
	require.Equal(t, []int{1, 5}, odd.ToList())
}

func TestFilterIteratorPanicsBeforeMoveNext(t *testing.T) {
	set := NewMultiset[int]()
	set.Add(2)

	odd := set.Where(func(a int) bool { return a%2 == 1 })
	itr := odd.GetIterator()
	require.Panics(t, func() { itr.GetCurrent() })
	require.False(t, itr.MoveNext())
}
