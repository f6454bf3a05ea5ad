package gollections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireBijection[K comparable, V comparable](t *testing.T, m *BiMap[K, V]) {
	t.Helper()

	require.Equal(t, m.GetSize(), m.Inverse().GetSize())
	for _, entry := range m.forward.Entries() {
		key, ok := m.Inverse().Get(entry.Value)
		require.True(t, ok)
		require.Equal(t, entry.Key, key)
	}
}

func TestBiMapPutAndGet(t *testing.T) {
	m := NewBiMap[int, string]()

	_, had, err := m.Put(1, "one")
	require.NoError(t, err)
	require.False(t, had)

	_, had, err = m.Put(2, "two")
	require.NoError(t, err)
	require.False(t, had)

	value, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", value)

	key, ok := m.Inverse().Get("one")
	require.True(t, ok)
	require.Equal(t, 1, key)

	require.Equal(t, 2, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapPutCollisionLeavesMapUnchanged(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	_, _, err := m.Put(3, "one")
	require.ErrorIs(t, err, ErrValueAlreadyPresent)

	require.Equal(t, 2, m.GetSize())
	require.False(t, m.ContainsKey(3))

	value, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", value)
	requireBijection(t, m)
}

func TestBiMapPutSamePairIsNoop(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	prev, had, err := m.Put(1, "one")
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "one", prev)
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapPutReplacesOwnValue(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	prev, had, err := m.Put(1, "uno")
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "one", prev)

	// the stale backward entry is gone
	require.False(t, m.ContainsValue("one"))
	_, ok := m.Inverse().Get("one")
	require.False(t, ok)

	key, ok := m.Inverse().Get("uno")
	require.True(t, ok)
	require.Equal(t, 1, key)
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapForcePutEvicts(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	_, had := m.ForcePut(3, "one")
	require.False(t, had)

	_, ok := m.Get(1)
	require.False(t, ok)

	value, ok := m.Get(3)
	require.True(t, ok)
	require.Equal(t, "one", value)

	require.Equal(t, 2, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapForcePutSamePairIsNoop(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	prev, had := m.ForcePut(1, "one")
	require.True(t, had)
	require.Equal(t, "one", prev)
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapRemove(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	value, ok := m.Remove(1)
	require.True(t, ok)
	require.Equal(t, "one", value)
	require.False(t, m.ContainsValue("one"))
	require.Equal(t, 0, m.GetSize())

	_, ok = m.Remove(1)
	require.False(t, ok)
	requireBijection(t, m)
}

func TestBiMapInverseIdentity(t *testing.T) {
	m := NewBiMap[int, string]()

	require.Same(t, m, m.Inverse().Inverse())

	m.Put(1, "one")
	key, ok := m.Inverse().Get("one")
	require.True(t, ok)
	require.Equal(t, 1, key)

	// mutation through the inverse shows up in the forward direction
	m.Inverse().Put("two", 2)
	value, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, "two", value)
	requireBijection(t, m)
	requireBijection(t, m.Inverse())
}

func TestBiMapContains(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	require.True(t, m.ContainsKey(1))
	require.False(t, m.ContainsKey(2))
	require.True(t, m.ContainsValue("one"))
	require.False(t, m.ContainsValue("two"))

	key, ok := m.GetKey("one")
	require.True(t, ok)
	require.Equal(t, 1, key)
}

func TestBiMapClear(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	m.Clear()
	require.True(t, m.IsEmpty())
	require.True(t, m.Inverse().IsEmpty())
	requireBijection(t, m)
}

func TestBiMapPutAll(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	require.NoError(t, m.PutAll(map[int]string{2: "two", 3: "three"}))
	require.Equal(t, 3, m.GetSize())

	err := m.PutAll(map[int]string{4: "one"})
	require.ErrorIs(t, err, ErrValueAlreadyPresent)
	require.Equal(t, 3, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapKeySetView(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	keys := m.KeySet()
	require.Same(t, keys, m.KeySet())
	require.Equal(t, []int{1, 2}, keys.ToList())
	require.True(t, keys.Contains(1))
	require.ErrorIs(t, keys.Add(3), ErrUnsupportedOperation)

	require.True(t, keys.Remove(2))
	require.False(t, keys.Remove(2))
	require.False(t, m.ContainsValue("two"))
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapKeySetIteratorRemove(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	itr := m.KeySet().GetMutableIterator()
	require.True(t, itr.MoveNext())
	require.Equal(t, 1, itr.GetCurrent())
	itr.Remove()

	require.False(t, m.ContainsKey(1))
	require.False(t, m.ContainsValue("one"))
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapValuesFollowForwardOrder(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	// rebinding key 1 re-inserts its value in the backward store, so
	// the two stores now disagree on order; the view follows forward
	m.Put(1, "uno")
	require.Equal(t, []string{"uno", "two"}, m.Values().ToList())

	values := m.Values()
	require.Same(t, values, m.Values())
	require.True(t, values.Contains("uno"))
	require.False(t, values.Contains("one"))
	require.ErrorIs(t, values.Add("three"), ErrUnsupportedOperation)

	require.True(t, values.Remove("uno"))
	require.False(t, values.Remove("uno"))
	require.False(t, m.ContainsKey(1))
	requireBijection(t, m)
}

func TestBiMapValuesIteratorRemove(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	itr := m.Values().GetMutableIterator()
	require.True(t, itr.MoveNext())
	require.Equal(t, "one", itr.GetCurrent())
	itr.Remove()

	require.False(t, m.ContainsKey(1))
	require.Equal(t, 1, m.GetSize())
	requireBijection(t, m)
}

func TestBiMapEntrySetView(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	entries := m.EntrySet()
	require.Same(t, entries, m.EntrySet())
	require.Equal(t, 2, entries.GetSize())
	require.True(t, entries.Contains(1, "one"))
	require.False(t, entries.Contains(1, "two"))

	itr := entries.GetMutableIterator()
	require.True(t, itr.MoveNext())
	entry := itr.GetCurrent()
	require.Equal(t, 1, entry.GetKey())

	value, ok := entry.GetValue()
	require.True(t, ok)
	require.Equal(t, "one", value)

	itr.Remove()
	require.False(t, m.ContainsKey(1))
	requireBijection(t, m)
}

func TestBiMapEntrySetValue(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	itr := m.EntrySet().GetIterator()
	require.True(t, itr.MoveNext())
	entry := itr.GetCurrent()

	// rebinding to a claimed value runs the usual collision check
	_, err := entry.SetValue("two")
	require.ErrorIs(t, err, ErrValueAlreadyPresent)

	value, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", value)
	requireBijection(t, m)

	prev, err := entry.SetValue("uno")
	require.NoError(t, err)
	require.Equal(t, "one", prev)

	value, ok = m.Get(1)
	require.True(t, ok)
	require.Equal(t, "uno", value)
	require.False(t, m.ContainsValue("one"))
	requireBijection(t, m)
}

func TestBiMapEntrySetValueAfterRemoval(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	itr := m.EntrySet().GetIterator()
	require.True(t, itr.MoveNext())
	entry := itr.GetCurrent()

	m.Remove(1)

	_, ok := entry.GetValue()
	require.False(t, ok)

	_, err := entry.SetValue("uno")
	require.Error(t, err)
	require.Equal(t, 0, m.GetSize())
}

func TestBiMapScenarioChain(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	key, ok := m.Inverse().Get("one")
	require.True(t, ok)
	require.Equal(t, 1, key)

	_, _, err := m.Put(3, "one")
	require.ErrorIs(t, err, ErrValueAlreadyPresent)
	require.Equal(t, 2, m.GetSize())

	m.ForcePut(3, "one")
	_, ok = m.Get(1)
	require.False(t, ok)

	value, ok := m.Get(3)
	require.True(t, ok)
	require.Equal(t, "one", value)
	require.Equal(t, 2, m.GetSize())

	require.True(t, m.KeySet().Remove(2))
	require.False(t, m.ContainsValue("two"))
	requireBijection(t, m)
}

func TestBiMapClone(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")

	clone := m.Clone()
	clone.Put(2, "two")

	require.Equal(t, 1, m.GetSize())
	require.Equal(t, 2, clone.GetSize())
	require.False(t, m.ContainsKey(2))
	requireBijection(t, m)
	requireBijection(t, clone)
}

func TestTreeBiMapIterationOrder(t *testing.T) {
	m := NewTreeBiMap(OrderedComparator[int](), OrderedComparator[string]())
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	require.Equal(t, []int{1, 2, 3}, m.KeySet().ToList())
	require.Equal(t, []string{"a", "b", "c"}, m.Inverse().KeySet().ToList())
	requireBijection(t, m)
}

func TestBiMapWithStoresRejectsNonEmpty(t *testing.T) {
	seeded := NewLinkedMapStore[int, string]()
	seeded.Put(1, "one")

	require.Panics(t, func() {
		NewBiMapWithStores(seeded, NewLinkedMapStore[string, int]())
	})
}

func TestBiMapString(t *testing.T) {
	m := NewBiMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	require.Equal(t, "{1=one, 2=two}", m.String())
}
