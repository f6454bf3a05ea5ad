/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */

package gollections

import (
	"fmt"
	"strings"
)

// A map that keeps a one-to-one correspondence between keys and
// values: no key maps to two values and no value is claimed by two
// keys. The inverse direction is available in O(1) through Inverse()
// and shares the same two backing stores.
type BiMap[K comparable, V comparable] struct {
	forward  MapStore[K, V]
	backward MapStore[V, K]
	inv      *BiMap[V, K]

	keySet    *BiMapKeySet[K, V]
	valuesSet *BiMapValues[K, V]
	entrySet  *BiMapEntrySet[K, V]
}

// Creates a bimap over insertion-ordered stores
func NewBiMap[K comparable, V comparable]() *BiMap[K, V] {
	return newBiMapPair(NewLinkedMapStore[K, V](), NewLinkedMapStore[V, K]())
}

// Creates a bimap whose keys iterate in key-comparator order and whose
// inverse iterates in value-comparator order
func NewTreeBiMap[K comparable, V comparable](keyComparator Comparator[K], valueComparator Comparator[V]) *BiMap[K, V] {
	return newBiMapPair(NewTreeMapStore[K, V](keyComparator), NewTreeMapStore[V, K](valueComparator))
}

// Creates a bimap over the given empty backing stores
func NewBiMapWithStores[K comparable, V comparable](forward MapStore[K, V], backward MapStore[V, K]) *BiMap[K, V] {
	if forward.GetSize() != 0 || backward.GetSize() != 0 {
		panic("BiMap: backing stores must be empty")
	}
	return newBiMapPair(forward, backward)
}

// Builds the forward/backward pair. The two handles cross-reference
// each other so double inversion yields back the same instance.
func newBiMapPair[K comparable, V comparable](forward MapStore[K, V], backward MapStore[V, K]) *BiMap[K, V] {
	m := &BiMap[K, V]{forward: forward, backward: backward}
	m.inv = &BiMap[V, K]{forward: backward, backward: forward, inv: m}
	return m
}

// The same bimap with key and value roles swapped. Mutations through
// either handle are visible through both.
func (m *BiMap[K, V]) Inverse() *BiMap[V, K] {
	return m.inv
}

func (m *BiMap[K, V]) Get(key K) (V, bool) {
	return m.forward.Get(key)
}

// Key currently bound to the value, if any
func (m *BiMap[K, V]) GetKey(value V) (K, bool) {
	return m.backward.Get(value)
}

func (m *BiMap[K, V]) ContainsKey(key K) bool {
	return m.forward.Has(key)
}

func (m *BiMap[K, V]) ContainsValue(value V) bool {
	return m.backward.Has(value)
}

func (m *BiMap[K, V]) GetSize() int {
	return m.forward.GetSize()
}

func (m *BiMap[K, V]) IsEmpty() bool {
	return m.forward.GetSize() == 0
}

// Binds key to value in both directions. Fails with
// ErrValueAlreadyPresent, touching nothing, when the value is already
// bound to a different key; re-putting an existing pair is a no-op.
// Returns the value previously bound to the key.
func (m *BiMap[K, V]) Put(key K, value V) (V, bool, error) {
	if owner, ok := m.backward.Get(value); ok {
		if owner == key {
			return value, true, nil
		}

		var zero V
		return zero, false, fmt.Errorf("put %v=%v: %w", key, value, ErrValueAlreadyPresent)
	}

	prev, had := m.put(key, value)
	return prev, had, nil
}

// Like Put, but an existing binding of the value to another key is
// evicted wholesale instead of failing
func (m *BiMap[K, V]) ForcePut(key K, value V) (V, bool) {
	if owner, ok := m.backward.Get(value); ok {
		if owner == key {
			return value, true
		}

		m.forward.Delete(owner)
		m.backward.Delete(value)
	}

	return m.put(key, value)
}

// Installs the pair; the value must not be claimed elsewhere. Every
// mutation path funnels through here and removeKey so both stores
// always agree when control returns to the caller.
func (m *BiMap[K, V]) put(key K, value V) (V, bool) {
	prev, had := m.forward.Get(key)
	if had {
		m.backward.Delete(prev)
	}

	m.forward.Put(key, value)
	m.backward.Put(value, key)
	return prev, had
}

// Removes the key's binding from both directions. Removing an absent
// key is a no-op.
func (m *BiMap[K, V]) Remove(key K) (V, bool) {
	return m.removeKey(key)
}

func (m *BiMap[K, V]) removeKey(key K) (V, bool) {
	value, ok := m.forward.Delete(key)
	if !ok {
		var zero V
		return zero, false
	}

	m.backward.Delete(value)
	return value, true
}

// Puts every pair of the map, in its iteration order, stopping at the
// first value collision. Pairs applied before the failure stay.
func (m *BiMap[K, V]) PutAll(entries map[K]V) error {
	for key, value := range entries {
		if _, _, err := m.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Empties both directions
func (m *BiMap[K, V]) Clear() {
	m.forward.Clear()
	m.backward.Clear()
}

// Copies the bimap, duplicating both backing stores. Views are not
// carried over; the copy builds its own on demand.
func (m *BiMap[K, V]) Clone() *BiMap[K, V] {
	return newBiMapPair(m.forward.Duplicate(), m.backward.Duplicate())
}

func (m *BiMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range m.forward.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", entry.Key, entry.Value)
	}
	b.WriteByte('}')
	return b.String()
}
