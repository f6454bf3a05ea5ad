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

import "fmt"

// Live write-through view over the bimap's keys. Removing a key here
// removes the pair from both directions.
type BiMapKeySet[K comparable, V comparable] struct {
	EnhancedIterator[K]
	m *BiMap[K, V]
}

func (m *BiMap[K, V]) KeySet() *BiMapKeySet[K, V] {
	if m.keySet == nil {
		view := &BiMapKeySet[K, V]{m: m}
		view.base = view
		m.keySet = view
	}
	return m.keySet
}

func (v *BiMapKeySet[K, V]) Contains(key K) bool {
	return v.m.ContainsKey(key)
}

func (v *BiMapKeySet[K, V]) GetSize() int {
	return v.m.GetSize()
}

func (v *BiMapKeySet[K, V]) Add(key K) error {
	return ErrUnsupportedOperation
}

// Removes the key's pair from both directions, returning whether the
// key was present
func (v *BiMapKeySet[K, V]) Remove(key K) bool {
	_, ok := v.m.removeKey(key)
	return ok
}

func (v *BiMapKeySet[K, V]) GetIterator() IteratorBase[K] {
	return v.GetMutableIterator()
}

func (v *BiMapKeySet[K, V]) GetMutableIterator() MutableIteratorBase[K] {
	return &keySetIterator[K, V]{m: v.m, keys: v.m.forward.Keys(), index: -1}
}

type keySetIterator[K comparable, V comparable] struct {
	m       *BiMap[K, V]
	keys    []K
	index   int
	removed bool
}

func (i *keySetIterator[K, V]) MoveNext() bool {
	i.removed = false
	if i.index < len(i.keys)-1 {
		i.index++
		return true
	}
	return false
}

func (i *keySetIterator[K, V]) GetCurrent() K {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return i.keys[i.index]
}

func (i *keySetIterator[K, V]) Remove() {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.m.removeKey(i.keys[i.index])
	i.removed = true
}

// Live view over the bimap's values. Backed by the backward store's
// key domain but iterated in forward-map order, not the backward
// store's own order.
type BiMapValues[K comparable, V comparable] struct {
	EnhancedIterator[V]
	m *BiMap[K, V]
}

func (m *BiMap[K, V]) Values() *BiMapValues[K, V] {
	if m.valuesSet == nil {
		view := &BiMapValues[K, V]{m: m}
		view.base = view
		m.valuesSet = view
	}
	return m.valuesSet
}

func (v *BiMapValues[K, V]) Contains(value V) bool {
	return v.m.ContainsValue(value)
}

func (v *BiMapValues[K, V]) GetSize() int {
	return v.m.GetSize()
}

func (v *BiMapValues[K, V]) Add(value V) error {
	return ErrUnsupportedOperation
}

// Removes the pair owning the value, returning whether the value was
// present
func (v *BiMapValues[K, V]) Remove(value V) bool {
	owner, ok := v.m.backward.Get(value)
	if !ok {
		return false
	}

	v.m.removeKey(owner)
	return true
}

func (v *BiMapValues[K, V]) GetIterator() IteratorBase[V] {
	return v.GetMutableIterator()
}

func (v *BiMapValues[K, V]) GetMutableIterator() MutableIteratorBase[V] {
	return &valuesIterator[K, V]{m: v.m, entries: v.m.forward.Entries(), index: -1}
}

type valuesIterator[K comparable, V comparable] struct {
	m       *BiMap[K, V]
	entries []MapEntry[K, V]
	index   int
	removed bool
}

func (i *valuesIterator[K, V]) MoveNext() bool {
	i.removed = false
	if i.index < len(i.entries)-1 {
		i.index++
		return true
	}
	return false
}

func (i *valuesIterator[K, V]) GetCurrent() V {
	if i.index >= len(i.entries) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return i.entries[i.index].Value
}

func (i *valuesIterator[K, V]) Remove() {
	if i.index >= len(i.entries) || i.index < 0 {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.m.removeKey(i.entries[i.index].Key)
	i.removed = true
}

// A live handle on one key's binding. The value is looked up on
// access, so the handle tracks later mutations of its key.
type BiMapEntry[K comparable, V comparable] struct {
	m   *BiMap[K, V]
	key K
}

func (e *BiMapEntry[K, V]) GetKey() K {
	return e.key
}

func (e *BiMapEntry[K, V]) GetValue() (V, bool) {
	return e.m.forward.Get(e.key)
}

// Rebinds this entry's key, running the same collision check as Put
// and updating both directions. Returns the replaced value.
func (e *BiMapEntry[K, V]) SetValue(value V) (V, error) {
	prev, ok := e.m.forward.Get(e.key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("set %v=%v: key no longer present", e.key, value)
	}

	if _, _, err := e.m.Put(e.key, value); err != nil {
		var zero V
		return zero, err
	}

	return prev, nil
}

// Live write-through view over the bimap's pairs
type BiMapEntrySet[K comparable, V comparable] struct {
	EnhancedIterator[*BiMapEntry[K, V]]
	m *BiMap[K, V]
}

func (m *BiMap[K, V]) EntrySet() *BiMapEntrySet[K, V] {
	if m.entrySet == nil {
		view := &BiMapEntrySet[K, V]{m: m}
		view.base = view
		m.entrySet = view
	}
	return m.entrySet
}

// Reports whether the bimap currently holds exactly this pairing
func (v *BiMapEntrySet[K, V]) Contains(key K, value V) bool {
	current, ok := v.m.forward.Get(key)
	return ok && current == value
}

func (v *BiMapEntrySet[K, V]) GetSize() int {
	return v.m.GetSize()
}

func (v *BiMapEntrySet[K, V]) GetIterator() IteratorBase[*BiMapEntry[K, V]] {
	return v.GetMutableIterator()
}

func (v *BiMapEntrySet[K, V]) GetMutableIterator() MutableIteratorBase[*BiMapEntry[K, V]] {
	return &bimapEntryIterator[K, V]{m: v.m, keys: v.m.forward.Keys(), index: -1}
}

type bimapEntryIterator[K comparable, V comparable] struct {
	m       *BiMap[K, V]
	keys    []K
	index   int
	removed bool
}

func (i *bimapEntryIterator[K, V]) MoveNext() bool {
	i.removed = false
	if i.index < len(i.keys)-1 {
		i.index++
		return true
	}
	return false
}

func (i *bimapEntryIterator[K, V]) GetCurrent() *BiMapEntry[K, V] {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return &BiMapEntry[K, V]{m: i.m, key: i.keys[i.index]}
}

func (i *bimapEntryIterator[K, V]) Remove() {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.m.removeKey(i.keys[i.index])
	i.removed = true
}
