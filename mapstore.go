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
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// A single key-value pair held by a MapStore
type MapEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// MapStore is the associative container the collection types are built
// over. Keys are unique. Iteration order is implementation defined but
// stable between mutations: the linked store iterates in insertion
// order, the tree store in comparator order, the hash store in no
// particular order.
type MapStore[K comparable, V any] interface {
	Put(key K, value V)

	Get(key K) (V, bool)

	// Removes the key, returning the value it held
	Delete(key K) (V, bool)

	Has(key K) bool

	Keys() []K

	// All pairs, in iteration order
	Entries() []MapEntry[K, V]

	GetSize() int

	Clear()

	GetIterator() IteratorBase[MapEntry[K, V]]

	// Returns a fresh independent store of the same kind holding the
	// same pairs
	Duplicate() MapStore[K, V]
}

// Insertion-ordered store. This is the default backing store.
func NewLinkedMapStore[K comparable, V any]() MapStore[K, V] {
	fresh := func() maps.Map { return linkedhashmap.New() }
	return &godsMapStore[K, V]{m: fresh(), fresh: fresh}
}

// Hash store with no iteration order guarantees
func NewHashMapStore[K comparable, V any]() MapStore[K, V] {
	fresh := func() maps.Map { return hashmap.New() }
	return &godsMapStore[K, V]{m: fresh(), fresh: fresh}
}

// Store iterating in the order given by the comparator
func NewTreeMapStore[K comparable, V any](comparator Comparator[K]) MapStore[K, V] {
	fresh := func() maps.Map {
		return treemap.NewWith(func(a, b interface{}) int {
			return comparator(a.(K), b.(K))
		})
	}
	return &godsMapStore[K, V]{m: fresh(), fresh: fresh}
}

// Adapter from a gods map to the typed MapStore interface
type godsMapStore[K comparable, V any] struct {
	m     maps.Map
	fresh func() maps.Map
}

func (s *godsMapStore[K, V]) Put(key K, value V) {
	s.m.Put(key, value)
}

func (s *godsMapStore[K, V]) Get(key K) (V, bool) {
	raw, ok := s.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

func (s *godsMapStore[K, V]) Delete(key K) (V, bool) {
	raw, ok := s.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	s.m.Remove(key)
	return raw.(V), true
}

func (s *godsMapStore[K, V]) Has(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

func (s *godsMapStore[K, V]) Keys() []K {
	raw := s.m.Keys()
	keys := make([]K, len(raw))
	for i, k := range raw {
		keys[i] = k.(K)
	}
	return keys
}

func (s *godsMapStore[K, V]) Entries() []MapEntry[K, V] {
	raw := s.m.Keys()
	entries := make([]MapEntry[K, V], len(raw))
	for i, k := range raw {
		value, _ := s.m.Get(k)
		entries[i] = MapEntry[K, V]{Key: k.(K), Value: value.(V)}
	}
	return entries
}

func (s *godsMapStore[K, V]) GetSize() int {
	return s.m.Size()
}

func (s *godsMapStore[K, V]) Clear() {
	s.m.Clear()
}

func (s *godsMapStore[K, V]) GetIterator() IteratorBase[MapEntry[K, V]] {
	return newSliceIterator(s.Entries())
}

func (s *godsMapStore[K, V]) Duplicate() MapStore[K, V] {
	dup := &godsMapStore[K, V]{m: s.fresh(), fresh: s.fresh}
	for _, k := range s.m.Keys() {
		value, _ := s.m.Get(k)
		dup.m.Put(k, value)
	}
	return dup
}
