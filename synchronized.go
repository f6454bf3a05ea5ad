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

import "sync"

// Mutual-exclusion decorator for sharing one multiset between
// goroutines. The wrapped multiset itself does no locking; iteration
// and view access go through Do so the lock spans the whole walk.
type SynchronizedMultiset[E comparable] struct {
	set *Multiset[E]
	mu  sync.RWMutex
}

func NewSynchronizedMultiset[E comparable](set *Multiset[E]) *SynchronizedMultiset[E] {
	return &SynchronizedMultiset[E]{set: set}
}

func (v *SynchronizedMultiset[E]) Count(element E) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.Count(element)
}

func (v *SynchronizedMultiset[E]) Contains(element E) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.Contains(element)
}

func (v *SynchronizedMultiset[E]) GetSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.GetSize()
}

func (v *SynchronizedMultiset[E]) DistinctCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.DistinctCount()
}

func (v *SynchronizedMultiset[E]) Add(element E) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.set.Add(element)
}

func (v *SynchronizedMultiset[E]) AddCount(element E, occurrences int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.set.AddCount(element, occurrences)
}

func (v *SynchronizedMultiset[E]) Remove(element E, occurrences int) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.set.Remove(element, occurrences)
}

func (v *SynchronizedMultiset[E]) RemoveAll(element E) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.set.RemoveAll(element)
}

func (v *SynchronizedMultiset[E]) String() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.String()
}

// Runs fn with the write lock held, exposing the bare multiset for
// iteration and view work
func (v *SynchronizedMultiset[E]) Do(fn func(set *Multiset[E])) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.set)
}

// Mutual-exclusion decorator for sharing one bimap between
// goroutines. The inverse handle is deliberately not exposed: it
// would bypass the lock. Use Do and Inverse() inside the callback.
type SynchronizedBiMap[K comparable, V comparable] struct {
	m  *BiMap[K, V]
	mu sync.RWMutex
}

func NewSynchronizedBiMap[K comparable, V comparable](m *BiMap[K, V]) *SynchronizedBiMap[K, V] {
	return &SynchronizedBiMap[K, V]{m: m}
}

func (v *SynchronizedBiMap[K, V]) Get(key K) (V, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.Get(key)
}

func (v *SynchronizedBiMap[K, V]) GetKey(value V) (K, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.GetKey(value)
}

func (v *SynchronizedBiMap[K, V]) ContainsKey(key K) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.ContainsKey(key)
}

func (v *SynchronizedBiMap[K, V]) ContainsValue(value V) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.ContainsValue(value)
}

func (v *SynchronizedBiMap[K, V]) GetSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.GetSize()
}

func (v *SynchronizedBiMap[K, V]) Put(key K, value V) (V, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m.Put(key, value)
}

func (v *SynchronizedBiMap[K, V]) ForcePut(key K, value V) (V, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m.ForcePut(key, value)
}

func (v *SynchronizedBiMap[K, V]) Remove(key K) (V, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m.Remove(key)
}

func (v *SynchronizedBiMap[K, V]) PutAll(entries map[K]V) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.m.PutAll(entries)
}

func (v *SynchronizedBiMap[K, V]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m.Clear()
}

func (v *SynchronizedBiMap[K, V]) String() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m.String()
}

// Runs fn with the write lock held, exposing the bare bimap for
// iteration and view work
func (v *SynchronizedBiMap[K, V]) Do(fn func(m *BiMap[K, V])) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.m)
}
