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
	"math"
	"strings"
)

// A collection that may hold an element more than once, keeping a
// frequency per distinct element. An element is contained while its
// frequency is above zero; entries are dropped from the backing store
// the moment their frequency reaches zero.
type Multiset[E comparable] struct {
	EnhancedIterator[E]
	store MapStore[E, int]
	size  int

	elementSet *ElementSetView[E]
	entrySet   *EntrySetView[E]
}

// Creates a multiset over an insertion-ordered store
func NewMultiset[E comparable]() *Multiset[E] {
	return NewMultisetWithStore(NewLinkedMapStore[E, int]())
}

// Creates a multiset whose elements iterate in comparator order
func NewTreeMultiset[E comparable](comparator Comparator[E]) *Multiset[E] {
	return NewMultisetWithStore(NewTreeMapStore[E, int](comparator))
}

// Creates a multiset over the given backing store. The store must be
// empty or hold only positive frequencies.
func NewMultisetWithStore[E comparable](store MapStore[E, int]) *Multiset[E] {
	size := 0
	for _, entry := range store.Entries() {
		size += entry.Value
	}

	set := &Multiset[E]{store: store, size: size}
	set.base = set
	return set
}

// Number of occurrences of the element, 0 when absent
func (v *Multiset[E]) Count(element E) int {
	count, _ := v.store.Get(element)
	return count
}

func (v *Multiset[E]) Contains(element E) bool {
	return v.store.Has(element)
}

// Adds a single occurrence of the element
func (v *Multiset[E]) Add(element E) error {
	_, err := v.AddCount(element, 1)
	return err
}

// Adds the given number of occurrences. Returns whether the multiset
// changed; adding zero occurrences is a no-op.
func (v *Multiset[E]) AddCount(element E, occurrences int) (bool, error) {
	if occurrences < 0 {
		return false, fmt.Errorf("add %d occurrences: %w", occurrences, ErrNegativeOccurrences)
	}

	if occurrences == 0 {
		return false, nil
	}

	current, _ := v.store.Get(element)
	if current > math.MaxInt-occurrences {
		return false, fmt.Errorf("count of %v: %w", element, ErrCountOverflow)
	}

	v.store.Put(element, current+occurrences)
	v.size += occurrences
	return true, nil
}

// Removes up to the given number of occurrences, returning how many
// were actually removed. The element's entry is dropped entirely once
// its frequency reaches zero.
func (v *Multiset[E]) Remove(element E, occurrences int) (int, error) {
	if occurrences < 0 {
		return 0, fmt.Errorf("remove %d occurrences: %w", occurrences, ErrNegativeOccurrences)
	}

	current, ok := v.store.Get(element)
	if !ok || occurrences == 0 {
		return 0, nil
	}

	if occurrences >= current {
		v.store.Delete(element)
		v.size -= current
		return current, nil
	}

	v.store.Put(element, current-occurrences)
	v.size -= occurrences
	return occurrences, nil
}

// Removes every occurrence of the element, returning the prior count
func (v *Multiset[E]) RemoveAll(element E) int {
	current, ok := v.store.Delete(element)
	if !ok {
		return 0
	}

	v.size -= current
	return current
}

// Total number of occurrences across all elements. O(1)
func (v *Multiset[E]) GetSize() int {
	return v.size
}

// Number of distinct elements
func (v *Multiset[E]) DistinctCount() int {
	return v.store.GetSize()
}

func (v *Multiset[E]) IsEmpty() bool {
	return v.size == 0
}

// Two multisets are equal when every element occurs the same number of
// times in both, regardless of backing store or insertion order.
func (v *Multiset[E]) Equals(other *Multiset[E]) bool {
	if other == nil || v.size != other.size {
		return false
	}

	for _, entry := range v.store.Entries() {
		if other.Count(entry.Key) != entry.Value {
			return false
		}
	}

	return true
}

// View over the distinct elements
func (v *Multiset[E]) ElementSet() *ElementSetView[E] {
	if v.elementSet == nil {
		view := &ElementSetView[E]{set: v}
		view.base = view
		v.elementSet = view
	}
	return v.elementSet
}

// View over the (element, count) pairs
func (v *Multiset[E]) EntrySet() *EntrySetView[E] {
	if v.entrySet == nil {
		view := &EntrySetView[E]{set: v}
		view.base = view
		v.entrySet = view
	}
	return v.entrySet
}

// Copies the multiset, duplicating the backing store
func (v *Multiset[E]) Clone() *Multiset[E] {
	clone := &Multiset[E]{store: v.store.Duplicate(), size: v.size}
	clone.base = clone
	return clone
}

func (v *Multiset[E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, entry := range v.store.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}

		if entry.Value == 1 {
			fmt.Fprintf(&b, "%v", entry.Key)
		} else {
			fmt.Fprintf(&b, "%v x %d", entry.Key, entry.Value)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Iterates every occurrence: each element is yielded count times,
// grouped in backing-store order
func (v *Multiset[E]) GetIterator() IteratorBase[E] {
	return v.GetMutableIterator()
}

// Same as GetIterator, with Remove() dropping exactly one occurrence
// of the last yielded element
func (v *Multiset[E]) GetMutableIterator() MutableIteratorBase[E] {
	return &MultisetIterator[E]{
		set:     v,
		entries: v.store.Entries(),
		index:   0,
		offset:  -1,
	}
}

// Flattened iterator over a multiset. The occurrence counts are fixed
// at creation; mutating the multiset through anything other than this
// iterator's own Remove() mid-iteration is undefined.
type MultisetIterator[E comparable] struct {
	set     *Multiset[E]
	entries []MapEntry[E, int]
	index   int
	offset  int
	removed bool
}

func (i *MultisetIterator[E]) MoveNext() bool {
	i.removed = false
	i.offset++
	for i.index < len(i.entries) && i.offset >= i.entries[i.index].Value {
		i.index++
		i.offset = 0
	}
	return i.index < len(i.entries)
}

func (i *MultisetIterator[E]) GetCurrent() E {
	if i.offset < 0 || i.index >= len(i.entries) {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return i.entries[i.index].Key
}

func (i *MultisetIterator[E]) Remove() {
	if i.offset < 0 || i.index >= len(i.entries) {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.set.Remove(i.entries[i.index].Key, 1)
	i.removed = true
}
