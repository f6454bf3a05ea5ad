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

// Write-through view over a multiset's distinct elements. Removing an
// element here removes every occurrence from the multiset; additions
// are not permitted through this view.
type ElementSetView[E comparable] struct {
	EnhancedIterator[E]
	set *Multiset[E]
}

func (v *ElementSetView[E]) Contains(element E) bool {
	return v.set.Contains(element)
}

// Number of distinct elements
func (v *ElementSetView[E]) GetSize() int {
	return v.set.DistinctCount()
}

func (v *ElementSetView[E]) Add(element E) error {
	return ErrUnsupportedOperation
}

// Removes all occurrences of the element, returning the prior count
func (v *ElementSetView[E]) Remove(element E) int {
	return v.set.RemoveAll(element)
}

func (v *ElementSetView[E]) GetIterator() IteratorBase[E] {
	return v.GetMutableIterator()
}

func (v *ElementSetView[E]) GetMutableIterator() MutableIteratorBase[E] {
	return &elementSetIterator[E]{set: v.set, keys: v.set.store.Keys(), index: -1}
}

type elementSetIterator[E comparable] struct {
	set     *Multiset[E]
	keys    []E
	index   int
	removed bool
}

func (i *elementSetIterator[E]) MoveNext() bool {
	i.removed = false
	if i.index < len(i.keys)-1 {
		i.index++
		return true
	}
	return false
}

func (i *elementSetIterator[E]) GetCurrent() E {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return i.keys[i.index]
}

// Removes every occurrence of the current element
func (i *elementSetIterator[E]) Remove() {
	if i.index >= len(i.keys) || i.index < 0 {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.set.RemoveAll(i.keys[i.index])
	i.removed = true
}

// One entry per distinct element of a multiset
type MultisetEntry[E comparable] struct {
	Element E
	Count   int
}

// Write-through view over a multiset's (element, count) pairs, one per
// distinct element. Removing an entry removes every occurrence of its
// element.
type EntrySetView[E comparable] struct {
	EnhancedIterator[MultisetEntry[E]]
	set *Multiset[E]
}

// Reports whether the multiset currently holds exactly this pairing
func (v *EntrySetView[E]) Contains(entry MultisetEntry[E]) bool {
	return entry.Count > 0 && v.set.Count(entry.Element) == entry.Count
}

// Number of distinct elements
func (v *EntrySetView[E]) GetSize() int {
	return v.set.DistinctCount()
}

func (v *EntrySetView[E]) Add(entry MultisetEntry[E]) error {
	return ErrUnsupportedOperation
}

// Removes the entry when the multiset holds exactly this pairing,
// returning whether anything was removed
func (v *EntrySetView[E]) Remove(entry MultisetEntry[E]) bool {
	if !v.Contains(entry) {
		return false
	}

	v.set.RemoveAll(entry.Element)
	return true
}

func (v *EntrySetView[E]) GetIterator() IteratorBase[MultisetEntry[E]] {
	return v.GetMutableIterator()
}

func (v *EntrySetView[E]) GetMutableIterator() MutableIteratorBase[MultisetEntry[E]] {
	return &entrySetIterator[E]{set: v.set, entries: v.set.store.Entries(), index: -1}
}

type entrySetIterator[E comparable] struct {
	set     *Multiset[E]
	entries []MapEntry[E, int]
	index   int
	removed bool
}

func (i *entrySetIterator[E]) MoveNext() bool {
	i.removed = false
	if i.index < len(i.entries)-1 {
		i.index++
		return true
	}
	return false
}

func (i *entrySetIterator[E]) GetCurrent() MultisetEntry[E] {
	if i.index >= len(i.entries) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	entry := i.entries[i.index]
	return MultisetEntry[E]{Element: entry.Key, Count: entry.Value}
}

// Removes every occurrence of the current element
func (i *entrySetIterator[E]) Remove() {
	if i.index >= len(i.entries) || i.index < 0 {
		panic("Iterator: Remove() called before MoveNext() or after the end")
	}

	if i.removed {
		panic("Iterator: Remove() called twice for the same element")
	}

	i.set.RemoveAll(i.entries[i.index].Key)
	i.removed = true
}
