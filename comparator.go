package gollections

import "golang.org/x/exp/constraints"

type Comparator[V any] func(a V, b V) int

// Comparator for any naturally ordered type
func OrderedComparator[V constraints.Ordered]() Comparator[V] {
	return func(a V, b V) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}
