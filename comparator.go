package depq

import "cmp"

// Comparator orders priorities. It returns a negative number if a ranks
// before b, zero if they rank equal, and a positive number if a ranks
// after b — the same three-way contract as [cmp.Compare] and
// Queue.ComparePriority.
//
// Cross-language equivalents: Ruby's akr/depq accepts either a natural
// <=> ordering or a block; here a Comparator is the explicit function
// form, and NaturalOrder builds one from any cmp.Ordered type.
type Comparator[P any] func(a, b P) int

// NaturalOrder returns a Comparator using a priority type's own ordering,
// for use with New when priorities are plain ordered values (numbers,
// strings) rather than a user-defined ranking.
func NaturalOrder[P cmp.Ordered]() Comparator[P] {
	return cmp.Compare[P]
}

// Reverse returns a Comparator that ranks in the opposite order of c.
// Composing Reverse(NaturalOrder[int]()) turns a min-ordered queue's
// comparator into a max-ordered one without touching the queue's mode
// logic, which only ever consults the comparator's sign.
func Reverse[P any](c Comparator[P]) Comparator[P] {
	return func(a, b P) int { return c(b, a) }
}

// Chain returns a Comparator that compares by the first of cmps, falling through to
// subsequent comparators only when the preceding ones rank the pair
// equal. Useful for secondary sort keys beyond the queue's own
// subpriority tiebreak (which only ever resolves to insertion order).
func Chain[P any](cmps ...Comparator[P]) Comparator[P] {
	return func(a, b P) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// By builds a Comparator[P] over a key extracted from a richer priority
// type, ordering keys naturally. Mirrors PCfVW/d-Heap-priority-queue's
// MinBy, but three-way rather than boolean, and with direction left to the
// caller (wrap in Reverse for descending).
func By[P any, K cmp.Ordered](key func(P) K) Comparator[P] {
	return func(a, b P) int { return cmp.Compare(key(a), key(b)) }
}
