// Package depq provides a stable double-ended priority queue (DEPQ) with
// external handles ("locators") that allow priority updates and deletions
// of already-inserted elements in O(log n).
//
// A DEPQ supports three query/deletion patterns against the same backing
// store:
//
//   - minimum-only, via FindMinValue / DeleteMinValue
//   - maximum-only, via FindMaxValue / DeleteMaxValue
//   - both ends at once, via FindMinMaxLocator / DeleteMinValue+DeleteMaxValue interleaved
//
// The queue adapts its internal representation to whichever pattern the
// caller actually uses: a binary min-heap, a binary max-heap, or an
// interval heap capable of O(log n) access to both ends at once. The
// representation switches lazily, the first time a query demands an
// extremum the current representation cannot answer, and only the
// unheapified suffix of the backing array is repaired when the switch
// isn't required.
//
// # Locators
//
// Insert returns a *Locator, a stable, identity-only handle to the
// inserted element. Locators are the mechanism for decrease-key-style
// updates and handle-based deletion: store one in a map keyed by graph
// node, and call Update on it as shorter paths are discovered, without
// ever searching the queue for the element again.
//
//	loc := q.Insert("b", 5)
//	loc.UpdatePriority(1)
//	q.DeleteLocator(loc)
//
// A Locator is either attached (owned by exactly one queue, at a known
// index) or detached (holding a value/priority/subpriority snapshot but no
// queue). It transitions attached -> detached on any delete, preserving
// the priority and subpriority it had at the moment of deletion.
//
// # Stability
//
// Elements with equal priority are returned in insertion order by both
// DeleteMin and DeleteMax. This is implemented via a monotonically
// increasing subpriority (the queue's insertion ordinal) used as the
// default tiebreaker whenever the caller doesn't supply one.
//
// # Reference
//
// The adaptive representation and the interval-heap discipline follow the
// design of akr/depq (Ruby), generalized to Go's generics and given an
// idiomatic handle/locator API in the style of d-ary heap libraries such
// as PCfVW/d-Heap-priority-queue. Interval heaps themselves are described
// in van Leeuwen & Wood, "Interval Heaps", The Computer Journal 36(3), 1993.
//
// See also: https://en.wikipedia.org/wiki/Double-ended_priority_queue
package depq
