package depq

// intervalheap.go implements the interval-heap discipline: consecutive
// index pairs (2k, 2k+1) form interval k, index 2k holding the min-side
// value and 2k+1 the max-side value, with interval k's two children being
// intervals 2k+1 and 2k+2 — a binary heap one level up, over intervals
// instead of single slots. This reformulates the raw slot-index formulas
// (child1_min(i) = (i&^1)*2+2, and so on) in terms of an interval index
// k = i/2, which collapses the min-side and max-side cases onto the same
// parent/child arithmetic and is how van Leeuwen & Wood present the
// structure in "Interval Heaps" (The Computer Journal 36(3), 1993).
//
// A trailing interval may have only a min-side slot (heapsize odd): the
// lone element stands in for both ends of its own interval until a
// sibling arrives, which is also why find_max and find_min_max special-
// case a one-element queue and a tied root pair to return index 0 for
// both ends.

func intervalOf(i int) int     { return i / 2 }
func minSide(k int) int        { return 2 * k }
func maxSide(k int) int        { return 2*k + 1 }
func parentInterval(k int) int { return (k - 1) / 2 }
func childInterval1(k int) int { return 2*k + 1 }
func childInterval2(k int) int { return 2*k + 2 }

// pairOutOfOrder reports whether interval k's min-side ranks worse than
// its max-side (by priority, or by descending subpriority on a priority
// tie — min-side must carry the smaller subpriority of the pair). It is
// false automatically whenever the max-side doesn't yet exist.
func (q *Queue[V, P]) pairOutOfOrder(k, hi int) bool {
	a, b := minSide(k), maxSide(k)
	if b >= hi {
		return false
	}
	c := q.compare(q.entries[a].priority, q.entries[b].priority)
	if c > 0 {
		return true
	}
	return c == 0 && q.entries[a].subpriority > q.entries[b].subpriority
}

func (q *Queue[V, P]) fixPair(k, hi int) {
	if q.pairOutOfOrder(k, hi) {
		q.swap(minSide(k), maxSide(k))
	}
}

// upheapMin fixes the starting interval's own pairing, then climbs the
// min-side chain from i while its interval's parent min-side ranks worse.
// The climb itself never needs an interim fixPair: a value only moves up
// because it beats the parent's min-side, and the parent's min-side was
// already <= the parent's max-side, so by transitivity the moved value
// also ranks below the parent's max-side. A lone min-side slot also
// stands in for its interval's max end, so it first tries the parent's
// max-side and, if it beats it, climbs the max-side chain instead.
func (q *Queue[V, P]) upheapMin(i, hi int) bool {
	k := intervalOf(i)
	q.fixPair(k, hi)
	i = minSide(k)
	if k > 0 && maxSide(k) >= hi {
		if p := maxSide(parentInterval(k)); better(q, true, i, p) {
			q.swap(i, p)
			q.upheapMax(p, hi)
			return true
		}
	}
	moved := false
	for {
		k = intervalOf(i)
		if k == 0 {
			return moved
		}
		p := minSide(parentInterval(k))
		if !better(q, false, i, p) {
			return moved
		}
		q.swap(i, p)
		i = p
		moved = true
	}
}

func (q *Queue[V, P]) upheapMax(i, hi int) bool {
	k := intervalOf(i)
	q.fixPair(k, hi)
	i = maxSide(k)
	moved := false
	for {
		k = intervalOf(i)
		if k == 0 {
			return moved
		}
		p := maxSide(parentInterval(k))
		if !better(q, true, i, p) {
			return moved
		}
		q.swap(i, p)
		i = p
		moved = true
	}
}

func minCandidate(c, hi int) (int, bool) {
	if minSide(c) < hi {
		return minSide(c), true
	}
	return 0, false
}

// maxCandidate returns the index to compare against on the max-side chain
// for child interval c: its max-side if the interval is complete,
// otherwise its lone min-side standing in for both ends.
func maxCandidate(c, hi int) (int, bool) {
	if maxSide(c) < hi {
		return maxSide(c), true
	}
	if minSide(c) < hi {
		return minSide(c), true
	}
	return 0, false
}

func (q *Queue[V, P]) downheapMin(i, hi int) {
	for {
		k := intervalOf(i)
		q.fixPair(k, hi)
		i = minSide(k)
		m1, ok1 := minCandidate(childInterval1(k), hi)
		m2, ok2 := minCandidate(childInterval2(k), hi)
		best, ok := pickBetter(q, false, m1, ok1, m2, ok2)
		if !ok || !better(q, false, best, i) {
			return
		}
		q.swap(i, best)
		i = best
	}
}

func (q *Queue[V, P]) downheapMax(i, hi int) {
	for {
		k := intervalOf(i)
		q.fixPair(k, hi)
		i = maxSide(k)
		m1, ok1 := maxCandidate(childInterval1(k), hi)
		m2, ok2 := maxCandidate(childInterval2(k), hi)
		best, ok := pickBetter(q, true, m1, ok1, m2, ok2)
		if !ok || !better(q, true, best, i) {
			return
		}
		q.swap(i, best)
		i = best
		if best%2 == 0 {
			// Landed in a lone min-side slot standing in for the max end:
			// the value that arrived there may now be out of place on the
			// min-side chain, which downheapMax never checks.
			q.downheapMin(best, hi)
			return
		}
	}
}

func pickBetter[V, P any](q *Queue[V, P], wantMax bool, a int, okA bool, b int, okB bool) (int, bool) {
	switch {
	case okA && okB:
		if better(q, wantMax, b, a) {
			return b, true
		}
		return a, true
	case okA:
		return a, true
	case okB:
		return b, true
	default:
		return 0, false
	}
}

// settle is the single entry point used by priority updates, delete's
// hole-fixup, and incremental heapify: it assumes every index in [0, hi)
// other than i already satisfies the interval-heap invariant and restores
// it at i, trying the side-appropriate up-pass first and falling back to
// the down-pass only if nothing moved up. If the element at i ranks on the
// wrong side of its own interval, it is swapped across and climbs the
// other side's chain, while the partner displaced onto i's side sinks.
func (q *Queue[V, P]) settle(i, hi int) {
	if k := intervalOf(i); q.pairOutOfOrder(k, hi) {
		q.swap(minSide(k), maxSide(k))
		if i%2 == 0 {
			q.upheapMax(maxSide(k), hi)
			q.downheapMin(i, hi)
		} else {
			q.upheapMin(minSide(k), hi)
			q.downheapMax(i, hi)
		}
		return
	}
	if i%2 == 0 {
		if !q.upheapMin(i, hi) {
			q.downheapMin(i, hi)
		}
		return
	}
	if !q.upheapMax(i, hi) {
		q.downheapMax(i, hi)
	}
}

func (q *Queue[V, P]) fixDown(k, hi int) {
	q.fixPair(k, hi)
	q.downheapMin(minSide(k), hi)
	if maxSide(k) < hi {
		q.downheapMax(maxSide(k), hi)
	}
}

// intervalHeapify extends the interval-heap-ordered prefix from heapsize
// to n, using the shared bottom-up/incremental cost chooser.
func (q *Queue[V, P]) intervalHeapify(heapsize, n int) {
	if n == 0 {
		return
	}
	if shouldRebuildBottomUp(n, heapsize) {
		for k := intervalOf(n - 1); k >= 0; k-- {
			q.fixDown(k, n)
		}
		return
	}
	for i := heapsize; i < n; i++ {
		q.settle(i, i+1)
	}
}
