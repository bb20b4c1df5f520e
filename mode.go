package depq

import "math"

// mode identifies which heap discipline currently governs the prefix
// [0, heapsize) of a queue's backing store.
type mode int

const (
	modeNone mode = iota
	modeMin
	modeMax
	modeInterval
)

// promoteForMin returns the mode a queue must be in to answer a min-side
// query: Min stays Min, none becomes Min, Max — which cannot answer a min
// query — is promoted to Interval, and Interval (which already answers
// both ends) stays Interval. Demoting an Interval queue back to Min here
// would make ensureMode discard and rebuild the whole backing store on
// every subsequent opposite-sided query.
func promoteForMin(current mode) mode {
	if current == modeMax || current == modeInterval {
		return modeInterval
	}
	return modeMin
}

// promoteForMax is the mirror of promoteForMin for max-side queries.
func promoteForMax(current mode) mode {
	if current == modeMin || current == modeInterval {
		return modeInterval
	}
	return modeMax
}

// shouldRebuildBottomUp is the heapify-strategy chooser shared by every
// discipline (§4.2/§4.3/§4.4 of the design: one selector, not one per
// mode). Bottom-up rebuild of the whole prefix costs roughly n-log2(n+1)
// swaps worst case; sifting up just the unheapified suffix costs roughly
// (log2(n+1)-1)*(n-heapsize+1). Bottom-up wins once the fresh suffix is
// large relative to what's already heapified.
func shouldRebuildBottomUp(n, heapsize int) bool {
	if n <= 1 {
		return true
	}
	h := math.Log2(float64(n) + 1)
	lhs := float64(n - 1)
	rhs := (h - 1) * float64(n-heapsize+1)
	return lhs < rhs
}

// ensureMode switches the queue to want (heapifying the whole prefix if the
// discipline changed) and, regardless, heapifies any unheapified suffix so
// that heapsize reaches n. This is the single place mode transitions and
// lazy heapification happen; every query and mutation that needs an
// extremum routes through it first.
func (q *Queue[V, P]) ensureMode(want mode) {
	n := len(q.entries)
	if q.mode != want {
		q.mode = want
		q.heapsize = 0
	}
	if q.heapsize >= n {
		return
	}
	switch q.mode {
	case modeMin:
		binaryHeapify(q, false, q.heapsize, n)
	case modeMax:
		binaryHeapify(q, true, q.heapsize, n)
	case modeInterval:
		q.intervalHeapify(q.heapsize, n)
	}
	q.heapsize = n
}
