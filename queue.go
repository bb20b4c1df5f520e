package depq

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Queue is a stable double-ended priority queue over values of type V
// ranked by priorities of type P. The zero value is not usable; construct
// one with New or NewOrdered.
//
// Internally a Queue is a single backing slice of *Locator, reinterpreted
// as whichever of three heap disciplines (min, max, interval) the access
// pattern so far has required — see mode.go. Callers never see the
// discipline; every public method works regardless of which one is
// currently active.
type Queue[V any, P any] struct {
	entries []*Locator[V, P]
	compare Comparator[P]

	mode     mode
	heapsize int

	totalcount int64
}

// New constructs an empty queue ordered by compare. It panics with
// ErrInvalidComparator if compare is nil.
func New[V any, P any](compare Comparator[P]) *Queue[V, P] {
	if compare == nil {
		panic(ErrInvalidComparator)
	}
	return &Queue[V, P]{compare: compare}
}

// NewOrdered constructs an empty queue over a priority type with a natural
// ordering, equivalent to New(NaturalOrder[P]()).
func NewOrdered[V any, P cmp.Ordered]() *Queue[V, P] {
	return New[V, P](NaturalOrder[P]())
}

// Size reports the number of elements currently in the queue.
func (q *Queue[V, P]) Size() int { return len(q.entries) }

// Empty reports whether the queue holds no elements.
func (q *Queue[V, P]) Empty() bool { return len(q.entries) == 0 }

// TotalCount reports the number of elements ever inserted into the queue
// over its lifetime, including ones since deleted. It is the source of the
// default subpriority and is preserved across Clear.
func (q *Queue[V, P]) TotalCount() int64 { return q.totalcount }

// ComparePriority exposes the queue's own priority ordering, useful for
// callers composing additional logic (e.g. NLargest) around a queue's
// comparator without duplicating it.
func (q *Queue[V, P]) ComparePriority(a, b P) int { return q.compare(a, b) }

func (q *Queue[V, P]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

// better reports whether the element at index i ranks closer to the root
// than the element at index j under the given orientation: ascending
// (wantMax=false, min-ward) or descending (wantMax=true, max-ward).
// Ties are always broken by ascending subpriority regardless of
// orientation, which is what gives both DeleteMin and DeleteMax their
// insertion-order stability.
func better[V, P any](q *Queue[V, P], wantMax bool, i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	c := q.compare(a.priority, b.priority)
	if wantMax {
		c = -c
	}
	if c != 0 {
		return c < 0
	}
	return a.subpriority < b.subpriority
}

// attach appends loc to the backing store as a brand-new tail entry,
// unheapified, assigning it a subpriority (the current totalcount, unless
// overridden) and bumping totalcount. It does no sifting: the element only
// becomes heap-ordered lazily, the next time ensureMode needs to extend
// heapsize over it.
func (q *Queue[V, P]) attach(loc *Locator[V, P], subpriority ...int64) {
	if len(subpriority) > 0 {
		loc.subpriority = subpriority[0]
	} else {
		loc.subpriority = q.totalcount
	}
	loc.subpriorityset = true
	loc.queue = q
	loc.index = len(q.entries)
	q.entries = append(q.entries, loc)
	q.totalcount++
}

// Insert adds value at priority, returning a locator that can later be
// used to update or delete it. If subpriority is omitted, the queue's
// current totalcount is used, guaranteeing that elements of equal priority
// drain in insertion order.
func (q *Queue[V, P]) Insert(value V, priority P, subpriority ...int64) *Locator[V, P] {
	loc := &Locator[V, P]{value: value, priority: priority}
	q.attach(loc, subpriority...)
	return loc
}

// InsertLocator attaches a previously detached locator (built with
// NewLocator, or returned by a delete) to the queue, preserving whatever
// subpriority it already carries. It panics with ErrAlreadyAttached if loc
// is already attached to a queue.
func (q *Queue[V, P]) InsertLocator(loc *Locator[V, P]) {
	if loc.queue != nil {
		panic(ErrAlreadyAttached)
	}
	if loc.subpriorityset {
		q.attach(loc, loc.subpriority)
	} else {
		q.attach(loc)
	}
}

// InsertAll inserts every (value, priority) pair produced by seq.
func (q *Queue[V, P]) InsertAll(seq iter.Seq2[V, P]) {
	for v, p := range seq {
		q.Insert(v, p)
	}
}

// deleteAt removes the element currently at array index i, keeping the
// backing store compact and, if i was within the heapified prefix,
// repairing the heap invariant there. This is a hole-swap against the
// last heap slot followed by a tail compaction rather than a single
// swap-with-absolute-last because the two regions (heap
// prefix, unheapified tail) need different treatment and conflating them
// would either sift over tail garbage or leave the tail noncompact.
func (q *Queue[V, P]) deleteAt(i int) {
	n := len(q.entries)
	if i >= q.heapsize {
		if i != n-1 {
			q.moveSlot(n-1, i)
		}
		q.entries = q.entries[:n-1]
		return
	}

	lastHeap := q.heapsize - 1
	if i != lastHeap {
		q.swap(i, lastHeap)
	}
	q.heapsize--
	if i != lastHeap {
		q.settleAfterDelete(i, q.heapsize)
	}
	if lastHeap != n-1 {
		q.moveSlot(n-1, lastHeap)
	}
	q.entries = q.entries[:n-1]
}

func (q *Queue[V, P]) moveSlot(src, dst int) {
	q.entries[dst] = q.entries[src]
	q.entries[dst].index = dst
}

func (q *Queue[V, P]) settleAfterDelete(i, bound int) {
	switch q.mode {
	case modeMin:
		binarySettle(q, false, i, bound)
	case modeMax:
		binarySettle(q, true, i, bound)
	case modeInterval:
		q.settle(i, bound)
	}
}

// repositionAfterUpdate is called by Locator.Update/UpdatePriority whenever
// an attached locator's priority or subpriority changes. If the locator
// sits in the unheapified tail there's nothing to do: the tail has no
// invariant to repair until ensureMode next sweeps over it. Otherwise the
// element's new rank may be better or worse than before, so each
// discipline tries to move it toward the root and, failing that, away from
// it — see binarySettle and Queue.settle.
func (q *Queue[V, P]) repositionAfterUpdate(l *Locator[V, P], oldPriority P, oldSubpriority int64, oldSubpritySet bool) {
	// The old snapshot isn't needed: binarySettle/settle re-derive direction
	// from the current array contents, not from a before/after comparison.
	i := l.index
	if i >= q.heapsize {
		return
	}
	switch q.mode {
	case modeMin:
		binarySettle(q, false, i, q.heapsize)
	case modeMax:
		binarySettle(q, true, i, q.heapsize)
	case modeInterval:
		q.settle(i, q.heapsize)
	}
}

// FindMinLocator returns the locator at the minimum priority, or false if
// the queue is empty.
func (q *Queue[V, P]) FindMinLocator() (*Locator[V, P], bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	q.ensureMode(promoteForMin(q.mode))
	return q.entries[0], true
}

// FindMaxLocator returns the locator at the maximum priority, or false if
// the queue is empty.
func (q *Queue[V, P]) FindMaxLocator() (*Locator[V, P], bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	q.ensureMode(promoteForMax(q.mode))
	if q.mode == modeInterval {
		return q.intervalMaxLocator(), true
	}
	return q.entries[0], true
}

// intervalMaxLocator implements the root-tie rule for interval-heap mode:
// with a single element index 0 is both min and max, and whenever the two
// root-interval slots carry equal priority, index 0 — not index 1 — is
// reported as the max too, so FindMinMax on a singleton priority class
// returns the same locator twice rather than two distinct ones.
func (q *Queue[V, P]) intervalMaxLocator() *Locator[V, P] {
	if len(q.entries) == 1 {
		return q.entries[0]
	}
	if q.compare(q.entries[0].priority, q.entries[1].priority) == 0 {
		return q.entries[0]
	}
	return q.entries[1]
}

// FindMinMaxLocator returns both extremal locators at once, or false if the
// queue is empty. When only one priority class exists, min and max may be
// the same locator.
func (q *Queue[V, P]) FindMinMaxLocator() (min, max *Locator[V, P], ok bool) {
	if len(q.entries) == 0 {
		return nil, nil, false
	}
	q.ensureMode(modeInterval)
	return q.entries[0], q.intervalMaxLocator(), true
}

// FindMinValue, FindMaxValue, FindMinPriority and FindMaxPriority are thin
// convenience wrappers over the locator-returning finders, for callers who
// don't need a handle back into the queue.

func (q *Queue[V, P]) FindMinValue() (V, bool) {
	loc, ok := q.FindMinLocator()
	return valueOrZero(loc, ok)
}

func (q *Queue[V, P]) FindMaxValue() (V, bool) {
	loc, ok := q.FindMaxLocator()
	return valueOrZero(loc, ok)
}

func (q *Queue[V, P]) FindMinPriority() (P, bool) {
	loc, ok := q.FindMinLocator()
	return priorityOrZero(loc, ok)
}

func (q *Queue[V, P]) FindMaxPriority() (P, bool) {
	loc, ok := q.FindMaxLocator()
	return priorityOrZero(loc, ok)
}

func valueOrZero[V, P any](loc *Locator[V, P], ok bool) (V, bool) {
	if !ok {
		var zero V
		return zero, false
	}
	return loc.value, true
}

func priorityOrZero[V, P any](loc *Locator[V, P], ok bool) (P, bool) {
	if !ok {
		var zero P
		return zero, false
	}
	return loc.priority, true
}

// DeleteMinLocator removes and returns the minimum-priority locator,
// detached, or false if the queue was empty.
func (q *Queue[V, P]) DeleteMinLocator() (*Locator[V, P], bool) {
	loc, ok := q.FindMinLocator()
	if !ok {
		return nil, false
	}
	q.deleteAt(loc.index)
	loc.detach()
	return loc, true
}

// DeleteMaxLocator removes and returns the maximum-priority locator,
// detached, or false if the queue was empty.
func (q *Queue[V, P]) DeleteMaxLocator() (*Locator[V, P], bool) {
	loc, ok := q.FindMaxLocator()
	if !ok {
		return nil, false
	}
	q.deleteAt(loc.index)
	loc.detach()
	return loc, true
}

func (q *Queue[V, P]) DeleteMinValue() (V, bool) {
	loc, ok := q.DeleteMinLocator()
	return valueOrZero(loc, ok)
}

func (q *Queue[V, P]) DeleteMaxValue() (V, bool) {
	loc, ok := q.DeleteMaxLocator()
	return valueOrZero(loc, ok)
}

// DeleteLocator removes loc from the queue it's attached to. It panics
// with ErrWrongLocator if loc is not attached to q, or if its bookkeeping
// is inconsistent with q's backing store (a broken invariant, never
// reachable through correct use of the public API).
func (q *Queue[V, P]) DeleteLocator(loc *Locator[V, P]) {
	if loc == nil || loc.queue != q {
		panic(ErrWrongLocator)
	}
	if loc.index < 0 || loc.index >= len(q.entries) || q.entries[loc.index] != loc {
		panic(ErrWrongLocator)
	}
	q.deleteAt(loc.index)
	loc.detach()
}

// DeleteUnspecifiedLocator removes and returns an arbitrary locator — in
// practice always the most recently appended array slot — without the
// logarithmic extremum search DeleteMin/DeleteMax require. If that slot
// happens to still be unheapified tail, the operation is O(1); if it falls
// within the heapified prefix it costs the usual O(log n) to repair the
// hole. Useful for bulk draining when order doesn't matter.
func (q *Queue[V, P]) DeleteUnspecifiedLocator() (*Locator[V, P], bool) {
	n := len(q.entries)
	if n == 0 {
		return nil, false
	}
	loc := q.entries[n-1]
	q.deleteAt(n - 1)
	loc.detach()
	return loc, true
}

// ReplaceMin removes the current minimum and inserts (value, priority) in
// one step, returning the same locator reused for the new element. It is
// cheaper than DeleteMinLocator followed by Insert because it reuses the
// root's slot instead of shrinking and regrowing the backing store.
func (q *Queue[V, P]) ReplaceMin(value V, priority P, subpriority ...int64) (*Locator[V, P], bool) {
	return q.replaceExtreme(promoteForMin(q.mode), value, priority, subpriority, func() *Locator[V, P] {
		return q.entries[0]
	})
}

// ReplaceMax is the maximum-side counterpart of ReplaceMin.
func (q *Queue[V, P]) ReplaceMax(value V, priority P, subpriority ...int64) (*Locator[V, P], bool) {
	return q.replaceExtreme(promoteForMax(q.mode), value, priority, subpriority, func() *Locator[V, P] {
		if q.mode == modeInterval {
			return q.intervalMaxLocator()
		}
		return q.entries[0]
	})
}

func (q *Queue[V, P]) replaceExtreme(want mode, value V, priority P, subpriority []int64, pick func() *Locator[V, P]) (*Locator[V, P], bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	q.ensureMode(want)
	loc := pick()
	sub := q.totalcount
	if len(subpriority) > 0 {
		sub = subpriority[0]
	}
	q.totalcount++
	oldPriority, oldSub, oldSubSet := loc.priority, loc.subpriority, loc.subpriorityset
	loc.value = value
	loc.priority = priority
	loc.subpriority = sub
	loc.subpriorityset = true
	q.repositionAfterUpdate(loc, oldPriority, oldSub, oldSubSet)
	return loc, true
}

// Clear empties the queue, detaching every locator it held. TotalCount is
// preserved, so elements inserted after a Clear keep receiving strictly
// increasing default subpriorities.
func (q *Queue[V, P]) Clear() {
	for _, loc := range q.entries {
		loc.queue = nil
		loc.index = -1
	}
	q.entries = nil
	q.mode = modeNone
	q.heapsize = 0
}

// Dup returns a deep copy of the queue: every element gets a fresh locator
// attached to the copy, while locators attached to the original are
// untouched and remain attached to it. The copy starts in the same
// discipline and heapified extent as the original, so Dup itself performs
// no additional heap work.
func (q *Queue[V, P]) Dup() *Queue[V, P] {
	cp := &Queue[V, P]{
		compare:    q.compare,
		mode:       q.mode,
		heapsize:   q.heapsize,
		totalcount: q.totalcount,
		entries:    make([]*Locator[V, P], len(q.entries)),
	}
	for i, loc := range q.entries {
		cp.entries[i] = &Locator[V, P]{
			value:          loc.value,
			priority:       loc.priority,
			subpriority:    loc.subpriority,
			subpriorityset: loc.subpriorityset,
			queue:          cp,
			index:          i,
		}
	}
	return cp
}

// EachLocator returns an iterator over every locator in the queue, in
// unspecified order (the order of the current backing store, which
// depends on the heap discipline and is not guaranteed stable across
// mutations).
func (q *Queue[V, P]) EachLocator() iter.Seq[*Locator[V, P]] {
	return func(yield func(*Locator[V, P]) bool) {
		for _, loc := range q.entries {
			if !yield(loc) {
				return
			}
		}
	}
}

// Each returns an iterator over every value in the queue, in unspecified
// order.
func (q *Queue[V, P]) Each() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, loc := range q.entries {
			if !yield(loc.value) {
				return
			}
		}
	}
}

// EachWithPriority returns an iterator over every (value, priority) pair in
// the queue, in unspecified order.
func (q *Queue[V, P]) EachWithPriority() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		for _, loc := range q.entries {
			if !yield(loc.value, loc.priority) {
				return
			}
		}
	}
}

// Snapshot returns the values currently in the queue, in unspecified
// order. The returned slice is a fresh copy.
func (q *Queue[V, P]) Snapshot() []V {
	out := make([]V, len(q.entries))
	for i, loc := range q.entries {
		out[i] = loc.value
	}
	return out
}

// String renders the queue's values in backing-store order, for debugging.
// It makes no claim to sortedness.
func (q *Queue[V, P]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, loc := range q.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", loc.value)
	}
	sb.WriteByte('}')
	return sb.String()
}
