package depq

import (
	"iter"
	"math"
)

// nlargestLimit caps how large the working heap is allowed to grow before
// it gets compacted back down to its n best elements. 1024 is a floor
// chosen so small-n callers (n-largest(3, ...) over a million-element
// stream) don't compact on nearly every insert; k*ln(1+k) is the part
// that scales the floor up once n itself gets large.
func nlargestLimit(k int) int {
	l := int(math.Ceil(float64(k) * math.Log(1+float64(k))))
	if l < 1024 {
		return 1024
	}
	return l
}

// NLargest returns up to n elements of seq ranked largest-first by cmp,
// in ascending order, without ever materializing the whole sequence: the
// working set is compacted back down to its n best members whenever it
// grows past an amortizing threshold, so memory stays bounded regardless
// of how long seq runs. Once a compaction has happened, the smallest
// retained element becomes a threshold that lets later elements known to
// rank no better be skipped without ever entering the queue.
func NLargest[T any](n int, seq iter.Seq[T], cmp Comparator[T]) []T {
	if n <= 0 {
		return nil
	}
	q := New[T, T](cmp)
	limit := nlargestLimit(n)
	var threshold T
	hasThreshold := false
	for v := range seq {
		if hasThreshold && cmp(v, threshold) <= 0 {
			continue
		}
		q.Insert(v, v)
		if q.Size() > limit {
			compactTopN(q, n)
			threshold, _ = q.FindMinValue()
			hasThreshold = true
		}
	}
	return extractTopN(q, n)
}

// NSmallest is the ascending counterpart of NLargest.
func NSmallest[T any](n int, seq iter.Seq[T], cmp Comparator[T]) []T {
	if n <= 0 {
		return nil
	}
	q := New[T, T](cmp)
	limit := nlargestLimit(n)
	var threshold T
	hasThreshold := false
	for v := range seq {
		if hasThreshold && cmp(v, threshold) >= 0 {
			continue
		}
		q.Insert(v, v)
		if q.Size() > limit {
			compactBottomN(q, n)
			threshold, _ = q.FindMaxValue()
			hasThreshold = true
		}
	}
	return extractBottomN(q, n)
}

func compactTopN[T any](q *Queue[T, T], n int) {
	keep := extractTopN(q, n)
	q.Clear()
	for _, v := range keep {
		q.Insert(v, v)
	}
}

func compactBottomN[T any](q *Queue[T, T], n int) {
	keep := extractBottomN(q, n)
	q.Clear()
	for _, v := range keep {
		q.Insert(v, v)
	}
}

// extractTopN drains up to n largest elements from q, ascending.
func extractTopN[T any](q *Queue[T, T], n int) []T {
	if n > q.Size() {
		n = q.Size()
	}
	top := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := q.DeleteMaxValue()
		if !ok {
			break
		}
		top = append(top, v)
	}
	for i, j := 0, len(top)-1; i < j; i, j = i+1, j-1 {
		top[i], top[j] = top[j], top[i]
	}
	return top
}

// extractBottomN drains up to n smallest elements from q, ascending.
func extractBottomN[T any](q *Queue[T, T], n int) []T {
	if n > q.Size() {
		n = q.Size()
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := q.DeleteMinValue()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
