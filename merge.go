package depq

import "iter"

// Merge lazily interleaves any number of sequences, each assumed sorted
// ascending by cmp, into a single ascending sequence. It holds one entry
// per still-open source in a queue keyed by each source's current head
// value, so memory is O(number of sources) rather than O(total elements).
//
// Each drained source's locator is updated in place with its next value
// (UpdatePriority's O(log n) reposition) rather than deleted and
// reinserted, which is the same decrease-key idiom the package's
// handle-based API is built around elsewhere.
//
// The returned iter.Seq is lazy: nothing is pulled from any source until
// the caller ranges over it. Use MergeSlice to drive it synchronously.
func Merge[T any](cmp Comparator[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nexts := make([]func() (T, bool), len(seqs))
		stops := make([]func(), len(seqs))
		q := New[int, T](cmp)

		for i, s := range seqs {
			next, stop := iter.Pull(s)
			nexts[i], stops[i] = next, stop
			if v, ok := next(); ok {
				q.Insert(i, v)
			} else {
				stop()
				stops[i] = nil
			}
		}
		defer func() {
			for _, stop := range stops {
				if stop != nil {
					stop()
				}
			}
		}()

		for {
			loc, ok := q.FindMinLocator()
			if !ok {
				return
			}
			idx, v := loc.Value(), loc.Priority()
			if !yield(v) {
				q.DeleteLocator(loc)
				return
			}
			if nv, ok := nexts[idx](); ok {
				loc.UpdatePriority(nv)
			} else {
				q.DeleteLocator(loc)
				stops[idx]()
				stops[idx] = nil
			}
		}
	}
}

// MergeSlice drives Merge synchronously to completion and collects its
// output, for callers that don't need the lazy form.
func MergeSlice[T any](cmp Comparator[T], seqs ...iter.Seq[T]) []T {
	var out []T
	for v := range Merge(cmp, seqs...) {
		out = append(out, v)
	}
	return out
}
