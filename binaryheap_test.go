package depq

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOnlyNeverPromotesToInterval(t *testing.T) {
	q := NewOrdered[int, int]()
	for i := 10; i >= 0; i-- {
		q.Insert(i, i)
	}
	for i := 0; i <= 10; i++ {
		v, ok := q.DeleteMinValue()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, modeMin, q.mode)
}

func TestMaxHeapOnlyNeverPromotesToInterval(t *testing.T) {
	q := NewOrdered[int, int]()
	for i := 0; i <= 10; i++ {
		q.Insert(i, i)
	}
	for i := 10; i >= 0; i-- {
		v, ok := q.DeleteMaxValue()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, modeMax, q.mode)
}

func TestMinThenMaxQueryPromotesToInterval(t *testing.T) {
	q := NewOrdered[int, int]()
	q.Insert(1, 1)
	q.Insert(2, 2)
	_, _ = q.FindMinValue()
	assert.Equal(t, modeMin, q.mode)
	_, _ = q.FindMaxValue()
	assert.Equal(t, modeInterval, q.mode)
}

func TestDeleteLocatorFromMiddleOfBinaryHeap(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for trial := 0; trial < 20; trial++ {
		q := NewOrdered[int, int]()
		var locs []*Locator[int, int]
		n := 5 + rng.Intn(100)
		for i := 0; i < n; i++ {
			locs = append(locs, q.Insert(i, rng.Intn(1000)))
		}
		_, _ = q.FindMinValue() // force min-heap mode

		toDelete := locs[rng.Intn(len(locs))]
		expectedSurvivors := make([]int, 0, n-1)
		for _, l := range locs {
			if l != toDelete {
				expectedSurvivors = append(expectedSurvivors, l.Priority())
			}
		}
		sort.Ints(expectedSurvivors)

		q.DeleteLocator(toDelete)

		var got []int
		for {
			p, ok := q.FindMinPriority()
			if !ok {
				break
			}
			got = append(got, p)
			q.DeleteMinValue()
		}
		assert.Equal(t, expectedSurvivors, got, "trial %d", trial)
	}
}

func TestInsertAllPopulatesQueue(t *testing.T) {
	pairs := map[string]int{"a": 3, "b": 1, "c": 2}
	q := NewOrdered[string, int]()
	q.InsertAll(func(yield func(string, int) bool) {
		for v, p := range pairs {
			if !yield(v, p) {
				return
			}
		}
	})
	assert.Equal(t, 3, q.Size())
	v, ok := q.FindMinValue()
	require.True(t, ok)
	assert.Equal(t, "b", v)
}
