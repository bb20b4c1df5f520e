package depq

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNLargestBasic(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6}
	got := NLargest(3, slices.Values(values), NaturalOrder[int]())
	assert.Equal(t, []int{5, 6, 9}, got)
}

func TestNSmallestBasic(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6}
	got := NSmallest(3, slices.Values(values), NaturalOrder[int]())
	assert.Equal(t, []int{1, 1, 2}, got)
}

func TestNLargestNGreaterThanLength(t *testing.T) {
	values := []int{2, 1}
	got := NLargest(10, slices.Values(values), NaturalOrder[int]())
	assert.Equal(t, []int{1, 2}, got)
}

func TestNLargestZeroOrNegative(t *testing.T) {
	values := []int{1, 2, 3}
	assert.Nil(t, NLargest(0, slices.Values(values), NaturalOrder[int]()))
	assert.Nil(t, NLargest(-1, slices.Values(values), NaturalOrder[int]()))
}

func TestNLargestTriggersCompaction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := nlargestLimit(5)*3 + 17 // force at least one compaction
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(1_000_000)
	}

	got := NLargest(5, slices.Values(values), NaturalOrder[int]())

	want := append([]int(nil), values...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))
	want = want[:5]
	sort.Ints(want)

	assert.Equal(t, want, got)
}
