package depq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSliceSortedInputs(t *testing.T) {
	a := []int{1, 4, 7}
	b := []int{2, 3, 9}
	c := []int{5, 6, 8}

	got := MergeSlice(NaturalOrder[int](), slices.Values(a), slices.Values(b), slices.Values(c))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestMergeSliceHandlesEmptySources(t *testing.T) {
	a := []int{}
	b := []int{1, 2, 3}

	got := MergeSlice(NaturalOrder[int](), slices.Values(a), slices.Values(b))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMergeSliceNoSources(t *testing.T) {
	got := MergeSlice[int](NaturalOrder[int]())
	assert.Nil(t, got)
}

func TestMergeIsLazy(t *testing.T) {
	visited := 0
	source := func(yield func(int) bool) {
		for i := 0; i < 1000; i++ {
			visited++
			if !yield(i) {
				return
			}
		}
	}

	var out []int
	for v := range Merge(NaturalOrder[int](), source) {
		out = append(out, v)
		if len(out) == 3 {
			break
		}
	}

	assert.Equal(t, []int{0, 1, 2}, out)
	assert.LessOrEqual(t, visited, 4, "merge should not pull far past what the consumer asked for")
}

func TestMergeSingleSource(t *testing.T) {
	a := []int{1, 2, 3}
	got := MergeSlice(NaturalOrder[int](), slices.Values(a))
	assert.Equal(t, a, got)
}
