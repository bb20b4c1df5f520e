package depq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseFlipsOrder(t *testing.T) {
	asc := NaturalOrder[int]()
	desc := Reverse(asc)
	assert.Negative(t, asc(1, 2))
	assert.Positive(t, desc(1, 2))
}

func TestChainFallsThroughOnTies(t *testing.T) {
	type pair struct{ a, b int }
	byA := func(x, y pair) int { return x.a - y.a }
	byB := func(x, y pair) int { return x.b - y.b }
	c := Chain(byA, byB)

	assert.Zero(t, c(pair{1, 2}, pair{1, 2}))
	assert.Negative(t, c(pair{1, 1}, pair{1, 2}))
	assert.Positive(t, c(pair{2, 1}, pair{1, 9}))
}

func TestByExtractsKey(t *testing.T) {
	type item struct {
		name string
		cost int
	}
	c := By(func(i item) int { return i.cost })
	assert.Negative(t, c(item{"a", 1}, item{"b", 2}))
}

func TestMaxHeapUsesReverseOfNaturalOrder(t *testing.T) {
	q := New[int, int](Reverse(NaturalOrder[int]()))
	q.Insert(1, 1)
	q.Insert(3, 3)
	q.Insert(2, 2)
	v, ok := q.FindMinValue()
	assert.True(t, ok)
	assert.Equal(t, 3, v, "queue ordered by Reverse(NaturalOrder) treats the largest priority as the min")
}
