package depq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorDetachedRoundTrip(t *testing.T) {
	l := NewLocator[string, int]("x", 5)
	assert.False(t, l.InQueue())
	assert.Nil(t, l.Queue())
	p, ok := l.Subpriority()
	assert.False(t, ok)
	assert.Zero(t, p)

	l.UpdateValue("y")
	assert.Equal(t, "y", l.Value())

	l.Update("z", 9, 42)
	assert.Equal(t, "z", l.Value())
	assert.Equal(t, 9, l.Priority())
	sub, ok := l.Subpriority()
	require.True(t, ok)
	assert.EqualValues(t, 42, sub)
}

func TestLocatorUpdateWithoutSubpriorityClearsItWhenDetached(t *testing.T) {
	l := NewLocator[string, int]("x", 5, 1)
	l.Update("x", 6)
	_, ok := l.Subpriority()
	assert.False(t, ok, "a detached locator's subpriority is unset when Update omits one")
}

func TestLocatorIsIdentityOnly(t *testing.T) {
	a := NewLocator[string, int]("x", 1)
	b := NewLocator[string, int]("x", 1)
	assert.True(t, a.Is(a))
	assert.False(t, a.Is(b))
}

func TestLocatorDupPanics(t *testing.T) {
	l := NewLocator[string, int]("x", 1)
	assert.PanicsWithValue(t, ErrNonDuplicable, func() { l.Dup() })
}

func TestLocatorAttachedUpdateRetainsSubpriorityWhenOmitted(t *testing.T) {
	q := NewOrdered[string, int]()
	loc := q.Insert("a", 5, 100)
	loc.UpdatePriority(3)
	sub, ok := loc.Subpriority()
	require.True(t, ok)
	assert.EqualValues(t, 100, sub)
	assert.Equal(t, 3, loc.Priority())
}

func TestLocatorInsertLocatorPanicsIfAlreadyAttached(t *testing.T) {
	q := NewOrdered[string, int]()
	loc := q.Insert("a", 1)
	assert.PanicsWithValue(t, ErrAlreadyAttached, func() { q.InsertLocator(loc) })
}
