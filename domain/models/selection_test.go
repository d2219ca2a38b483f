package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggleByID(t *testing.T) {
	s := NewSelection().Toggle(Person{ID: 3, Name: "Bea"}).Toggle(Person{ID: 5, Name: "Chris"})
	assert.Equal(t, []int64{3, 5}, s.IDs())
	assert.Equal(t, "2 people selected", s.Label())

	s = s.Toggle(Person{ID: 3, Name: "Bea (renamed)"})
	assert.Equal(t, []int64{5}, s.IDs())
}

func TestSelectionIsValue(t *testing.T) {
	a := NewSelection(Person{ID: 1})
	b := a.Toggle(Person{ID: 2})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestSelectionEqualIgnoresOrder(t *testing.T) {
	a := NewSelection(Person{ID: 1}, Person{ID: 2})
	b := NewSelection(Person{ID: 2}, Person{ID: 1})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewSelection(Person{ID: 1})))
}

func TestSelectionDedupesAndLabels(t *testing.T) {
	s := NewSelection(Person{ID: 1}, Person{ID: 1})
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Select people...", NewSelection().Label())
	assert.Equal(t, []int64{}, NewSelection().IDs())
}
