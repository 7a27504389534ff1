package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortSpecToggle(t *testing.T) {
	s := DefaultSort()
	assert.Equal(t, SortNone, s.Field)

	s = s.Toggle(SortPrice)
	assert.Equal(t, SortSpec{Field: SortPrice, Direction: Ascending}, s)

	s = s.Toggle(SortPrice)
	assert.Equal(t, SortSpec{Field: SortPrice, Direction: Descending}, s)

	s = s.Toggle(SortPrice)
	assert.Equal(t, SortSpec{Field: SortPrice, Direction: Ascending}, s)

	s = s.Toggle(SortPrice).Toggle(SortSymbol)
	assert.Equal(t, SortSpec{Field: SortSymbol, Direction: Ascending}, s)

	assert.Equal(t, DefaultSort(), s.Toggle(SortNone))
}

func TestSortFieldIsValid(t *testing.T) {
	for _, f := range []SortField{SortNone, SortSymbol, SortPrice, SortChange, SortChangePercent} {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, SortField("volume").IsValid())
	assert.False(t, SortField("").IsValid())
}
