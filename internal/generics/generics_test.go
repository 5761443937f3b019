package generics

import (
	"github.com/stretchr/testify/assert"
	"strconv"
	"testing"
)

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{3, 1, 2}, strconv.Itoa)
	assert.Equal(t, []string{"3", "1", "2"}, got)
	assert.Empty(t, SliceMap([]int{}, strconv.Itoa))
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))

	// Repeated elements are inserted once.
	s3 := SetWith(7, 3, 3)
	assert.Len(t, s3, 2)
	assert.Equal(t, s, s3)

	var empty Set[int]
	assert.False(t, empty.Has(3))
}
