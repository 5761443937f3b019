package waypoint

import (
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCosts(t *testing.T) {
	wp := New(location.New(1, 2), nil)
	require.Equal(t, location.New(1, 2), wp.Location())
	require.Nil(t, wp.Previous())
	require.Equal(t, float32(0), wp.TotalCost())

	wp.SetCosts(3, 4.5)
	require.Equal(t, float32(3), wp.PreviousCost())
	require.Equal(t, float32(4.5), wp.RemainingCost())
	require.Equal(t, float32(7.5), wp.TotalCost())
	require.Equal(t, "(1, 2)[prev=3.00, total=7.50]", wp.String())
}

func TestPath(t *testing.T) {
	start := NewWithCosts(location.New(0, 0), nil, 0, 2)
	require.Equal(t, []location.Location{{0, 0}}, start.Path())

	middle := NewWithCosts(location.New(1, 0), start, 1, 1)
	end := NewWithCosts(location.New(1, 1), middle, 2, 0)
	require.Same(t, middle, end.Previous())
	require.Equal(t, []location.Location{{0, 0}, {1, 0}, {1, 1}}, end.Path())
}
