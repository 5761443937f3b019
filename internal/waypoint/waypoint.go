// Package waypoint implements the record the A* search keeps for each visited cell:
// its location, the waypoint it was reached from, and its costs.
package waypoint

import (
	"fmt"
	"github.com/annakuskova/OOP-lab3/internal/location"
	"slices"
)

// Waypoint is a cell reached by the search, along with how it was reached.
//
// Waypoints are linked through Previous back to the start of the search, which
// allows the path to be reconstructed once the finish is reached.
type Waypoint struct {
	loc      location.Location
	previous *Waypoint

	// previousCost is the actual cost from the start to this waypoint.
	previousCost float32

	// remainingCost is the heuristic estimate from this waypoint to the finish.
	remainingCost float32
}

// New creates a waypoint for loc, reached from previous. previous is nil for the start.
func New(loc location.Location, previous *Waypoint) *Waypoint {
	return &Waypoint{loc: loc, previous: previous}
}

// NewWithCosts is a shortcut to New followed by SetCosts.
func NewWithCosts(loc location.Location, previous *Waypoint, previousCost, remainingCost float32) *Waypoint {
	wp := New(loc, previous)
	wp.SetCosts(previousCost, remainingCost)
	return wp
}

// SetCosts sets the cost from the start to the waypoint, and the estimated cost from the
// waypoint to the finish.
//
// It should be called before the waypoint is handed to the search state: the state assumes
// costs don't change while the waypoint is open.
func (wp *Waypoint) SetCosts(previousCost, remainingCost float32) {
	wp.previousCost = previousCost
	wp.remainingCost = remainingCost
}

// Location of the waypoint.
func (wp *Waypoint) Location() location.Location { return wp.loc }

// Previous returns the waypoint this one was reached from, or nil for the start.
func (wp *Waypoint) Previous() *Waypoint { return wp.previous }

// PreviousCost is the accumulated cost from the start to this waypoint.
func (wp *Waypoint) PreviousCost() float32 { return wp.previousCost }

// RemainingCost is the estimated cost from this waypoint to the finish.
func (wp *Waypoint) RemainingCost() float32 { return wp.remainingCost }

// TotalCost is PreviousCost + RemainingCost, the value A* ranks open waypoints by.
func (wp *Waypoint) TotalCost() float32 { return wp.previousCost + wp.remainingCost }

// String implements fmt.Stringer.
func (wp *Waypoint) String() string {
	return fmt.Sprintf("%s[prev=%.2f, total=%.2f]", wp.loc, wp.previousCost, wp.TotalCost())
}

// Path returns the locations from the start of the search up to (and including) this
// waypoint, following the Previous links.
func (wp *Waypoint) Path() []location.Location {
	var path []location.Location
	for current := wp; current != nil; current = current.previous {
		path = append(path, current.loc)
	}
	slices.Reverse(path)
	return path
}
