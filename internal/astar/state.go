// Package astar holds the bookkeeping of an A* search over a grid: the "open" waypoints
// (reached, but not yet expanded) and the "closed" waypoints (expanded, their cost is
// final), keyed by location.
//
// State provides the operations the search loop needs: admit a candidate waypoint, get the
// open waypoint with the lowest total cost, and close a waypoint. A location is a key in at
// most one of the two collections, and a closed location is never reopened by State.
//
// The search loop itself, heuristics and path reconstruction are implemented by the
// pathfinder package.
package astar

import (
	"container/heap"
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/pkg/errors"
	"iter"
	"maps"
	"reflect"
	"slices"
	"sync"
)

var (
	// ErrInvalidArgument is returned by New if no map is given.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by State.CloseWaypoint if the location is not open.
	ErrNotFound = errors.New("location not found in open waypoints")
)

// Waypoint is what State needs from the waypoint records it stores.
// State never creates or modifies waypoints, and it assumes their costs don't change while
// they are stored.
type Waypoint interface {
	Location() location.Location

	// PreviousCost is the cost from the start of the search to the waypoint.
	PreviousCost() float32

	// TotalCost is the PreviousCost plus the estimate to the goal.
	TotalCost() float32
}

// Map being navigated. State only keeps it as a handle for the search loop, which knows the
// concrete map type (e.g. *grid.Map) and how to enumerate neighbours.
type Map interface {
	Contains(loc location.Location) bool
}

// State of an A* search. It is safe for concurrent use: each method holds one lock for its
// whole duration, so the admit-or-replace of AddOpenWaypoint and the open to closed move of
// CloseWaypoint are atomic to any observer.
type State[W Waypoint] struct {
	mu     sync.Mutex
	m      Map
	open   map[location.Location]*openEntry[W]
	queue  openQueue[W]
	closed map[location.Location]W
}

// New creates an empty State over the given map. It returns ErrInvalidArgument if m is nil.
func New[W Waypoint](m Map) (*State[W], error) {
	if isNil(m) {
		return nil, errors.Wrap(ErrInvalidArgument, "astar.New: map cannot be nil")
	}
	return &State[W]{
		m:      m,
		open:   make(map[location.Location]*openEntry[W]),
		closed: make(map[location.Location]W),
	}, nil
}

// isNil also catches typed nil pointers wrapped in the interface.
func isNil(m Map) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Map returns the map being navigated.
func (s *State[W]) Map() Map {
	return s.m
}

// MinOpenWaypoint returns the open waypoint with the lowest total cost, or false if there
// are no open waypoints.
//
// If more than one waypoint has the lowest total cost, the one with the lowest location
// (y first, then x) is returned.
func (s *State[W]) MinOpenWaypoint() (wp W, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return
	}
	return s.queue[0].waypoint, true
}

// AddOpenWaypoint adds candidate to the open waypoints, if there is no open waypoint at its
// location yet. If there is one, candidate replaces it only if its PreviousCost is strictly
// lower.
//
// It returns whether an existing waypoint was replaced: it is false both when candidate is
// inserted at a new location and when it is discarded.
//
// Closed locations are not checked: it is up to the caller not to reopen them, see
// IsLocationClosed.
func (s *State[W]) AddOpenWaypoint(candidate W) (replaced bool) {
	loc := candidate.Location()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, found := s.open[loc]
	if !found {
		entry = &openEntry[W]{waypoint: candidate}
		heap.Push(&s.queue, entry)
		s.open[loc] = entry
		return false
	}
	if candidate.PreviousCost() >= entry.waypoint.PreviousCost() {
		return false
	}
	entry.waypoint = candidate
	heap.Fix(&s.queue, entry.indexInQueue)
	return true
}

// NumOpenWaypoints returns the current number of open waypoints.
func (s *State[W]) NumOpenWaypoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

// NumClosedWaypoints returns the current number of closed waypoints.
func (s *State[W]) NumClosedWaypoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.closed)
}

// CloseWaypoint moves the waypoint at loc from the open waypoints to the closed waypoints.
//
// If loc is not open it returns an error wrapping ErrNotFound and nothing is changed.
func (s *State[W]) CloseWaypoint(loc location.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, found := s.open[loc]
	if !found {
		if _, closed := s.closed[loc]; closed {
			return errors.Wrapf(ErrNotFound, "location %s is already closed", loc)
		}
		return errors.Wrapf(ErrNotFound, "location %s", loc)
	}
	heap.Remove(&s.queue, entry.indexInQueue)
	delete(s.open, loc)
	s.closed[loc] = entry.waypoint
	return nil
}

// IsLocationClosed returns whether there is a closed waypoint at loc.
func (s *State[W]) IsLocationClosed(loc location.Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := s.closed[loc]
	return found
}

// OpenWaypoint returns the open waypoint at loc, if any.
func (s *State[W]) OpenWaypoint(loc location.Location) (wp W, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, found := s.open[loc]
	if !found {
		return
	}
	return entry.waypoint, true
}

// ClosedWaypoint returns the closed waypoint at loc, if any.
func (s *State[W]) ClosedWaypoint(loc location.Location) (wp W, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, found = s.closed[loc]
	return
}

// OpenLocations returns a sorted (y first, then x) snapshot of the open locations.
func (s *State[W]) OpenLocations() []location.Location {
	s.mu.Lock()
	locs := slices.Collect(maps.Keys(s.open))
	s.mu.Unlock()
	location.Sort(locs)
	return locs
}

// ClosedLocations returns a sorted (y first, then x) snapshot of the closed locations.
func (s *State[W]) ClosedLocations() []location.Location {
	s.mu.Lock()
	locs := slices.Collect(maps.Keys(s.closed))
	s.mu.Unlock()
	location.Sort(locs)
	return locs
}

// OpenWaypoints iterates over a snapshot of the open waypoints, in increasing order of total
// cost (with the same tie-break as MinOpenWaypoint).
//
// The snapshot is taken when the iteration starts, so the State can be modified during the
// iteration.
func (s *State[W]) OpenWaypoints() iter.Seq2[location.Location, W] {
	return func(yield func(location.Location, W) bool) {
		s.mu.Lock()
		waypoints := make([]W, 0, len(s.queue))
		for _, entry := range s.queue {
			waypoints = append(waypoints, entry.waypoint)
		}
		s.mu.Unlock()
		slices.SortFunc(waypoints, func(a, b W) int {
			if lessWaypoint(a, b) {
				return -1
			}
			if lessWaypoint(b, a) {
				return 1
			}
			return 0
		})
		for _, wp := range waypoints {
			if !yield(wp.Location(), wp) {
				return
			}
		}
	}
}

// Reset removes all open and closed waypoints, so the State can be reused for a new search
// on the same map.
func (s *State[W]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.open)
	clear(s.closed)
	clear(s.queue)
	s.queue = s.queue[:0]
}
