// Package pathfinder runs the A* search over a grid.Map: it repeatedly takes the open
// waypoint with the lowest total cost, closes it, and offers its neighbours as candidate
// open waypoints, until the goal is closed or there are no open waypoints left.
//
// It can run to completion (Search, Searcher.Run) or one expansion at a time
// (Searcher.Step), for UIs and debugging.
package pathfinder

import (
	"context"
	"github.com/annakuskova/OOP-lab3/internal/astar"
	"github.com/annakuskova/OOP-lab3/internal/grid"
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/annakuskova/OOP-lab3/internal/waypoint"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// ErrNoPath is returned when the goal can't be reached.
var ErrNoPath = errors.New("no path found")

// Result of a search.
type Result struct {
	// Path from start to goal, both included. Empty if not found.
	Path []location.Location

	// Cost of the path.
	Cost float32

	// Expanded is the number of waypoints closed during the search.
	Expanded int

	Found bool
}

// Snapshot describes the search after one Searcher.Step.
type Snapshot struct {
	// Current is the waypoint expanded in this step. nil if no step was taken.
	Current *waypoint.Waypoint

	// Step is the number of expansions so far.
	Step int

	NumOpen, NumClosed int
	Done, Found        bool
}

// Searcher holds one A* search over a map.
type Searcher struct {
	m           *grid.Map
	start, goal location.Location
	opts        Options
	state       *astar.State[*waypoint.Waypoint]

	expanded int
	done     bool
	result   Result
}

// New creates a Searcher from start to goal. The start waypoint is the only open waypoint.
func New(m *grid.Map, start, goal location.Location, opts Options) (*Searcher, error) {
	state, err := astar.New[*waypoint.Waypoint](m)
	if err != nil {
		return nil, errors.WithMessage(err, "pathfinder.New")
	}
	for _, loc := range []location.Location{start, goal} {
		if !m.IsPassable(loc) {
			return nil, errors.Errorf("pathfinder.New: location %s is outside the map or not passable", loc)
		}
	}
	if opts.Heuristic == nil {
		opts.Heuristic = Zero
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	s := &Searcher{
		m:     m,
		start: start,
		goal:  goal,
		opts:  opts,
		state: state,
	}
	s.state.AddOpenWaypoint(waypoint.NewWithCosts(start, nil, 0, opts.Heuristic(start, goal)))
	klog.V(1).Infof("A* search from %s to %s: heuristic=%q, max_cost=%g, workers=%d",
		start, goal, opts.HeuristicName, opts.MaxCost, opts.Workers)
	return s, nil
}

// Search runs the A* search from the map's start to its finish. See Searcher.Run.
func Search(ctx context.Context, m *grid.Map, opts Options) (Result, error) {
	if m == nil {
		return Result{}, errors.Wrap(astar.ErrInvalidArgument, "pathfinder.Search: map cannot be nil")
	}
	s, err := New(m, m.Start(), m.Finish(), opts)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx)
}

// State returns the open/closed bookkeeping of the search.
func (s *Searcher) State() *astar.State[*waypoint.Waypoint] {
	return s.state
}

// Result returns the result so far: it is only filled once the search is done.
func (s *Searcher) Result() Result {
	return s.result
}

// Run steps through the search until it is done.
//
// It returns an error wrapping ErrNoPath if the goal can't be reached, and ctx.Err() if the
// context is cancelled: the search can be continued later with a new context.
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	for !s.done {
		if _, err := s.Step(ctx); err != nil {
			return s.result, err
		}
	}
	if !s.result.Found {
		return s.result, errors.Wrapf(ErrNoPath, "from %s to %s after %d expansions", s.start, s.goal, s.expanded)
	}
	return s.result, nil
}

// Step expands the open waypoint with the lowest total cost. Once the search is done, Step
// is a no-op that returns a Snapshot with Done set.
func (s *Searcher) Step(ctx context.Context) (Snapshot, error) {
	if s.done {
		return s.snapshot(nil), nil
	}
	if err := ctx.Err(); err != nil {
		return s.snapshot(nil), err
	}

	current, found := s.state.MinOpenWaypoint()
	if !found {
		s.finish(nil)
		return s.snapshot(nil), nil
	}
	if err := s.state.CloseWaypoint(current.Location()); err != nil {
		return s.snapshot(nil), errors.WithMessagef(err, "closing the minimum open waypoint %s", current)
	}
	s.expanded++
	if klog.V(2).Enabled() {
		klog.Infof("Step %d: expanding %s, %d open", s.expanded, current, s.state.NumOpenWaypoints())
	}

	if current.Location() == s.goal {
		s.finish(current)
		return s.snapshot(current), nil
	}
	if err := s.expand(current); err != nil {
		return s.snapshot(current), err
	}
	return s.snapshot(current), nil
}

// expand offers the neighbours of current that are not closed as open waypoints.
func (s *Searcher) expand(current *waypoint.Waypoint) error {
	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for _, neighbour := range s.m.Neighbours(current.Location()) {
		g.Go(func() error {
			if s.state.IsLocationClosed(neighbour.Location) {
				return nil
			}
			previousCost := current.PreviousCost() + neighbour.Cost
			if s.opts.MaxCost > 0 && previousCost > s.opts.MaxCost {
				return nil
			}
			candidate := waypoint.NewWithCosts(neighbour.Location, current, previousCost,
				s.opts.Heuristic(neighbour.Location, s.goal))
			s.state.AddOpenWaypoint(candidate)
			return nil
		})
	}
	return g.Wait()
}

func (s *Searcher) finish(goal *waypoint.Waypoint) {
	s.done = true
	s.result = Result{Expanded: s.expanded}
	if goal != nil {
		s.result.Found = true
		s.result.Path = goal.Path()
		s.result.Cost = goal.PreviousCost()
	}
	klog.V(1).Infof("A* search from %s to %s done: found=%v, cost=%g, %d expanded, %d still open",
		s.start, s.goal, s.result.Found, s.result.Cost, s.expanded, s.state.NumOpenWaypoints())
}

func (s *Searcher) snapshot(current *waypoint.Waypoint) Snapshot {
	return Snapshot{
		Current:   current,
		Step:      s.expanded,
		NumOpen:   s.state.NumOpenWaypoints(),
		NumClosed: s.state.NumClosedWaypoints(),
		Done:      s.done,
		Found:     s.result.Found,
	}
}
