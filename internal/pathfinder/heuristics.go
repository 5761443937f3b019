package pathfinder

import (
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/pkg/errors"
	"maps"
	"slices"
)

// Heuristic estimates the cost of moving from one location to another.
//
// For the search to return optimal paths it must not overestimate the real cost: with the
// step costs of grid.Map (1 orthogonal, √2 diagonal, plus terrain) Euclidean is always
// admissible, Manhattan only for maps without diagonal moves.
type Heuristic func(from, to location.Location) float32

// Euclidean distance heuristic.
func Euclidean(from, to location.Location) float32 {
	return from.Distance(to)
}

// Manhattan distance heuristic.
func Manhattan(from, to location.Location) float32 {
	return float32(from.ManhattanDistance(to))
}

// Chebyshev distance heuristic. Admissible for both 4 and 8 connected maps, but weaker
// than Euclidean.
func Chebyshev(from, to location.Location) float32 {
	return float32(from.ChebyshevDistance(to))
}

// Zero heuristic: turns A* into Dijkstra's algorithm.
func Zero(_, _ location.Location) float32 {
	return 0
}

var heuristicsByName = map[string]Heuristic{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"zero":      Zero,
}

// HeuristicNames returns the sorted names accepted by HeuristicByName.
func HeuristicNames() []string {
	return slices.Sorted(maps.Keys(heuristicsByName))
}

// HeuristicByName returns one of the heuristics defined in this package.
func HeuristicByName(name string) (Heuristic, error) {
	h, found := heuristicsByName[name]
	if !found {
		return nil, errors.Errorf("unknown heuristic %q, valid values are %q", name, HeuristicNames())
	}
	return h, nil
}
