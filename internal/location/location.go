// Package location defines Location, the coordinate of a cell in a 2D grid.
//
// Location is a plain comparable value: two locations with the same coordinates
// are equal with `==` and can be used interchangeably as map keys.
package location

import (
	"encoding/binary"
	"fmt"
	"github.com/annakuskova/OOP-lab3/internal/generics"
	"github.com/chewxy/math32"
	"hash/fnv"
	"iter"
	"slices"
)

// Location packages the x, y coordinates of a grid cell.
type Location struct {
	X, Y int
}

// New creates a Location with the given coordinates.
// The zero value Location{} is the location (0, 0).
func New(x, y int) Location {
	return Location{X: x, Y: y}
}

// Equal returns whether locations are the same.
func (loc Location) Equal(loc2 Location) bool {
	return loc == loc2
}

// Hash returns a FNV-1a hash of both coordinates.
// Equal locations always return the same hash.
func (loc Location) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(loc.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(loc.Y))
	hasher := fnv.New64a()
	_, _ = hasher.Write(buf[:])
	return hasher.Sum64()
}

// String returns a text representation of Location.
func (loc Location) String() string {
	return fmt.Sprintf("(%d, %d)", loc.X, loc.Y)
}

// Add returns the location shifted by dx, dy.
func (loc Location) Add(dx, dy int) Location {
	return Location{loc.X + dx, loc.Y + dy}
}

// Compare orders locations by y first and then x, the reading order of a map printed
// row by row. It returns -1, 0 or +1.
func (loc Location) Compare(loc2 Location) int {
	if loc.Y != loc2.Y {
		if loc.Y < loc2.Y {
			return -1
		}
		return 1
	}
	if loc.X != loc2.X {
		if loc.X < loc2.X {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns whether loc comes before loc2 in the order defined by Compare.
func (loc Location) Less(loc2 Location) bool {
	return loc.Compare(loc2) < 0
}

// Sort sorts locations in-place according to y first and then x.
func Sort(locations []Location) {
	slices.SortFunc(locations, Location.Compare)
}

// Strings converts the locations to their string representation.
func Strings(locations []Location) []string {
	return generics.SliceMap(locations, Location.String)
}

// Distance returns the euclidean distance between two locations.
func (loc Location) Distance(loc2 Location) float32 {
	dx := float32(loc.X - loc2.X)
	dy := float32(loc.Y - loc2.Y)
	return math32.Sqrt(dx*dx + dy*dy)
}

// ManhattanDistance returns the sum of the absolute differences of the coordinates.
func (loc Location) ManhattanDistance(loc2 Location) int {
	return absInt(loc.X-loc2.X) + absInt(loc.Y-loc2.Y)
}

// ChebyshevDistance returns the number of king moves (diagonals allowed) between the
// two locations.
func (loc Location) ChebyshevDistance(loc2 Location) int {
	return max(absInt(loc.X-loc2.X), absInt(loc.Y-loc2.Y))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var (
	orthogonalDeltas = [4]Location{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDeltas   = [8]Location{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NeighboursIter iterates over the neighbour locations: 4 of them (up, right, down, left)
// or, if diagonal is true, 8 of them.
//
// Neighbours are listed clockwise, starting from the one above (y-1).
func (loc Location) NeighboursIter(diagonal bool) iter.Seq[Location] {
	deltas := orthogonalDeltas[:]
	if diagonal {
		deltas = diagonalDeltas[:]
	}
	return func(yield func(Location) bool) {
		for _, delta := range deltas {
			if !yield(loc.Add(delta.X, delta.Y)) {
				return
			}
		}
	}
}

// Neighbours returns a newly allocated slice with the neighbour locations, in the same
// order as NeighboursIter.
func (loc Location) Neighbours(diagonal bool) []Location {
	return slices.Collect(loc.NeighboursIter(diagonal))
}
