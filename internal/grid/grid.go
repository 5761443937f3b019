// Package grid implements Map, the rectangular 2D map the A* search navigates.
//
// Each cell holds a terrain cost: 0 for free cells, a positive value for cells that are
// more expensive to enter, and Impassable for walls. The map also knows the start and
// finish locations of the search, and enumerates the neighbours of a cell with the
// incremental cost of moving there.
package grid

import (
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/pkg/errors"
	"iter"
	"math"
	"strings"
)

// Impassable is the cell value of walls: neighbours with this value are never returned.
const Impassable = math.MaxInt32

// ErrInvalidSize is returned when creating a map with non-positive dimensions.
var ErrInvalidSize = errors.New("invalid map size")

// Neighbour is a location reachable in one step, and the cost of the step.
type Neighbour struct {
	Location location.Location
	Cost     float32
}

// Map is a width x height grid of terrain costs. Locations go from (0, 0) in the top-left
// corner to (width-1, height-1) in the bottom-right corner.
type Map struct {
	width, height int

	// cells are stored row-major: cells[y*width+x].
	cells []int

	start, finish location.Location

	// Diagonal enables 8-connectivity. If false only the 4 orthogonal neighbours are used.
	Diagonal bool
}

// New creates a map with all cells free (value 0), start at (0, 0) and finish at
// (width-1, height-1).
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "width=%d, height=%d", width, height)
	}
	return &Map{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
		finish: location.New(width-1, height-1),
	}, nil
}

// Width of the map.
func (m *Map) Width() int { return m.width }

// Height of the map.
func (m *Map) Height() int { return m.height }

// Start location of the search.
func (m *Map) Start() location.Location { return m.start }

// Finish location of the search.
func (m *Map) Finish() location.Location { return m.finish }

// SetStart sets the start location. It returns an error if loc is outside the map.
func (m *Map) SetStart(loc location.Location) error {
	if !m.Contains(loc) {
		return errors.Errorf("start location %s outside of the %dx%d map", loc, m.width, m.height)
	}
	m.start = loc
	return nil
}

// SetFinish sets the finish location. It returns an error if loc is outside the map.
func (m *Map) SetFinish(loc location.Location) error {
	if !m.Contains(loc) {
		return errors.Errorf("finish location %s outside of the %dx%d map", loc, m.width, m.height)
	}
	m.finish = loc
	return nil
}

// Contains returns whether loc is inside the map.
func (m *Map) Contains(loc location.Location) bool {
	return loc.X >= 0 && loc.X < m.width && loc.Y >= 0 && loc.Y < m.height
}

// CellValue returns the terrain cost of the cell. Locations outside the map are Impassable.
func (m *Map) CellValue(loc location.Location) int {
	if !m.Contains(loc) {
		return Impassable
	}
	return m.cells[loc.Y*m.width+loc.X]
}

// SetCellValue sets the terrain cost of the cell.
// Negative values are not valid costs, and are stored as Impassable.
func (m *Map) SetCellValue(loc location.Location, value int) error {
	if !m.Contains(loc) {
		return errors.Errorf("location %s outside of the %dx%d map", loc, m.width, m.height)
	}
	if value < 0 {
		value = Impassable
	}
	m.cells[loc.Y*m.width+loc.X] = value
	return nil
}

// IsPassable returns whether loc is inside the map and is not a wall.
func (m *Map) IsPassable(loc location.Location) bool {
	return m.CellValue(loc) != Impassable
}

// NeighboursIter iterates over the passable neighbours of loc.
//
// The cost of each step is the terrain cost of the target cell plus the length of the step:
// 1 for orthogonal moves and √2 for diagonal moves.
func (m *Map) NeighboursIter(loc location.Location) iter.Seq[Neighbour] {
	return func(yield func(Neighbour) bool) {
		for next := range loc.NeighboursIter(m.Diagonal) {
			value := m.CellValue(next)
			if value == Impassable {
				continue
			}
			if !yield(Neighbour{Location: next, Cost: float32(value) + loc.Distance(next)}) {
				return
			}
		}
	}
}

// Neighbours returns the passable neighbours of loc, see NeighboursIter.
func (m *Map) Neighbours(loc location.Location) []Neighbour {
	neighbours := make([]Neighbour, 0, 8)
	for n := range m.NeighboursIter(loc) {
		neighbours = append(neighbours, n)
	}
	return neighbours
}

// String renders the map in the text format accepted by Parse.
// Cells with costs larger than 9 are rendered as 9.
func (m *Map) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteByte(m.CellRune(location.New(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellRune returns the character used for loc in the text format.
func (m *Map) CellRune(loc location.Location) byte {
	switch {
	case loc == m.start:
		return StartRune
	case loc == m.finish:
		return FinishRune
	}
	value := m.CellValue(loc)
	switch {
	case value == Impassable:
		return WallRune
	case value == 0:
		return FreeRune
	case value > 9:
		return '9'
	default:
		return byte('0' + value)
	}
}
