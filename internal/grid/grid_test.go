package grid

import (
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	m, err := New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())
	require.Equal(t, location.New(0, 0), m.Start())
	require.Equal(t, location.New(3, 2), m.Finish())
	require.True(t, m.Contains(location.New(3, 2)))
	require.False(t, m.Contains(location.New(4, 2)))
	require.False(t, m.Contains(location.New(0, -1)))
	require.Equal(t, Impassable, m.CellValue(location.New(-1, 0)))

	_, err = New(0, 3)
	require.True(t, errors.Is(err, ErrInvalidSize))
	_, err = New(3, -1)
	require.True(t, errors.Is(err, ErrInvalidSize))
}

func TestCellValues(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)
	loc := location.New(1, 0)
	require.True(t, m.IsPassable(loc))
	require.NoError(t, m.SetCellValue(loc, 5))
	require.Equal(t, 5, m.CellValue(loc))
	require.NoError(t, m.SetCellValue(loc, -1))
	require.False(t, m.IsPassable(loc))
	require.Error(t, m.SetCellValue(location.New(2, 0), 1))
	require.Error(t, m.SetStart(location.New(0, 2)))
	require.Error(t, m.SetFinish(location.New(-1, 0)))
}

func TestNeighbours(t *testing.T) {
	m := MustParse(`
		S.#
		.3.
		..F
	`)
	center := location.New(1, 1)

	// Orthogonal: up (1,0) free, right (2,1) free, down (1,2) free, left (0,1) free.
	got := m.Neighbours(center)
	want := []Neighbour{
		{location.New(1, 0), 1},
		{location.New(2, 1), 1},
		{location.New(1, 2), 1},
		{location.New(0, 1), 1},
	}
	require.Equal(t, want, got)

	// Entering the cell with cost 3 costs 3+1.
	got = m.Neighbours(location.New(1, 0))
	require.Contains(t, got, Neighbour{center, 4})
	// The wall at (2, 0) is never a neighbour.
	for _, n := range got {
		require.NotEqual(t, location.New(2, 0), n.Location)
	}

	// Diagonal: corners at √2, wall at (2,0) skipped.
	m.Diagonal = true
	got = m.Neighbours(center)
	require.Len(t, got, 7)
	for _, n := range got {
		if n.Location.X != center.X && n.Location.Y != center.Y {
			assert.InDelta(t, math.Sqrt2, float64(n.Cost), 1e-6)
		} else {
			assert.InDelta(t, 1.0, float64(n.Cost), 1e-6)
		}
	}

	// Corner of the map: outside locations are not neighbours.
	got = m.Neighbours(location.New(0, 0))
	require.Len(t, got, 3)
}

func TestParse(t *testing.T) {
	text := `
		S..#
		.#2.
		...F
	`
	m, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())
	require.Equal(t, location.New(0, 0), m.Start())
	require.Equal(t, location.New(3, 2), m.Finish())
	require.Equal(t, 2, m.CellValue(location.New(2, 1)))
	require.False(t, m.IsPassable(location.New(1, 1)))
	require.False(t, m.IsPassable(location.New(3, 0)))
	require.Equal(t, "S..#\n.#2.\n...F\n", m.String())

	// Round trip.
	m2, err := Parse(m.String())
	require.NoError(t, err)
	require.Equal(t, m, m2)

	for _, bad := range []string{"", "S.\n...", "SS", "FF", "S.x"} {
		_, err = Parse(bad)
		require.Error(t, err, "text=%q", bad)
		require.True(t, errors.Is(err, ErrParse), "text=%q", bad)
	}
	require.Panics(t, func() { MustParse("S?F") })
}

func TestLoadYAML(t *testing.T) {
	m, err := LoadYAML(strings.NewReader(`
diagonal: true
rows:
  - "S..."
  - ".##."
  - "...F"
costs:
  - {x: 1, y: 0, value: 7}
`))
	require.NoError(t, err)
	require.True(t, m.Diagonal)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 7, m.CellValue(location.New(1, 0)))
	require.Equal(t, location.New(3, 2), m.Finish())

	m, err = LoadYAML(strings.NewReader(`
width: 5
height: 2
start: [4, 0]
finish: [0, 1]
costs:
  - {x: 2, y: 0, value: -1}
`))
	require.NoError(t, err)
	require.False(t, m.Diagonal)
	require.Equal(t, location.New(4, 0), m.Start())
	require.Equal(t, location.New(0, 1), m.Finish())
	require.False(t, m.IsPassable(location.New(2, 0)))

	for _, bad := range []string{
		"width: 0\nheight: 2\n",
		"rows: [\"S.\", \"..\"]\nwidth: 3\n",
		"width: 2\nheight: 2\nstart: [2, 0]\n",
		"width: 2\nheight: 2\nunknown_field: 1\n",
	} {
		_, err = LoadYAML(strings.NewReader(bad))
		require.True(t, errors.Is(err, ErrParse), "yaml=%q, err=%v", bad, err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("S.\n#F\n"), 0o644))
	m, err := LoadFile(textPath)
	require.NoError(t, err)
	require.Equal(t, location.New(1, 1), m.Finish())

	yamlPath := filepath.Join(dir, "map.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("diagonal: true\nrows: [\"S.\", \"#F\"]\n"), 0o644))
	m, err = LoadFile(yamlPath)
	require.NoError(t, err)
	require.True(t, m.Diagonal)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestLoadSampleMaps(t *testing.T) {
	m, err := LoadFile(filepath.Join("..", "..", "maps", "maze.txt"))
	require.NoError(t, err)
	require.Equal(t, 18, m.Width())
	require.Equal(t, 9, m.Height())
	require.Equal(t, location.New(17, 6), m.Finish())
	require.Equal(t, 5, m.CellValue(location.New(4, 6)))

	m, err = LoadFile(filepath.Join("..", "..", "maps", "terrain.yaml"))
	require.NoError(t, err)
	require.True(t, m.Diagonal)
	require.Equal(t, location.New(11, 7), m.Finish())
	require.Equal(t, 1, m.CellValue(location.New(6, 3)))
	require.Equal(t, 2, m.CellValue(location.New(11, 0)))
}
