package grid

// This file contains the loading of maps from the text format and from YAML files.

import (
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"k8s.io/klog/v2"
	"os"
	"path/filepath"
	"strings"
)

// Characters of the text format.
const (
	FreeRune   = '.'
	WallRune   = '#'
	StartRune  = 'S'
	FinishRune = 'F'
)

// ErrParse is returned (wrapped) for malformed map descriptions.
var ErrParse = errors.New("failed to parse map")

// Parse creates a map from its text representation: one line per row, one character per cell.
//
//   - '.': free cell (cost 0).
//   - '#': wall.
//   - '1' to '9': cell with the given terrain cost.
//   - 'S', 'F': start and finish cells (cost 0). Each may appear at most once.
//
// Leading and trailing blank lines are ignored, as well as surrounding spaces on each line.
// All rows must have the same width.
func Parse(text string) (*Map, error) {
	return parseRows(splitRows(text))
}

// MustParse is like Parse, but panics with an exception on error.
// It is meant for fixtures and tests.
func MustParse(text string) *Map {
	m, err := Parse(text)
	if err != nil {
		exceptions.Panicf("grid.MustParse: %+v", err)
	}
	return m
}

func splitRows(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func parseRows(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrParse, "empty map")
	}
	width := len(rows[0])
	m, err := New(width, len(rows))
	if err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	var foundStart, foundFinish bool
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrParse, "row %d has width %d, but the first row has width %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			loc := location.New(x, y)
			ch := row[x]
			switch {
			case ch == FreeRune:
				// Cells are created free.
			case ch == WallRune:
				m.cells[y*width+x] = Impassable
			case ch >= '1' && ch <= '9':
				m.cells[y*width+x] = int(ch - '0')
			case ch == StartRune:
				if foundStart {
					return nil, errors.Wrapf(ErrParse, "second start at %s", loc)
				}
				foundStart = true
				m.start = loc
			case ch == FinishRune:
				if foundFinish {
					return nil, errors.Wrapf(ErrParse, "second finish at %s", loc)
				}
				foundFinish = true
				m.finish = loc
			default:
				return nil, errors.Wrapf(ErrParse, "invalid character %q at %s", ch, loc)
			}
		}
	}
	return m, nil
}

// CellCost overrides the terrain cost of one cell in a YAML map file.
type CellCost struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Value int `yaml:"value"`
}

// FileSpec is the YAML representation of a map.
//
// Either Rows is given (in the text format of Parse), or Width and Height are given and all
// cells start free. Start, Finish and Costs are applied afterwards.
type FileSpec struct {
	Width    int        `yaml:"width,omitempty"`
	Height   int        `yaml:"height,omitempty"`
	Diagonal bool       `yaml:"diagonal"`
	Start    *[2]int    `yaml:"start,omitempty"`
	Finish   *[2]int    `yaml:"finish,omitempty"`
	Rows     []string   `yaml:"rows,omitempty"`
	Costs    []CellCost `yaml:"costs,omitempty"`
}

// Build creates the map described by the FileSpec.
func (spec *FileSpec) Build() (*Map, error) {
	var (
		m   *Map
		err error
	)
	if len(spec.Rows) > 0 {
		rows := make([]string, len(spec.Rows))
		for ii, row := range spec.Rows {
			rows[ii] = strings.TrimSpace(row)
		}
		m, err = parseRows(rows)
		if err != nil {
			return nil, err
		}
		if (spec.Width != 0 && spec.Width != m.width) || (spec.Height != 0 && spec.Height != m.height) {
			return nil, errors.Wrapf(ErrParse, "rows describe a %dx%d map, but width=%d, height=%d were given",
				m.width, m.height, spec.Width, spec.Height)
		}
	} else {
		m, err = New(spec.Width, spec.Height)
		if err != nil {
			return nil, errors.Wrap(ErrParse, err.Error())
		}
	}
	m.Diagonal = spec.Diagonal
	if spec.Start != nil {
		if err = m.SetStart(location.New(spec.Start[0], spec.Start[1])); err != nil {
			return nil, errors.Wrap(ErrParse, err.Error())
		}
	}
	if spec.Finish != nil {
		if err = m.SetFinish(location.New(spec.Finish[0], spec.Finish[1])); err != nil {
			return nil, errors.Wrap(ErrParse, err.Error())
		}
	}
	for _, cost := range spec.Costs {
		if err = m.SetCellValue(location.New(cost.X, cost.Y), cost.Value); err != nil {
			return nil, errors.Wrap(ErrParse, err.Error())
		}
	}
	return m, nil
}

// LoadYAML reads a FileSpec in YAML from r and builds the map.
func LoadYAML(r io.Reader) (*Map, error) {
	var spec FileSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, errors.Wrapf(ErrParse, "yaml: %v", err)
	}
	return spec.Build()
}

// LoadFile loads a map from a file: files ending in ".yaml" or ".yml" are read with LoadYAML,
// anything else is read in the text format of Parse.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open map file %q", path)
	}
	defer func() { _ = f.Close() }()

	var m *Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = LoadYAML(f)
	default:
		var contents []byte
		contents, err = io.ReadAll(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read map file %q", path)
		}
		m, err = Parse(string(contents))
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "map file %q", path)
	}
	klog.V(1).Infof("Loaded %dx%d map from %q: start=%s, finish=%s, diagonal=%v",
		m.width, m.height, path, m.start, m.finish, m.Diagonal)
	return m, nil
}
