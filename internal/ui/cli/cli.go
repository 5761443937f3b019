// Package cli implements a command-line UI that prints maps, the progress of the search
// and the path found.
package cli

import (
	"fmt"
	"github.com/annakuskova/OOP-lab3/internal/astar"
	"github.com/annakuskova/OOP-lab3/internal/generics"
	"github.com/annakuskova/OOP-lab3/internal/grid"
	"github.com/annakuskova/OOP-lab3/internal/location"
	"github.com/annakuskova/OOP-lab3/internal/pathfinder"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

// Characters used for the search overlay on top of the map.
const (
	PathRune   = '*'
	OpenRune   = '+'
	ClosedRune = ','
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// terminalWidth returns the width of the terminal of stdout, or 0 if it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printCentered prints the block of lines centered in a terminal of the given width.
func printCentered(w io.Writer, block string, width int) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((width-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(w)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Overlay is the search information drawn on top of the map.
type Overlay struct {
	Path         []location.Location
	Open, Closed generics.Set[location.Location]
}

// OverlayFromState creates an Overlay with the open and closed locations of the search state,
// and the given path (it can be nil).
func OverlayFromState[W astar.Waypoint](state *astar.State[W], path []location.Location) Overlay {
	return Overlay{
		Path:   path,
		Open:   generics.SetWith(state.OpenLocations()...),
		Closed: generics.SetWith(state.ClosedLocations()...),
	}
}

// UI prints to a writer, usually os.Stdout.
type UI struct {
	w             io.Writer
	color, center bool

	styleWall, styleTerrain, styleEndpoint lipgloss.Style
	stylePath, styleOpen, styleClosed      lipgloss.Style
}

// New creates a UI that prints to stdout, centered in the terminal.
// If color is true, cells are colored with ANSI sequences.
func New(color bool) *UI {
	return NewWithWriter(os.Stdout, color, true)
}

// NewWithWriter creates a UI that prints to w. If center is true, maps are centered on the
// width of the terminal attached to stdout.
func NewWithWriter(w io.Writer, color, center bool) *UI {
	ui := &UI{w: w, color: color, center: center}
	ui.styleWall = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ui.styleTerrain = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ui.styleEndpoint = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13"))
	ui.stylePath = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	ui.styleOpen = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	ui.styleClosed = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	return ui
}

// render applies the style if colors are enabled.
func (ui *UI) render(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// RenderMap returns the map as text, one character per cell (see grid.Parse for the format),
// with the overlay drawn on top of free and terrain cells: the path has priority over closed
// locations, and those over open locations.
func (ui *UI) RenderMap(m *grid.Map, overlay Overlay) string {
	onPath := generics.SetWith(overlay.Path...)
	var sb strings.Builder
	for y := range m.Height() {
		for x := range m.Width() {
			loc := location.New(x, y)
			ch := m.CellRune(loc)
			cell := string(ch)
			switch {
			case ch == grid.StartRune || ch == grid.FinishRune:
				cell = ui.render(ui.styleEndpoint, cell)
			case ch == grid.WallRune:
				cell = ui.render(ui.styleWall, cell)
			case onPath.Has(loc):
				cell = ui.render(ui.stylePath, string(PathRune))
			case overlay.Closed.Has(loc):
				cell = ui.render(ui.styleClosed, string(ClosedRune))
			case overlay.Open.Has(loc):
				cell = ui.render(ui.styleOpen, string(OpenRune))
			case ch != grid.FreeRune:
				cell = ui.render(ui.styleTerrain, cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintMap prints the map with the overlay, see RenderMap.
func (ui *UI) PrintMap(m *grid.Map, overlay Overlay) {
	block := ui.RenderMap(m, overlay)
	if ui.center {
		printCentered(ui.w, block, terminalWidth())
		return
	}
	_, _ = fmt.Fprint(ui.w, block)
}

// PrintStep prints one line describing a step of the search.
func (ui *UI) PrintStep(snapshot pathfinder.Snapshot) {
	current := "-"
	if snapshot.Current != nil {
		current = snapshot.Current.String()
	}
	_, _ = fmt.Fprintf(ui.w, "Step #%d: expanded %s, %d open, %d closed\n",
		snapshot.Step, current, snapshot.NumOpen, snapshot.NumClosed)
}

// PrintResult prints a banner with the outcome of the search.
func (ui *UI) PrintResult(result pathfinder.Result, err error) {
	var msg string
	var background string
	switch {
	case result.Found:
		msg = fmt.Sprintf("*** Path found: cost %.2f, %d steps, %d locations expanded ***",
			result.Cost, len(result.Path)-1, result.Expanded)
		background = "10"
	case errors.Is(err, pathfinder.ErrNoPath):
		msg = fmt.Sprintf("*** No path: %d locations expanded ***", result.Expanded)
		background = "9"
	default:
		msg = fmt.Sprintf("*** Search interrupted: %v ***", err)
		background = "11"
	}
	if ui.color {
		msg = lipgloss.NewStyle().
			Background(lipgloss.Color(background)).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2).
			Render(msg)
	}
	_, _ = fmt.Fprintln(ui.w)
	if ui.center {
		printCentered(ui.w, msg, terminalWidth())
	} else {
		_, _ = fmt.Fprintln(ui.w, msg)
	}
	if result.Found {
		_, _ = fmt.Fprintf(ui.w, "Path: %s\n", strings.Join(location.Strings(result.Path), " "))
	}
}
