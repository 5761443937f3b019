// astar searches the cheapest path between the start and finish of a grid map, and prints it.
//
// Example:
//
//	$ go run ./cmd/astar -map=maps/maze.txt -config="heuristic=manhattan,workers=2" -steps
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/annakuskova/OOP-lab3/internal/grid"
	"github.com/annakuskova/OOP-lab3/internal/parameters"
	"github.com/annakuskova/OOP-lab3/internal/pathfinder"
	"github.com/annakuskova/OOP-lab3/internal/profilers"
	"github.com/annakuskova/OOP-lab3/internal/ui/cli"
	"github.com/annakuskova/OOP-lab3/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"strconv"
	"time"
)

var (
	_ = fmt.Printf

	flagMap      = flag.String("map", "", "Map file: YAML (.yaml, .yml) or text, with one character per cell.")
	flagConfig   = flag.String("config", "", "Search configuration, e.g. \"heuristic=manhattan,max_cost=100,workers=4\".")
	flagColor    = flag.Bool("color", true, "Print the map with colors.")
	flagSteps    = flag.Bool("steps", false, "Print every expansion of the search.")
	flagEvery    = flag.Int("every", 0, "With -steps, also print the map every n expansions (0 to disable).")
	flagDiagonal = flag.String("diagonal", "", "If set to true or false, overrides whether the map file allows diagonal moves.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if err := checkFlags(*flagMap, *flagEvery); err != nil {
		klog.Exitf("%v", err)
	}

	// Capture Control+C.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	spinning.OnInterrupt(cancel, 3*time.Second)
	profiler := profilers.Setup(ctx)
	defer profiler.Stop()

	m := must.M1(grid.LoadFile(*flagMap))
	if err := overrideDiagonal(m, *flagDiagonal); err != nil {
		klog.Exitf("%v", err)
	}
	opts, err := pathfinder.NewOptionsFromParams(parameters.NewFromConfigString(*flagConfig))
	if err != nil {
		klog.Exitf("Invalid -config=%q: %+v", *flagConfig, err)
	}
	searcher, err := pathfinder.New(m, m.Start(), m.Finish(), opts)
	if err != nil {
		klog.Exitf("Failed to start search: %+v", err)
	}

	ui := cli.New(*flagColor)
	ui.PrintMap(m, cli.Overlay{})
	fmt.Println()

	var result pathfinder.Result
	if *flagSteps {
		result, err = stepThrough(ctx, ui, m, searcher)
	} else {
		spinner := spinning.New(ctx, os.Stdout, nil)
		result, err = searcher.Run(ctx)
		spinner.Done()
	}

	ui.PrintMap(m, cli.OverlayFromState(searcher.State(), result.Path))
	ui.PrintResult(result, err)
}

// checkFlags validates the flags that don't depend on the map.
func checkFlags(mapPath string, every int) error {
	if mapPath == "" {
		return errors.New("please set -map with the path to a map file")
	}
	if every < 0 {
		return errors.Errorf("invalid -every=%d, it must be >= 0", every)
	}
	return nil
}

// overrideDiagonal sets the diagonal moves of the map according to the -diagonal flag value:
// empty keeps what the map file defines.
func overrideDiagonal(m *grid.Map, value string) error {
	if value == "" {
		return nil
	}
	diagonal, err := strconv.ParseBool(value)
	if err != nil {
		return errors.Wrapf(err, "invalid -diagonal=%q, it must be true or false", value)
	}
	m.Diagonal = diagonal
	return nil
}

// stepThrough runs the search one expansion at a time, printing each step.
func stepThrough(ctx context.Context, ui *cli.UI, m *grid.Map, searcher *pathfinder.Searcher) (pathfinder.Result, error) {
	for {
		snapshot, err := searcher.Step(ctx)
		if err != nil {
			return searcher.Result(), err
		}
		if snapshot.Current != nil {
			ui.PrintStep(snapshot)
		}
		if snapshot.Done {
			break
		}
		if *flagEvery > 0 && snapshot.Step%*flagEvery == 0 {
			ui.PrintMap(m, cli.OverlayFromState(searcher.State(), nil))
			fmt.Println()
		}
	}
	// Run on a finished search only returns the result, and ErrNoPath if it wasn't found.
	return searcher.Run(ctx)
}
