package pathfinder

import (
	"github.com/annakuskova/OOP-lab3/internal/parameters"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"runtime"
)

// Options of the search.
type Options struct {
	// HeuristicName is informative only, used for logging.
	HeuristicName string

	// Heuristic used to estimate the remaining cost to the goal.
	Heuristic Heuristic

	// MaxCost, if > 0, discards any waypoint whose cost from the start exceeds it.
	MaxCost float32

	// Workers is the number of goroutines used to build and admit the candidate waypoints
	// of the neighbours of each expanded location.
	Workers int
}

// DefaultOptions uses the Euclidean heuristic, no cost limit and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		HeuristicName: "euclidean",
		Heuristic:     Euclidean,
		Workers:       runtime.NumCPU(),
	}
}

// NewOptionsFromParams creates Options from configuration parameters, starting from
// DefaultOptions. The supported parameters are:
//
//   - heuristic: one of HeuristicNames().
//   - max_cost: see Options.MaxCost.
//   - workers: see Options.Workers.
//
// Parameters are removed from params as they are used, and unknown parameters are an error.
func NewOptionsFromParams(params parameters.Params) (opts Options, err error) {
	opts = DefaultOptions()
	opts.HeuristicName, err = parameters.PopParamOr(params, "heuristic", opts.HeuristicName)
	if err != nil {
		return
	}
	opts.Heuristic, err = HeuristicByName(opts.HeuristicName)
	if err != nil {
		return
	}
	opts.MaxCost, err = parameters.PopParamOr(params, "max_cost", opts.MaxCost)
	if err != nil {
		return
	}
	if math32.IsNaN(opts.MaxCost) || math32.IsInf(opts.MaxCost, 0) {
		err = errors.Errorf("max_cost must be a finite number, got %g", opts.MaxCost)
		return
	}
	if opts.MaxCost < 0 {
		err = errors.Errorf("negative max_cost (%g given) not possible", opts.MaxCost)
		return
	}
	opts.Workers, err = parameters.PopParamOr(params, "workers", opts.Workers)
	if err != nil {
		return
	}
	if opts.Workers < 1 {
		err = errors.Errorf("workers must be >= 1, got %d", opts.Workers)
		return
	}
	err = parameters.CheckAllUsed(params)
	return
}
