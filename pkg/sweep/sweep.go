// Package sweep evaluates several hull designs concurrently. Each case
// runs the full pipeline (sections, loft, integrity check, equilibrium
// solve) in its own worker with no shared state; within one case the
// stages are strictly sequential since each consumes the previous
// stage's validated output.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/chazu/keelson/pkg/hull"
	"github.com/chazu/keelson/pkg/hydro"
	"github.com/chazu/keelson/pkg/loft"
)

// Options control the pipeline discretization and the worker count.
// Zero values select defaults.
type Options struct {
	Stations      int
	ProfilePoints int
	Workers       int
}

func (o Options) withDefaults() Options {
	if o.Stations == 0 {
		o.Stations = hull.DefaultStationCount
	}
	if o.ProfilePoints == 0 {
		o.ProfilePoints = hull.DefaultProfilePoints
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Case is one hull design plus its loading condition.
type Case struct {
	Name         string
	Params       hull.Parameters
	Style        hull.Style
	TargetMass   float64
	FluidDensity float64
}

// Outcome is the result of one case, in input order. Err is set when
// the pipeline aborted (invalid parameters or a failed integrity
// check); out-of-range loading conditions appear as Equilibrium.Status
// instead, since they are analysis outcomes, not failures.
type Outcome struct {
	Name        string
	Report      hydro.Report
	Equilibrium hydro.Result
	Err         error
}

// Run evaluates all cases with a bounded worker pool and returns one
// outcome per case in input order. Cancelling the context abandons
// cases that have not started; running cases finish.
func Run(ctx context.Context, cases []Case, opts Options) []Outcome {
	opts = opts.withDefaults()

	outcomes := make([]Outcome, len(cases))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = evaluate(cases[i], opts)
			}
		}()
	}

dispatch:
	for i := range cases {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(cases); j++ {
				outcomes[j] = Outcome{Name: cases[j].Name, Err: ctx.Err()}
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

// evaluate runs the full pipeline for one case.
func evaluate(c Case, opts Options) Outcome {
	out := Outcome{Name: c.Name}

	gen, err := hull.NewGenerator(c.Params, c.Style)
	if err != nil {
		out.Err = err
		return out
	}

	stations, err := gen.Stations(opts.Stations, opts.ProfilePoints)
	if err != nil {
		out.Err = err
		return out
	}

	surface, err := loft.Loft(stations)
	if err != nil {
		out.Err = err
		return out
	}
	if err := surface.Validate().Err(); err != nil {
		out.Err = fmt.Errorf("case %s: %w", c.Name, err)
		return out
	}

	density := c.FluidDensity
	if density == 0 {
		density = hydro.DefaultFluidDensity
	}

	out.Equilibrium = hydro.SolveDraft(surface, c.TargetMass, density)
	out.Report = hydro.BuildReport(surface, out.Equilibrium.Draft)
	return out
}
