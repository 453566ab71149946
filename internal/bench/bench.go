// Package bench times repeated invocations of an operation and
// compares a candidate against baselines. It is used by the seqbench
// command to compare lazy pipelines with eager slice code, and holds
// no state between calls.
package bench

import (
	"fmt"
	"time"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/ers"
)

// Case is a named operation to time.
type Case struct {
	Name string
	Op   func()
}

// Result is the timing of one Case.
type Result struct {
	Name    string        `json:"name"`
	Runs    int           `json:"runs"`
	Total   time.Duration `json:"total_ns"`
	Average time.Duration `json:"average_ns"`
}

// Run calls op runs times and reports the total and average
// duration.
func Run(name string, runs int, op func()) (Result, error) {
	if err := validate(runs, Case{Name: name, Op: op}); err != nil {
		return Result{}, err
	}
	return run(name, runs, op), nil
}

func run(name string, runs int, op func()) Result {
	start := time.Now()
	for i := 0; i < runs; i++ {
		op()
	}
	total := time.Since(start)

	return Result{
		Name:    name,
		Runs:    runs,
		Total:   total,
		Average: total / time.Duration(runs),
	}
}

func validate(runs int, cases ...Case) error {
	if runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ers.ErrInvalidInput, runs)
	}

	missing := lazy.Slice(cases).Find(func(c Case) bool { return c.Op == nil })
	if c, ok := missing.Get(); ok {
		return fmt.Errorf("%w: case %q has no operation", ers.ErrInvalidInput, c.Name)
	}

	return nil
}

// Suite compares a candidate operation against one or more baseline
// implementations of the same computation.
type Suite struct {
	Name        string
	Description string
	Candidate   Case
	Baselines   []Case
}

// Report holds the results of running a Suite.
type Report struct {
	Suite     string   `json:"suite"`
	Candidate Result   `json:"candidate"`
	Baselines []Result `json:"baselines"`
}

// Run times the candidate and then each baseline, in order, each for
// the same number of runs.
func (s Suite) Run(runs int) (Report, error) {
	if err := validate(runs, append([]Case{s.Candidate}, s.Baselines...)...); err != nil {
		return Report{}, fmt.Errorf("suite %q: %w", s.Name, err)
	}

	timed := func(c Case) Result { return run(c.Name, runs, c.Op) }

	return Report{
		Suite:     s.Name,
		Candidate: timed(s.Candidate),
		Baselines: lazy.Map(lazy.Slice(s.Baselines), timed).Collect(),
	}, nil
}

// Faster reports whether the candidate's average beat every
// baseline's average. A report with no baselines is never faster.
func (r Report) Faster() bool {
	if len(r.Baselines) == 0 {
		return false
	}

	slower := lazy.Slice(r.Baselines).Find(func(b Result) bool { return b.Average <= r.Candidate.Average })
	return !slower.Ok()
}

// Fastest returns the result with the lowest average among the
// candidate and baselines.
func (r Report) Fastest() Result {
	all := lazy.Slice(append([]Result{r.Candidate}, r.Baselines...))
	return all.Reduce(func(best, next Result) Result {
		if next.Average < best.Average {
			return next
		}
		return best
	}).Resolve()
}
