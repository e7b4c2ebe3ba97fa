package demo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/logbook"
)

// Runner executes demos from a registry with bounded parallelism and a
// per-demo timeout. Demos are expected to fail; a failing demo never fails
// the run, it only shapes its outcome.
type Runner struct {
	reg         *Registry
	log         *logbook.Logger
	timeout     time.Duration
	parallelism int
}

// NewRunner creates a runner over the registry. A nil logger means no output.
func NewRunner(reg *Registry, log *logbook.Logger, cfg Config) *Runner {
	if log == nil {
		log = logbook.NewNop()
	}
	timeout := time.Duration(cfg.Timeout)
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	return &Runner{
		reg:         reg,
		log:         log,
		timeout:     timeout,
		parallelism: parallelism,
	}
}

// Run executes the named demos, or every registered demo when no names are
// given. The returned error covers runner-level problems only (unknown
// names, cancelled context), never demo failures.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	demos, err := r.resolve(names)
	if err != nil {
		return nil, err
	}

	faultbook.ClearGatheredErrors()
	faultbook.EnableGatherer()
	defer faultbook.DisableGatherer()

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Results: make([]Result, len(demos)),
	}
	r.log.Info("starting run")
	r.log.LineSeparator()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, d := range demos {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := r.runOne(gctx, d)
			mu.Lock()
			report.Results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, faultbook.Wrap(err, "run aborted", faultbook.ClassCancelled)
	}

	report.Finished = time.Now()
	report.tally()
	for _, fbErr := range faultbook.GatheredErrors() {
		report.Gathered = append(report.Gathered, faultbook.ErrorToJSON(fbErr))
	}

	r.log.LineSeparator()
	r.log.Info(report.Summary())
	return report, nil
}

// runOne executes a single demo under trap and timeout and classifies the
// outcome.
func (r *Runner) runOne(ctx context.Context, d Demo) Result {
	dctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	err := faultbook.Trap(func() error {
		return d.Run(dctx)
	})
	duration := time.Since(start)

	result := Result{
		Name:     d.Name,
		Topic:    d.Topic,
		Duration: duration,
		Class:    faultbook.Classify(err),
	}

	switch {
	case err == nil:
		result.Outcome = OutcomeSilent
		r.log.Warn("demo produced no error: " + d.Name)
	case result.Class == d.Expect:
		result.Outcome = OutcomeExpected
		result.Error = err.Error()
		r.log.Expected(err)
	default:
		result.Outcome = OutcomeUnexpected
		result.Error = err.Error()
		result.Detail = faultbook.ErrorToJSON(err)
		r.log.Unexpected(err)
	}
	return result
}

func (r *Runner) resolve(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return r.reg.All(), nil
	}
	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		d, err := r.reg.Get(name)
		if err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}
	return demos, nil
}
