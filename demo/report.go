package demo

import (
	"fmt"
	"time"

	"github.com/faultbook/faultbook"
)

// Outcome says how a demo run ended relative to what it set out to provoke.
type Outcome string

const (
	// OutcomeExpected means the demo produced exactly the failure class it
	// was built for.
	OutcomeExpected Outcome = "expected"
	// OutcomeUnexpected means the demo failed with a different class than
	// announced.
	OutcomeUnexpected Outcome = "unexpected"
	// OutcomeSilent means the demo produced no error at all.
	OutcomeSilent Outcome = "silent"
)

// Result is the outcome of one demo run.
type Result struct {
	Name     string          `json:"name"`
	Topic    string          `json:"topic,omitempty"`
	Outcome  Outcome         `json:"outcome"`
	Class    faultbook.Class `json:"class,omitempty"`
	Error    string          `json:"error,omitempty"`
	Detail   map[string]any  `json:"detail,omitempty"`
	Duration time.Duration   `json:"duration_ns"`
}

// Report is the aggregate of one runner invocation.
type Report struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Results  []Result  `json:"results"`

	Expected   int `json:"expected"`
	Unexpected int `json:"unexpected"`
	Silent     int `json:"silent"`

	// Gathered holds deduplicated unexpected faults collected during the run.
	Gathered []map[string]any `json:"gathered,omitempty"`
}

// Ok reports whether every demo produced the failure it announced.
func (r *Report) Ok() bool {
	return r.Unexpected == 0 && r.Silent == 0
}

// Summary returns a one-line human-readable digest of the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("run %s: %d demos, %d expected, %d unexpected, %d silent in %s",
		r.RunID, len(r.Results), r.Expected, r.Unexpected, r.Silent,
		r.Finished.Sub(r.Started).Round(time.Millisecond))
}

func (r *Report) tally() {
	r.Expected, r.Unexpected, r.Silent = 0, 0, 0
	for _, result := range r.Results {
		switch result.Outcome {
		case OutcomeExpected:
			r.Expected++
		case OutcomeUnexpected:
			r.Unexpected++
		case OutcomeSilent:
			r.Silent++
		}
	}
}
