package bootstrap

import (
	"errors"
	"time"
)

// ErrSkipped marks a step whose precondition was not met, for example a
// mutation step after the partition layout turned out to be unreadable.
// Skipped steps are reported but counted as neither success nor failure.
var ErrSkipped = errors.New("step skipped")

// Step is one named unit of the provisioning run. Run returns nil on
// success, ErrSkipped (possibly wrapped) when the step did not apply, and
// any other error on failure. Failures never stop the pipeline.
type Step struct {
	Name string
	Run  func() error
}

type StepResult struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

func (r StepResult) Failed() bool { return r.Err != nil && !r.Skipped }
