package bootstrap

import (
	"errors"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/gofrs/uuid"
)

// Report aggregates the per-step results of one provisioning run.
type Report struct {
	RunID   string
	Results []StepResult
}

func (r Report) FailedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Failed() {
			count++
		}
	}
	return count
}

func (r Report) SkippedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Skipped {
			count++
		}
	}
	return count
}

// Runner executes steps strictly sequentially, recording a result per step
// and continuing past failures. A first-boot run must not strand the device
// half-configured because one non-critical step failed.
type Runner struct {
	logger      boshlog.Logger
	timeService clock.Clock
	logTag      string
}

func NewRunner(logger boshlog.Logger, timeService clock.Clock) Runner {
	return Runner{
		logger:      logger,
		timeService: timeService,
		logTag:      "bootstrapRunner",
	}
}

func (r Runner) Run(steps []Step) Report {
	report := Report{RunID: r.newRunID()}

	for _, step := range steps {
		started := r.timeService.Now()
		err := step.Run()
		duration := r.timeService.Since(started)

		result := StepResult{
			Name:     step.Name,
			Err:      err,
			Skipped:  errors.Is(err, ErrSkipped),
			Duration: duration,
		}

		switch {
		case result.Skipped:
			r.logger.Info(r.logTag, "Step '%s' SKIPPED", step.Name)
		case result.Failed():
			r.logger.Error(r.logTag, "Step '%s' FAILED after %s: %s", step.Name, duration, err.Error())
		default:
			r.logger.Info(r.logTag, "Step '%s' finished in %s", step.Name, duration)
		}

		report.Results = append(report.Results, result)
	}

	return report
}

func (r Runner) newRunID() string {
	id, err := uuid.NewV4()
	if err != nil {
		r.logger.Debug(r.logTag, "Generating run ID: %s", err.Error())
		return ""
	}
	return id.String()
}
