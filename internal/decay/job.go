package decay

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Job adapts a Sweeper to worker.Job so the scheduler can run it
type Job struct {
	sweeper  Sweeper
	onReport func(domain.SweepReport)
}

// NewJob creates a decay job. onReport, if set, receives every finished report.
func NewJob(sweeper Sweeper, onReport func(domain.SweepReport)) *Job {
	return &Job{sweeper: sweeper, onReport: onReport}
}

// Name identifies the job in logs
func (j *Job) Name() string { return JobName }

// Process runs one sweep. Per-plant errors are reported as a single summary error.
func (j *Job) Process(ctx context.Context) error {
	report := j.sweeper.RunSweep(ctx)
	if j.onReport != nil {
		j.onReport(report)
	}
	if len(report.Errors) > 0 {
		return fmt.Errorf("%s (%d): %w", ErrMsgSweepFailed, len(report.Errors), errors.Join(report.Errors...))
	}
	return nil
}
