// Package jobs provides the scheduled background tasks of the letter
// service, built on github.com/robfig/cron/v3. Currently one job exists:
// DispatchLettersJob, the 30-second sweep that pushes queued orders through
// the mail carrier.
package jobs

import (
	"fmt"
	"log/slog"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchLettersJob *DispatchLettersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderRepo ports.OrderRepository,
	carrier ports.MailCarrier,
	markSentHandler commands.MarkOrderSentCommandHandler,
	failHandler commands.FailOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchLettersJob: NewDispatchLettersJob(orderRepo, carrier, markSentHandler, failHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchLettersJob.Start(); err != nil {
		return fmt.Errorf("failed to start letter dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchLettersJob.Stop()
}
