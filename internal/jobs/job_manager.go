package jobs

import (
	"fmt"
	"log/slog"

	"servicedesk/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	tokenPurgeJob *TokenPurgeJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	purgeExpiredTokensHandler commands.PurgeExpiredTokensCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tokenPurgeJob: NewTokenPurgeJob(purgeExpiredTokensHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start token purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenPurgeJob.Stop()
}
