package jobs

import (
	"context"
	"log/slog"

	"servicedesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TokenPurgeJob deletes expired access tokens on a schedule. Expired tokens
// are already rejected at resolve time; the purge keeps the table from
// accumulating dead rows.
type TokenPurgeJob struct {
	handler commands.PurgeExpiredTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenPurgeJob creates a job that purges expired tokens hourly.
func NewTokenPurgeJob(handler commands.PurgeExpiredTokensCommandHandler, logger *slog.Logger) *TokenPurgeJob {
	return &TokenPurgeJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "token_purge_job"),
	}
}

// Start begins the token purge job on an hourly schedule.
func (j *TokenPurgeJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredTokensCommand()

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Token purge job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired access tokens", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token purge job started (running hourly)")
	return nil
}

// Stop stops the token purge job.
func (j *TokenPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token purge job stopped")
}
