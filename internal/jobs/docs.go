// Package jobs provides scheduled background tasks for the marketplace backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. TokenPurgeJob - Runs hourly to delete expired access tokens. Resolution
// already treats expired tokens as unknown, so the job is purely hygiene and
// its timing is not load-bearing.
package jobs
