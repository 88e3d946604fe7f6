// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is OrderStatsJob, which logs live order counts per
// status once a minute. Cron expressions include a seconds field.
package jobs
