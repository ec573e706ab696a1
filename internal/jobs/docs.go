// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order collection.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute and reports how many orders are
// waiting for vendor action, so aging queues show up in the logs before
// students start asking at the counter.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepo, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the schedule keeps running; a broken store read
// on one tick does not stop future ticks.
package jobs
