// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order workflow.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every 30 seconds to complete shipped orders
// whose parcel the courier has reported as delivered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(deliveredOrdersHandler, transitionHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Concurrency conflicts are skipped silently; the next tick re-reads the
//     order and retries against fresh state
//   - Illegal transitions are skipped too, the order was cancelled or
//     completed between the query and the command
//   - All other errors are logged as they indicate system issues
package jobs
