// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the warehouse service.
//
// # Available Jobs
//
// 1. SessionTimeoutJob - Runs every 30 seconds to expire abandoned piece scan sessions
// 2. RackReportJob - Runs every minute to log rack occupancy and flag Warning/Overdue slots
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(sessionStore, rackMapHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The timeout sweep runs on "*/30 * * * * *" so a forgotten scan unblocks the
// operator within a minute; the occupancy report runs on "0 * * * * *".
//
// # Error Handling
//
// - Timeout job has no failure mode; it only logs the sessions it expires
// - Report job logs query failures as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
