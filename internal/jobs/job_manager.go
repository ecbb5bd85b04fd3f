package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/assignment"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionTimeoutJob *SessionTimeoutJob
	rackReportJob     *RackReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the session store and rack map query handler as dependencies to wire
// up the job execution.
func NewJobManager(
	sessions *assignment.SessionStore,
	rackMapHandler queries.GetRackMapQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionTimeoutJob: NewSessionTimeoutJob(sessions, logger),
		rackReportJob:     NewRackReportJob(rackMapHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start session timeout job: %w", err)
	}

	if err := jm.rackReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionTimeoutJob.Stop()
		return fmt.Errorf("failed to start rack report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionTimeoutJob.Stop()
	jm.rackReportJob.Stop()
}
