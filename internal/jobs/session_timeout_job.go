package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/assignment"

	"github.com/robfig/cron/v3"
)

// SessionTimeoutJob expires abandoned scan sessions.
// Runs every 30 seconds so a forgotten piece scan stops blocking the
// operator's workflow within a minute.
type SessionTimeoutJob struct {
	sessions *assignment.SessionStore
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionTimeoutJob creates a new job sweeping the given session store.
func NewSessionTimeoutJob(sessions *assignment.SessionStore, logger *slog.Logger) *SessionTimeoutJob {
	return &SessionTimeoutJob{
		sessions: sessions,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_timeout_job"),
	}
}

// Start begins the session timeout job to run every 30 seconds.
func (j *SessionTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		for _, pending := range j.sessions.SweepExpired(time.Now()) {
			j.logger.InfoContext(ctx, "Scan session expired",
				"operator", pending.Operator().String(),
				"barcode", pending.Barcode().String(),
				"startedAt", pending.StartedAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session timeout job started (running every 30 seconds)")
	return nil
}

// Stop stops the session timeout job.
func (j *SessionTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session timeout job stopped")
}
