package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RackReportJob refreshes the rack occupancy picture on a schedule.
// Slot statuses are recomputed on every read, so the job's role is to keep
// an up-to-date summary in the logs and to surface Warning/Overdue slots
// without anyone opening the dashboard.
type RackReportJob struct {
	handler queries.GetRackMapQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRackReportJob creates a new job reporting on the given rack map view.
func NewRackReportJob(handler queries.GetRackMapQueryHandler, logger *slog.Logger) *RackReportJob {
	return &RackReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rack_report_job"),
	}
}

// Start begins the rack report job to run every minute.
func (j *RackReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetRackMapQuery()

		slots, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Rack report job failed", "error", err)
			return
		}

		counts := map[string]int{}
		for _, slot := range slots {
			counts[slot.Status]++

			if slot.Status == "Warning" || slot.Status == "Overdue" {
				j.logger.WarnContext(ctx, "Shipment stored beyond the normal window",
					"rackId", slot.RackID,
					"barcode", slot.OccupantBarcode,
					"ageDays", slot.OccupantAgeDays,
					"status", slot.Status,
				)
			}
		}

		j.logger.InfoContext(ctx, "Rack occupancy",
			"free", counts["Free"],
			"occupied", counts["Occupied"],
			"warning", counts["Warning"],
			"overdue", counts["Overdue"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rack report job started (running every minute)")
	return nil
}

// Stop stops the rack report job.
func (j *RackReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rack report job stopped")
}
