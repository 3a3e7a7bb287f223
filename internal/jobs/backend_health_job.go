package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"swifthub/internal/core/application/usecases/queries"
)

// BackendHealthJob probes the backend systems on a schedule so outages show
// up in the logs before a request runs into them.
type BackendHealthJob struct {
	handler queries.GetSystemHealthQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBackendHealthJob creates a job probing backend health every 30 seconds.
func NewBackendHealthJob(handler queries.GetSystemHealthQueryHandler, logger *slog.Logger) *BackendHealthJob {
	return &BackendHealthJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backend_health_job"),
	}
}

// Start begins the health probe schedule.
func (j *BackendHealthJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		response, err := j.handler.Handle(ctx, queries.NewGetSystemHealthQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Backend health job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Backend health probed",
			"overall", response.Overall, "systems", response.Systems)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backend health job started (running every 30 seconds)")
	return nil
}

// Stop stops the health probe schedule.
func (j *BackendHealthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backend health job stopped")
}
