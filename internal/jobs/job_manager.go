package jobs

import (
	"fmt"
	"log/slog"

	"swifthub/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	backendHealthJob *BackendHealthJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(systemHealthHandler queries.GetSystemHealthQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		backendHealthJob: NewBackendHealthJob(systemHealthHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.backendHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start backend health job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backendHealthJob.Stop()
}
