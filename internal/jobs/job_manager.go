package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the jobs, with seconds.
type Schedules struct {
	OutboxRelay            string
	ReleaseIdleWorkCenters string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob            *OutboxRelayJob
	releaseIdleWorkCentersJob *ReleaseIdleWorkCentersJob
}

func NewJobManager(
	relayHandler outboxRelayer,
	releaseHandler idleWorkCenterReleaser,
	schedules Schedules,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:            NewOutboxRelayJob(relayHandler, schedules.OutboxRelay, outboxBatchSize, logger),
		releaseIdleWorkCentersJob: NewReleaseIdleWorkCentersJob(releaseHandler, schedules.ReleaseIdleWorkCenters, logger),
	}
}

// StartAll starts all scheduled jobs. When one fails to start the others are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.releaseIdleWorkCentersJob.Start(); err != nil {
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start idle work center release job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running invocations to finish.
func (jm *JobManager) StopAll() {
	jm.releaseIdleWorkCentersJob.Stop()
	jm.outboxRelayJob.Stop()
}
