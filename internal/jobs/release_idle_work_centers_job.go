package jobs

import (
	"context"
	"log/slog"
	"time"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"

	"github.com/robfig/cron/v3"
)

const releaseIdleWorkCentersJobName = "release_idle_work_centers"

type idleWorkCenterReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseIdleWorkCentersCommand) (int, error)
}

// ReleaseIdleWorkCentersJob frees Busy work centers that no running operation holds,
// e.g. after an operation was cancelled while the centre stayed occupied.
type ReleaseIdleWorkCentersJob struct {
	handler  idleWorkCenterReleaser
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewReleaseIdleWorkCentersJob(
	handler idleWorkCenterReleaser,
	schedule string,
	logger *slog.Logger,
) *ReleaseIdleWorkCentersJob {
	return &ReleaseIdleWorkCentersJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "release_idle_work_centers_job"),
	}
}

func (j *ReleaseIdleWorkCentersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Idle work center release job started", "schedule", j.schedule)
	return nil
}

func (j *ReleaseIdleWorkCentersJob) run(ctx context.Context) {
	ctx, span := tracing.StartSpan(ctx, "ReleaseIdleWorkCentersJob.run")
	defer span.End()

	start := time.Now()
	released, err := j.handler.Handle(ctx, commands.NewReleaseIdleWorkCentersCommand())
	if err != nil {
		metrics.JobRunDuration.WithLabelValues(releaseIdleWorkCentersJobName, "error").Observe(time.Since(start).Seconds())
		span.RecordError(err)
		j.logger.ErrorContext(ctx, "Idle work center release failed", "error", err)
		return
	}

	metrics.JobRunDuration.WithLabelValues(releaseIdleWorkCentersJobName, "ok").Observe(time.Since(start).Seconds())
	metrics.WorkCentersReleasedTotal.Add(float64(released))
	if released > 0 {
		j.logger.InfoContext(ctx, "Idle work centers released", "count", released)
	}
}

func (j *ReleaseIdleWorkCentersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Idle work center release job stopped")
}
