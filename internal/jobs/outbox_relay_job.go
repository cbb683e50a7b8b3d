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

const outboxRelayJobName = "outbox_relay"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes committed domain events to the broker on a schedule.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron expression.
func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// run drains the outbox batch by batch until a batch comes back short.
func (j *OutboxRelayJob) run(ctx context.Context, cmd commands.RelayOutboxCommand) {
	ctx, span := tracing.StartSpan(ctx, "OutboxRelayJob.run")
	defer span.End()

	start := time.Now()
	total := 0
	for {
		published, err := j.handler.Handle(ctx, cmd)
		total += published
		if err != nil {
			metrics.OutboxPublishFailuresTotal.Inc()
			metrics.JobRunDuration.WithLabelValues(outboxRelayJobName, "error").Observe(time.Since(start).Seconds())
			span.RecordError(err)
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", total)
			return
		}
		metrics.OutboxPublishedTotal.Add(float64(published))
		if published < j.batchSize {
			break
		}
	}

	metrics.JobRunDuration.WithLabelValues(outboxRelayJobName, "ok").Observe(time.Since(start).Seconds())
	if total > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", total)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
