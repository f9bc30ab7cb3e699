package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayHandler is satisfied by *commands.RelayOrderEventsCommandHandler.
type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OutboxRelayJob periodically publishes stored order events to the broker.
type OutboxRelayJob struct {
	handler  relayHandler
	cmd      commands.RelayOrderEventsCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six field cron
// expression (seconds first); each run publishes at most one batch and is
// bounded by timeout.
func NewOutboxRelayJob(
	handler relayHandler,
	cmd commands.RelayOrderEventsCommand,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run publishes one batch. Failures are logged and retried on the next tick;
// unpublished events stay in the outbox.
func (j *OutboxRelayJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	published, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox relay published events", "count", published)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
