// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes stored order events to Kafka. It runs on a six
// field cron schedule (every second by default), skips a tick while the
// previous batch is still running and leaves failed batches in the outbox
// for the next run.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(handler, cmd, "* * * * * *", 5*time.Second, logger)
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//	    return err
//	}
//	defer jobManager.StopAll()
package jobs
