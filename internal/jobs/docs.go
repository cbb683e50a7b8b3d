// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. OutboxRelayJob publishes committed domain events from the outbox table to Kafka.
//     A run keeps relaying batches until one comes back short.
//  2. ReleaseIdleWorkCentersJob frees Busy work centers that no InProgress or Paused
//     operation references.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, releaseHandler, jobs.Schedules{
//		OutboxRelay:            "*/5 * * * * *",
//		ReleaseIdleWorkCenters: "0 */10 * * * *",
//	}, 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never stop on a failed run. The error is logged and counted, and the next tick
// retries. Overlapping runs of the same job are skipped.
package jobs
