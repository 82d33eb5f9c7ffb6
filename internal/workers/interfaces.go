// Package workers runs the background jobs of silkread.
//
// A Worker starts its job in Run and must not block; Stop waits for the job
// to finish. Workers groups several of them so commands can start and stop
// everything in one call.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
//	type MyWorker struct{ job service.WatchJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, "user1.dat", 0) }
//	func (w *MyWorker) Stop()                   { w.job.Stop() }
type Worker interface {
	// Run starts the job. It returns immediately; the job stops when ctx is
	// cancelled or Stop is called.
	Run(ctx context.Context)

	// Stop halts the job and blocks until it has exited.
	Stop()
}
