// Package workers provides the background executor that runs analysis
// launches off the caller's goroutine.
//
// Jobs are submitted without blocking; a [Pool] caps how many of them
// execute at once and converts a panicking job into a logged failure
// instead of crashing the host.
package workers

import "context"

// Job is a unit of background work. The context is cancelled when the pool
// stops; a job must return promptly once that happens.
type Job func(ctx context.Context) error

// Executor is the contract consumed by services that offload work.
//
// Example implementation:
//
//	type inline struct{}
//
//	func (inline) Submit(job workers.Job) error { return job(context.Background()) }
//	func (inline) Stop(context.Context) error   { return nil }
type Executor interface {
	// Submit schedules job and returns immediately. It fails with
	// ErrPoolStopped once Stop has been called.
	Submit(job Job) error

	// Stop cancels every running job and waits until they return or ctx
	// expires.
	Stop(ctx context.Context) error
}
