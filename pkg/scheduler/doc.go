// Package scheduler implements the worker pool the fixture importer uses to
// fan out uploads.
//
// A Scheduler owns N workers and a FIFO queue of pending work. Every call to
// AddWork returns a Future right away; the result arrives on Future.C() once a
// worker has run the work function.
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                        Scheduler[T]                          │
//	│                                                              │
//	│   AddWork(ctx, fn) ──▶ work chan ──▶ run() loop              │
//	│                                        │                     │
//	│                              pending queue  [r1] [r2] ...    │
//	│                                        │                     │
//	│                                   dispatch()                 │
//	│                                        │                     │
//	│        ┌──────────┐   ┌──────────┐   ┌──────────┐            │
//	│        │ worker 1 │   │ worker 2 │   │ worker N │            │
//	│        └────┬─────┘   └────┬─────┘   └────┬─────┘            │
//	│             └──────── Result[T] ──────────┘                  │
//	│                          │                                   │
//	│                    Future.C()                                │
//	└──────────────────────────────────────────────────────────────┘
//
// # Cancellation
//
// Each request runs with a context derived from the scheduler's main context
// and bound to the caller's context:
//
//   - Future.Stop() cancels one request
//   - cancelling the ctx passed to AddWork cancels that request
//   - Close() cancels everything and waits for in-flight work
//
// AddWork after Close answers immediately with context.Canceled.
//
// # Panics
//
// A panicking work function is reported as an error result and the worker
// returns to the pool.
//
// # Joining a batch
//
// Await collects the results of several futures in submission order:
//
//	sched := scheduler.NewScheduler[string](4)
//	defer sched.Close()
//
//	futures := make([]*scheduler.Future[scheduler.Result[string]], 0, len(files))
//	for _, f := range files {
//	    futures = append(futures, sched.AddWork(ctx, upload(f)))
//	}
//	for _, r := range scheduler.Await(futures...) {
//	    if r.Err != nil {
//	        // record the failure, keep going
//	    }
//	}
package scheduler
