package future

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"golang.org/x/sync/semaphore"

	"github.com/annakov/future/internal/inflight"
)

// ExecutorConfig configures an Executor.
type ExecutorConfig struct {
	// Workers is the allowed number of concurrently running tasks on this
	// executor. This covers producer functions started through Async and
	// callback delivery alike.
	// If it's 0 or less, then the executor is unbounded.
	Workers int

	// Logger receives reports of panics recovered from completion
	// callbacks, which are isolated from the completing goroutine and
	// from the promise. Discarded when not set.
	Logger logr.Logger

	// UncaughtPanicHandler, when set, is called with the recovered value
	// of a completion callback panic, instead of logging it.
	UncaughtPanicHandler func(v any)
}

// Executor runs producer work and callback delivery for the promises
// created through it, and accounts for that work so that draining is
// observable.
//
// An Executor is an explicit resource: create one with NewExecutor, share
// it freely across goroutines, and Close it at teardown. There's no
// implicit process-wide default.
type Executor struct {
	// sem bounds the number of concurrently running tasks.
	// nil means unbounded.
	sem *semaphore.Weighted

	// wg tracks dispatched tasks, for Drain and Close.
	wg sync.WaitGroup

	// pending counts promises created through this executor that haven't
	// completed yet. see the Pending method.
	pending inflight.Counter

	logger  logr.Logger
	onPanic func(v any)
	closed  atomic.Bool
}

// NewExecutor returns a new Executor, configured with the first non-nil
// config passed, if any.
func NewExecutor(c ...*ExecutorConfig) *Executor {
	ex := &Executor{logger: logr.Discard()}

	if len(c) != 0 && c[0] != nil {
		if size := c[0].Workers; size > 0 {
			ex.sem = semaphore.NewWeighted(int64(size))
		}
		if c[0].Logger.GetSink() != nil {
			ex.logger = c[0].Logger
		}
		if cb := c[0].UncaughtPanicHandler; cb != nil {
			ex.onPanic = cb
		}
	}

	return ex
}

// dispatch runs task on its own goroutine, bounded by the configured
// Workers cap. The cap is acquired inside the new goroutine, so that
// dispatching never blocks the caller, which may be a goroutine that's
// completing a promise.
func (ex *Executor) dispatch(task func()) {
	if ex.closed.Load() {
		panic(closedExecutorPanicMsg)
	}

	ex.wg.Add(1)
	go func() {
		defer ex.wg.Done()

		if ex.sem != nil {
			// the context is never canceled, so Acquire can't fail here.
			_ = ex.sem.Acquire(context.Background(), 1)
			defer ex.sem.Release(1)
		}

		task()
	}()
}

// runIsolated runs one completion callback, keeping any panic it raises
// away from the promise, the completing goroutine, and the callbacks
// registered after it.
func (ex *Executor) runIsolated(fn func()) {
	defer func() {
		if v := recover(); v != nil {
			if ex.onPanic != nil {
				ex.onPanic(v)
				return
			}
			ex.logger.Error(&PanicError{V: v}, "recovered a panic from a completion callback")
		}
	}()

	fn()
}

// Pending returns the number of promises created through this executor
// that have not completed yet. Reading 0 means all future-bound work
// known to this executor has drained.
func (ex *Executor) Pending() int64 {
	return ex.pending.Value()
}

// Quiescent reports whether no promise created through this executor is
// still pending.
func (ex *Executor) Quiescent() bool {
	return ex.pending.Quiescent()
}

// Drain blocks until every task dispatched so far has finished running.
// It doesn't stop new work from being dispatched.
func (ex *Executor) Drain() {
	ex.wg.Wait()
}

// Close marks the executor as shut down and waits for the tasks already
// dispatched to finish. Dispatching on a closed executor panics.
func (ex *Executor) Close() {
	ex.closed.Store(true)
	ex.wg.Wait()
}
