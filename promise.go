// Copyright 2025 Anna Kovach (annakov)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

import "sync"

// Promise is the write-once completion handle of an asynchronous result.
//
// A Promise is created through NewPromise, completed at most once with
// Complete (or the Success/Failure shorthands), and read through the
// Future returned from its Future method. It is safe to share a Promise
// across any number of goroutines; Complete and callback registration may
// race freely.
//
// The zero value is not usable; promises must be created through
// NewPromise.
type Promise[T any] struct {
	exec *Executor
	fut  *Future[T]

	// mu guards res, callbacks, queue, and draining.
	// it is never held while user callbacks run.
	mu sync.Mutex

	// res holds the result of the promise.
	// nil while the promise is pending; immutable once set.
	res Try[T]

	// callbacks are the listeners registered before completion, in
	// registration order. moved to queue, once, on completion.
	callbacks []func(Try[T])

	// queue holds listeners awaiting delivery. it is drained in FIFO
	// order by a single drain task at a time, on the executor, which
	// preserves registration order per promise.
	queue    []func(Try[T])
	draining bool

	// closed when this promise completes, strictly after res is set.
	// this channel has one writer, the winning Complete call, and any
	// number of blocked readers.
	done chan struct{}
}

// NewPromise returns a new pending Promise bound to the executor ex.
// The executor delivers the promise's callbacks and accounts the promise
// in its pending count until it completes.
func NewPromise[T any](ex *Executor) *Promise[T] {
	if ex == nil {
		panic(nilExecutorPanicMsg)
	}

	ex.pending.Add()
	p := &Promise[T]{
		exec: ex,
		done: make(chan struct{}),
	}
	p.fut = &Future[T]{p: p}
	return p
}

// Complete attempts the Pending to Completed transition, storing res as
// the promise's final result.
// It reports whether this call won the transition. If the promise was
// already completed, the call has no effect, and the stored result is
// untouched.
// It panics if res is nil.
func (p *Promise[T]) Complete(res Try[T]) bool {
	if res == nil {
		panic(nilTryPanicMsg)
	}

	p.mu.Lock()
	if p.res != nil {
		p.mu.Unlock()
		return false
	}

	p.res = res
	start := false
	if len(p.callbacks) != 0 {
		p.queue = p.callbacks
		p.callbacks = nil
		start = !p.draining
		p.draining = true
	}
	// untrack before closing done, so that a reader unblocked by Wait
	// already observes the drained count.
	p.exec.pending.Done()
	close(p.done)
	p.mu.Unlock()

	if start {
		p.exec.dispatch(p.drain)
	}
	return true
}

// Success completes the promise with Success(val).
// It reports whether this call won the completion.
func (p *Promise[T]) Success(val T) bool {
	return p.Complete(Success(val))
}

// Failure completes the promise with Failure(err).
// It reports whether this call won the completion.
func (p *Promise[T]) Failure(err error) bool {
	return p.Complete(Failure[T](err))
}

// IsCompleted reports whether the promise has completed.
func (p *Promise[T]) IsCompleted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.res != nil
}

// Peek returns the promise's result and true if it has completed, without
// blocking, or nil and false while it's still pending.
func (p *Promise[T]) Peek() (Try[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.res, p.res != nil
}

// Future returns the shared read view of this promise.
// The returned value is the same on every call, and provides no way to
// complete the promise.
func (p *Promise[T]) Future() *Future[T] {
	return p.fut
}

// register adds fn as a completion listener.
// before completion it joins the pending list; after completion it joins
// the delivery queue directly, so it still fires exactly once, off the
// registering goroutine, after the listeners registered before it.
func (p *Promise[T]) register(fn func(Try[T])) {
	p.mu.Lock()
	if p.res == nil {
		p.callbacks = append(p.callbacks, fn)
		p.mu.Unlock()
		return
	}

	p.queue = append(p.queue, fn)
	start := !p.draining
	p.draining = true
	p.mu.Unlock()

	if start {
		p.exec.dispatch(p.drain)
	}
}

// drain delivers queued listeners one at a time, in FIFO order.
// at most one drain task runs per promise at any time, and it runs on the
// executor, never on the goroutine that completed the promise.
func (p *Promise[T]) drain() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.draining = false
			p.mu.Unlock()
			return
		}
		fn := p.queue[0]
		p.queue = p.queue[1:]
		res := p.res
		p.mu.Unlock()

		p.exec.runIsolated(func() { fn(res) })
	}
}
