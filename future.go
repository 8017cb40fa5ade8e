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

import "time"

// Future is the read-only, shared view over a Promise.
//
// A Future provides inspection, listener registration, and blocking reads,
// and carries no completion capability. All methods are safe to call from
// any goroutine, concurrently with completion.
type Future[T any] struct {
	p *Promise[T]
}

// OnComplete registers fn as a completion listener.
//
// fn is invoked exactly once with the promise's final Try, on the future's
// executor: upon completion if the future is still pending, or right away
// if it has already completed. Listeners on one future fire in
// registration order. A panic inside fn is isolated: it doesn't reach the
// completer, and it doesn't block delivery to later listeners.
func (f *Future[T]) OnComplete(fn func(Try[T])) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	f.p.register(fn)
}

// Foreach registers a side effect on the success value.
// fn is not invoked when the future fails.
func (f *Future[T]) Foreach(fn func(T)) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	f.p.register(func(res Try[T]) {
		if res.Err() == nil {
			fn(res.Val())
		}
	})
}

// OnFailure registers a side effect on the failure error.
// fn is not invoked when the future succeeds.
func (f *Future[T]) OnFailure(fn func(error)) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	f.p.register(func(res Try[T]) {
		if err := res.Err(); err != nil {
			fn(err)
		}
	})
}

// Done returns a channel that's closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.p.done
}

// IsCompleted reports whether the future has completed.
func (f *Future[T]) IsCompleted() bool {
	return f.p.IsCompleted()
}

// Peek returns the future's result and true if it has completed, without
// blocking, or nil and false while it's still pending.
func (f *Future[T]) Peek() (Try[T], bool) {
	return f.p.Peek()
}

// State returns Pending, Fulfilled, or Rejected.
func (f *Future[T]) State() State {
	res, ok := f.Peek()
	if !ok {
		return Pending
	}
	return res.State()
}

// Wait blocks until the future completes.
func (f *Future[T]) Wait() {
	<-f.p.done
}

// WaitFor blocks up to d, and reports whether the future completed within
// that window. An elapsed deadline doesn't alter the future: a later read
// may still succeed.
func (f *Future[T]) WaitFor(d time.Duration) bool {
	select {
	case <-f.p.done:
		return true
	default:
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-f.p.done:
		return true
	case <-t.C:
		return false
	}
}

// Result blocks until the future completes, then returns the stored Try.
func (f *Future[T]) Result() Try[T] {
	<-f.p.done
	// res is immutable once done is closed
	return f.p.res
}

// ResultWithin blocks up to d. It returns the stored Try and true if the
// future completed within the window, or nil and false otherwise.
// An elapsed deadline is not an error: the same call made again after
// completion returns the completed Try, Success and Failure alike.
func (f *Future[T]) ResultWithin(d time.Duration) (Try[T], bool) {
	if !f.WaitFor(d) {
		return nil, false
	}
	return f.p.res, true
}

// Value blocks until the future completes, then returns the success value,
// or the zero value of T along with the failure error.
func (f *Future[T]) Value() (T, error) {
	res := f.Result()
	return res.Val(), res.Err()
}

// ValueFor blocks up to d, then behaves like Value if the future completed
// within the window, or returns ErrTimeout otherwise.
// ErrTimeout describes this call only; it is never stored on the future.
func (f *Future[T]) ValueFor(d time.Duration) (T, error) {
	res, ok := f.ResultWithin(d)
	if !ok {
		var zero T
		return zero, ErrTimeout
	}
	return res.Val(), res.Err()
}
