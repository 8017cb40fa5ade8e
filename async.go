package future

// Async runs fn on the executor and returns a Future for its result.
//
// The returned future completes with Success on a nil error, with Failure
// on a non-nil error, or with a Failure wrapping a *PanicError if fn
// panics. There's no cancellation: once fn starts, it runs to completion
// regardless of any reader timeouts on the returned future.
func Async[T any](ex *Executor, fn func() (T, error)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](ex)
	ex.dispatch(func() {
		defer recoverCompletion(p)
		v, err := fn()
		p.Complete(tryOf(v, err))
	})
	return p.Future()
}

// AsyncTry is like Async, for producer functions that build their Try
// result themselves.
func AsyncTry[T any](ex *Executor, fn func() Try[T]) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](ex)
	ex.dispatch(func() {
		defer recoverCompletion(p)
		p.Complete(fn())
	})
	return p.Future()
}

// Completed returns a future that's already completed with Success(val).
func Completed[T any](ex *Executor, val T) *Future[T] {
	p := NewPromise[T](ex)
	p.Success(val)
	return p.Future()
}

// Failed returns a future that's already completed with Failure(err).
func Failed[T any](ex *Executor, err error) *Future[T] {
	p := NewPromise[T](ex)
	p.Failure(err)
	return p.Future()
}

// recoverCompletion must be deferred around producer and transform code.
// it turns a panic into the promise's Failure, wrapped in a *PanicError,
// instead of letting it tear down the executing goroutine.
// if the promise has already completed, the panic value is dropped with
// the rest of the late completion.
func recoverCompletion[T any](p *Promise[T]) {
	if v := recover(); v != nil {
		p.Complete(Failure[T](&PanicError{V: v}))
	}
}
