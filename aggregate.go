package future

import "sync"

// Fold attaches a listener to every future in fs and folds their success
// values into an accumulator seeded with zero, completing the returned
// future with the final accumulator once all inputs have completed.
//
// combine is applied in completion order, which is arbitrary across
// inputs, so it should be order-tolerant. On the first observed Failure
// the aggregate completes with that error, and later input completions
// are dropped for the result (their promises still complete, and still
// tick the executor's pending count, on their own).
//
// Fold over zero futures completes right away with Success(zero).
func Fold[T, A any](ex *Executor, zero A, fs []*Future[T], combine func(A, T) A) *Future[A] {
	if combine == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[A](ex)
	if len(fs) == 0 {
		p.Success(zero)
		return p.Future()
	}

	// one mutual-exclusion domain per aggregation, guarding the
	// accumulator and the remaining count together.
	var mu sync.Mutex
	acc := zero
	remaining := len(fs)

	for _, f := range fs {
		f.p.register(func(res Try[T]) {
			if err := res.Err(); err != nil {
				p.Failure(err)
				return
			}

			defer recoverCompletion(p)
			mu.Lock()
			defer mu.Unlock()
			acc = combine(acc, res.Val())
			remaining--
			if remaining == 0 {
				p.Success(acc)
			}
		})
	}
	return p.Future()
}

// Reduce is Fold without a zero value: the accumulator seeds from the
// first input to complete, and later inputs fold into it with combine,
// in completion order.
//
// Unlike Fold, Reduce over zero futures is an error, and fails with
// ErrEmptyAggregate.
func Reduce[T any](ex *Executor, fs []*Future[T], combine func(T, T) T) *Future[T] {
	if combine == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](ex)
	if len(fs) == 0 {
		p.Failure(ErrEmptyAggregate)
		return p.Future()
	}

	var mu sync.Mutex
	var acc T
	seeded := false
	remaining := len(fs)

	for _, f := range fs {
		f.p.register(func(res Try[T]) {
			if err := res.Err(); err != nil {
				p.Failure(err)
				return
			}

			defer recoverCompletion(p)
			mu.Lock()
			defer mu.Unlock()
			if !seeded {
				acc = res.Val()
				seeded = true
			} else {
				acc = combine(acc, res.Val())
			}
			remaining--
			if remaining == 0 {
				p.Success(acc)
			}
		})
	}
	return p.Future()
}

// Sequence turns a slice of futures into one future holding all their
// success values, in the original input order, not in completion order.
// It fails with the first observed failure among the inputs.
//
// Sequence over zero futures completes right away with an empty slice.
func Sequence[T any](ex *Executor, fs []*Future[T]) *Future[[]T] {
	p := NewPromise[[]T](ex)
	out := make([]T, len(fs))
	if len(fs) == 0 {
		p.Success(out)
		return p.Future()
	}

	var mu sync.Mutex
	remaining := len(fs)

	for i, f := range fs {
		i := i
		f.p.register(func(res Try[T]) {
			if err := res.Err(); err != nil {
				p.Failure(err)
				return
			}

			mu.Lock()
			defer mu.Unlock()
			out[i] = res.Val()
			remaining--
			if remaining == 0 {
				p.Success(out)
			}
		})
	}
	return p.Future()
}

// Traverse applies fn to every item to obtain a future per item, then
// behaves like Sequence over those futures, preserving the original item
// order in the output.
func Traverse[A, T any](ex *Executor, items []A, fn func(A) *Future[T]) *Future[[]T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	fs := make([]*Future[T], len(items))
	for i, item := range items {
		fs[i] = fn(item)
	}
	return Sequence(ex, fs)
}

// FirstOf returns a future that mirrors the result of the first input to
// complete, success or failure, ignoring the rest.
// FirstOf over zero futures fails with ErrEmptyAggregate.
func FirstOf[T any](ex *Executor, fs ...*Future[T]) *Future[T] {
	p := NewPromise[T](ex)
	if len(fs) == 0 {
		p.Failure(ErrEmptyAggregate)
		return p.Future()
	}

	for _, f := range fs {
		f.p.register(func(res Try[T]) { p.Complete(res) })
	}
	return p.Future()
}
