package future

import "reflect"

// Map derives a future holding fn applied to the source's success value.
//
// On a source Failure, the derived future fails with the same error,
// without invoking fn. An error returned from fn, or a panic raised
// inside it, becomes the derived future's Failure.
func Map[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[U](f.p.exec)
	f.p.register(func(res Try[T]) {
		if err := res.Err(); err != nil {
			p.Failure(err)
			return
		}

		defer recoverCompletion(p)
		v, err := fn(res.Val())
		p.Complete(tryOf(v, err))
	})
	return p.Future()
}

// FlatMap derives a future that mirrors the eventual result of the future
// returned from fn.
//
// On a source Failure, the derived future short-circuits to the same
// error, without invoking fn. An error returned from fn, a panic raised
// inside it, or a nil returned future, becomes the derived future's
// Failure.
func FlatMap[T, U any](f *Future[T], fn func(T) (*Future[U], error)) *Future[U] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[U](f.p.exec)
	f.p.register(func(res Try[T]) {
		if err := res.Err(); err != nil {
			p.Failure(err)
			return
		}

		defer recoverCompletion(p)
		inner, err := fn(res.Val())
		if err != nil {
			p.Failure(err)
			return
		}
		if inner == nil {
			panic(nilFuturePanicMsg)
		}
		inner.p.register(func(res Try[U]) { p.Complete(res) })
	})
	return p.Future()
}

// Collect derives a future from a partial transform: extract returns the
// transformed value and whether it's defined for the arrived value.
//
// On a success value for which extract is undefined, the derived future
// fails with ErrNoMatch. A source Failure passes through unchanged, and a
// panic inside extract becomes the derived future's Failure.
func Collect[T, U any](f *Future[T], extract func(T) (U, bool)) *Future[U] {
	if extract == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[U](f.p.exec)
	f.p.register(func(res Try[T]) {
		if err := res.Err(); err != nil {
			p.Failure(err)
			return
		}

		defer recoverCompletion(p)
		v, ok := extract(res.Val())
		if !ok {
			p.Failure(ErrNoMatch)
			return
		}
		p.Success(v)
	})
	return p.Future()
}

// Filter derives a future that keeps the source's success value only when
// pred accepts it, and fails with ErrNoMatch otherwise.
// A source Failure passes through unchanged.
func (f *Future[T]) Filter(pred func(T) bool) *Future[T] {
	if pred == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](f.p.exec)
	f.p.register(func(res Try[T]) {
		if res.Err() != nil {
			p.Complete(res)
			return
		}

		defer recoverCompletion(p)
		if pred(res.Val()) {
			p.Complete(res)
		} else {
			p.Failure(ErrNoMatch)
		}
	})
	return p.Future()
}

// Recover derives a future that turns the source's Failure into the
// result of fn. A source Success passes through unchanged, without
// invoking fn. An error returned from fn, or a panic raised inside it,
// becomes the derived future's Failure.
func (f *Future[T]) Recover(fn func(error) (T, error)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](f.p.exec)
	f.p.register(func(res Try[T]) {
		err := res.Err()
		if err == nil {
			p.Complete(res)
			return
		}

		defer recoverCompletion(p)
		v, err := fn(err)
		p.Complete(tryOf(v, err))
	})
	return p.Future()
}

// AndThen derives a future that completes with the source's result,
// unchanged, after running fn for its side effect.
// Whatever fn does, including panicking, the original Try is what flows
// on to the derived future.
func (f *Future[T]) AndThen(fn func(Try[T])) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := NewPromise[T](f.p.exec)
	f.p.register(func(res Try[T]) {
		func() {
			defer func() { _ = recover() }()
			fn(res)
		}()
		p.Complete(res)
	})
	return p.Future()
}

// Erase widens a typed future into a Future[any], for handing values
// through an untyped boundary. Pair with Cast on the consuming side.
func Erase[T any](f *Future[T]) *Future[any] {
	return Map(f, func(v T) (any, error) { return v, nil })
}

// Cast narrows a Future[any] back into a typed future.
//
// The tag check is lazy: it runs when the value actually flows through
// this step, so a consumer that expects the wrong type observes a
// *TypeMismatchError Failure at the point of consumption, not at the
// source's original completion.
func Cast[T any](f *Future[any]) *Future[T] {
	return Map(f, func(v any) (T, error) {
		t, ok := v.(T)
		if !ok {
			return t, &TypeMismatchError{
				Expected: reflect.TypeOf((*T)(nil)).Elem(),
				Actual:   reflect.TypeOf(v),
			}
		}
		return t, nil
	})
}

// Zip pairs the success values of two futures.
// The derived future fails with the first failure among the two.
func Zip[T, U any](a *Future[T], b *Future[U]) *Future[Pair[T, U]] {
	return FlatMap(a, func(av T) (*Future[Pair[T, U]], error) {
		return Map(b, func(bv U) (Pair[T, U], error) {
			return Pair[T, U]{First: av, Second: bv}, nil
		}), nil
	})
}

// Pair holds the two success values produced by Zip.
type Pair[T, U any] struct {
	First  T
	Second U
}
