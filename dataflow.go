package future

import "time"

// Variable is a single-assignment dataflow cell built on a Promise.
//
// A Variable starts unbound. It becomes bound exactly once, either by a
// direct Assign (or Fail), or by following another future through Follow.
// Reads block until the variable is bound. This lets two independently
// spawned goroutines hand off a value without either referencing the
// other: one assigns variable A, the other reads variable B that follows
// A's future.
type Variable[T any] struct {
	p *Promise[T]
}

// NewVariable returns a new unbound Variable on the executor ex.
func NewVariable[T any](ex *Executor) *Variable[T] {
	return &Variable[T]{p: NewPromise[T](ex)}
}

// Assign binds the variable to val.
// A second Assign is a no-op, like any completion of an already completed
// promise; it reports whether this call did the binding.
func (v *Variable[T]) Assign(val T) bool {
	return v.p.Success(val)
}

// Fail binds the variable to the error err, under the same write-once
// rule as Assign.
func (v *Variable[T]) Fail(err error) bool {
	return v.p.Failure(err)
}

// Follow wires this variable as a listener of src: once src completes,
// the variable binds to the same Try, value or error.
// If the variable gets bound some other way first, the propagated result
// is dropped.
func (v *Variable[T]) Follow(src *Future[T]) {
	if src == nil {
		panic(nilFuturePanicMsg)
	}
	src.p.register(func(res Try[T]) { v.p.Complete(res) })
}

// Bound reports whether the variable has been bound.
func (v *Variable[T]) Bound() bool {
	return v.p.IsCompleted()
}

// Read blocks until the variable is bound, then returns its value, or
// the error it was failed with.
func (v *Variable[T]) Read() (T, error) {
	return v.p.fut.Value()
}

// ReadWithin blocks up to d, then behaves like Read if the variable got
// bound within the window, or returns ErrTimeout otherwise.
// The variable stays bindable and readable afterwards.
func (v *Variable[T]) ReadWithin(d time.Duration) (T, error) {
	return v.p.fut.ValueFor(d)
}

// Future returns the read view of the variable's cell.
func (v *Variable[T]) Future() *Future[T] {
	return v.p.Future()
}
