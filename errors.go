package future

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTimeout is returned from deadline-bound blocking reads when the
	// deadline elapses before the future completes.
	// It describes that specific read call only; the future itself stays
	// completable, and a later read may still succeed.
	ErrTimeout = errors.New("future: timed out waiting for completion")

	// ErrNoMatch is the failure of a Collect whose extractor was undefined
	// for the arrived value, or of a Filter whose predicate rejected it.
	ErrNoMatch = errors.New("future: no match for the arrived value")

	// ErrEmptyAggregate is the failure of a Reduce or a FirstOf over zero
	// futures. Fold over zero futures is defined and succeeds with its
	// zero value instead.
	ErrEmptyAggregate = errors.New("future: aggregate over zero futures")
)

// TypeMismatchError is the failure of a Cast whose typed view diverged from
// the value that actually arrived through the erased boundary.
// It surfaces at the cast step, when the value is consumed, not when the
// source future originally completed.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("future: type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// PanicError wraps a panic recovered from a producer function or from a
// combinator transform, carrying it as the Failure of the corresponding
// future.
type PanicError struct {
	// V is the recovered panic value.
	V any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: panic during computation: %v", e.V)
}

// panic messages
const (
	nilCallbackPanicMsg    = "future: the provided callback is nil"
	nilExecutorPanicMsg    = "future: the provided executor is nil"
	nilTryPanicMsg         = "future: the provided Try is nil"
	nilErrorPanicMsg       = "future: the provided error is nil"
	nilFuturePanicMsg      = "future: the provided future is nil"
	closedExecutorPanicMsg = "future: dispatch on a closed executor"
)
