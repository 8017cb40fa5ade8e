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

import "fmt"

// Try is a container for the tagged result of a computation, either a
// Success holding a value, or a Failure holding an error.
// Values of this type are immutable once constructed.
type Try[T any] interface {
	// Val returns the held value on a Success, or the zero value of T
	// on a Failure.
	Val() T

	// Err returns nil on a Success, or the held error on a Failure.
	Err() error

	// State returns Fulfilled or Rejected.
	State() State
}

// Success returns a Try holding the value val.
func Success[T any](val T) Try[T] {
	return successTry[T]{val: val}
}

// Failure returns a Try holding the error err.
// It panics if err is nil, as a nil error can't describe a failure.
func Failure[T any](err error) Try[T] {
	if err == nil {
		panic(nilErrorPanicMsg)
	}
	return failureTry[T]{err: err}
}

// tryOf routes the conventional (value, error) return pair to either a
// Success or a Failure, following the error-last convention.
func tryOf[T any](val T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(val)
}

type successTry[T any] struct{ val T }
type failureTry[T any] struct{ err error }

func (r successTry[T]) Val() T     { return r.val }
func (r failureTry[T]) Val() (v T) { return v }

func (r successTry[T]) Err() error { return nil }
func (r failureTry[T]) Err() error { return r.err }

func (r successTry[T]) State() State { return Fulfilled }
func (r failureTry[T]) State() State { return Rejected }

func (r successTry[T]) String() string {
	return fmt.Sprintf("fulfilled: %v", r.val)
}

func (r failureTry[T]) String() string {
	return fmt.Sprintf("rejected: %s", r.err.Error())
}
