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

// Package future provides a write-once Promise/Future pair, completion
// callbacks, value combinators, and aggregate operators for composing
// asynchronous results across goroutines.
//
// A Promise is the write handle of an asynchronous result, and a Future is
// its shared read view. A Promise completes at most once, with a Try value
// that is either a Success or a Failure. Completing an already completed
// Promise is a no-op.
//
// A Promise has two states, and it can be in only one of them, at any time:
// Pending: the computation that corresponds to this Promise has not finished.
// Completed: the computation has finished, and the Promise holds its final
// Try value, either Fulfilled or Rejected. The transition from Pending to
// Completed is irreversible, and the stored Try is immutable thereafter.
//
// Completion callbacks registered through Future.OnComplete are delivered
// exactly once, in registration order per promise, on an Executor, never on
// the goroutine that completed the promise. A callback registered after
// completion is delivered right away, through the same path. A panic inside
// one callback never reaches the completer and never blocks delivery to the
// callbacks after it.
//
// The Executor is an explicit, injectable resource with its own lifecycle.
// It runs all callback delivery and all producer work started through Async,
// optionally bounded to a fixed number of concurrently running tasks, and it
// tracks the number of promises that have not completed yet, which makes
// draining observable for shutdown and for test synchronization.
//
// Combinators (Map, FlatMap, Collect, Filter, Recover, ...) derive a new
// Future from an existing one. A Failure passes through a combinator
// untouched, without invoking its transform, while an error returned from,
// or a panic raised inside, a transform becomes the derived future's
// Failure. Aggregate operators (Fold, Reduce, Sequence, Traverse) combine
// many futures into one, completing with the first observed failure, if any.
//
// A Variable is a single-assignment dataflow cell built on a Promise. Two
// goroutines can hand off a value through a pair of variables without either
// referencing the other: one assigns variable A, the other reads variable B
// that follows A.
package future
