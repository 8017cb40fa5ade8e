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

// Package inflight implements the quiescence counter of an executor: a
// process-visible count of future-bound units of work that have been
// scheduled but whose promises have not completed yet.
//
// The counter is a diagnostic side-channel. Reading zero means all work
// known to the counter has drained; it makes no ordering promises beyond
// that of the atomic operations it is built from.
package inflight

import "sync/atomic"

// Counter counts outstanding future-bound work.
// The zero value is ready to use. A Counter must not be copied after
// first use.
type Counter struct {
	n atomic.Int64
}

// Add records one scheduled unit of work.
func (c *Counter) Add() {
	c.n.Add(1)
}

// Done records the completion of one unit of work.
// It panics if it would drive the counter negative, as that means a
// completion was accounted twice.
func (c *Counter) Done() {
	if c.n.Add(-1) < 0 {
		panic("inflight: negative counter")
	}
}

// Value returns the current number of outstanding units of work.
func (c *Counter) Value() int64 {
	return c.n.Load()
}

// Quiescent reports whether no work known to the counter is outstanding.
func (c *Counter) Quiescent() bool {
	return c.n.Load() == 0
}
