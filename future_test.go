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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitFor(t *testing.T) {
	t.Run("already completed", func(t *testing.T) {
		ex := newTestExecutor(t)

		f := Completed(ex, 1)
		assert.True(t, f.WaitFor(0))
	})

	t.Run("completes within the window", func(t *testing.T) {
		ex := newTestExecutor(t)

		p := NewPromise[int](ex)
		go func() {
			time.Sleep(5 * time.Millisecond)
			p.Success(1)
		}()
		assert.True(t, p.Future().WaitFor(time.Second))
	})

	t.Run("deadline elapses first", func(t *testing.T) {
		ex := newTestExecutor(t)

		p := NewPromise[int](ex)
		assert.False(t, p.Future().WaitFor(time.Millisecond))

		// the timeout didn't alter the future
		p.Success(1)
		assert.True(t, p.Future().WaitFor(time.Millisecond))
	})
}

func TestResultWithin(t *testing.T) {
	ex := newTestExecutor(t)

	p := NewPromise[int](ex)
	f := p.Future()

	// not yet completed is a tri-state outcome, never an error
	res, ok := f.ResultWithin(time.Millisecond)
	require.False(t, ok)
	require.Nil(t, res)

	p.Success(3)

	// a later call on the same future returns the completed Try
	res, ok = f.ResultWithin(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, 3, res.Val())

	// a completed Failure is reported the same way
	pf := NewPromise[int](ex)
	pf.Failure(testStrError("boom"))
	res, ok = pf.Future().ResultWithin(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, testStrError("boom"), res.Err())
}

func TestValue(t *testing.T) {
	ex := newTestExecutor(t)

	t.Run("success", func(t *testing.T) {
		v, err := Completed(ex, "ok").Value()
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("failure", func(t *testing.T) {
		boom := testStrError("boom")
		v, err := Failed[string](ex, boom).Value()
		assert.Equal(t, boom, err)
		assert.Zero(t, v)
	})
}

func TestValueFor(t *testing.T) {
	ex := newTestExecutor(t)

	p := NewPromise[int](ex)
	f := p.Future()

	_, err := f.ValueFor(time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)

	// ErrTimeout is a property of that read call; the future stays
	// completable
	p.Success(10)
	v, err := f.ValueFor(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestDoneChan(t *testing.T) {
	ex := newTestExecutor(t)

	p := NewPromise[int](ex)
	f := p.Future()

	select {
	case <-f.Done():
		t.Fatal("Done() closed before completion")
	default:
	}

	p.Success(1)
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after completion")
	}
}
