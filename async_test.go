package future

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ex := newTestExecutor(t)

		f := Async(ex, func() (int, error) { return 21 * 2, nil })
		v, err := f.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("error", func(t *testing.T) {
		ex := newTestExecutor(t)

		boom := testStrError("boom")
		f := Async(ex, func() (int, error) { return 0, boom })
		_, err := f.Value()
		assert.Equal(t, boom, err)
	})

	t.Run("panic becomes a PanicError failure", func(t *testing.T) {
		ex := newTestExecutor(t)

		f := Async(ex, func() (int, error) { panic("producer boom") })
		_, err := f.Value()

		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "producer boom", pe.V)
	})

	t.Run("nil function panics", func(t *testing.T) {
		ex := newTestExecutor(t)

		require.PanicsWithValue(t, nilCallbackPanicMsg, func() {
			Async[int](ex, nil)
		})
	})
}

func TestAsyncTry(t *testing.T) {
	ex := newTestExecutor(t)

	f := AsyncTry(ex, func() Try[string] { return Success("hi") })
	v, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	boom := testStrError("boom")
	g := AsyncTry(ex, func() Try[string] { return Failure[string](boom) })
	_, err = g.Value()
	assert.Equal(t, boom, err)
}

func TestWrapped(t *testing.T) {
	ex := newTestExecutor(t)

	f := Completed(ex, 7)
	require.True(t, f.IsCompleted())
	assert.Equal(t, Fulfilled, f.State())

	g := Failed[int](ex, testStrError("boom"))
	require.True(t, g.IsCompleted())
	assert.Equal(t, Rejected, g.State())
}
