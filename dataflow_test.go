package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableAssign(t *testing.T) {
	ex := newTestExecutor(t)

	v := NewVariable[int](ex)
	assert.False(t, v.Bound())

	require.True(t, v.Assign(1))
	assert.True(t, v.Bound())

	// a second assignment is a no-op
	require.False(t, v.Assign(2))

	got, err := v.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestVariableFollow(t *testing.T) {
	ex := newTestExecutor(t)

	a := NewVariable[int](ex)
	b := NewVariable[int](ex)
	b.Follow(a.Future())

	// the writer and the reader never reference each other: one goroutine
	// assigns a, another blocks reading b.
	go func() {
		time.Sleep(5 * time.Millisecond)
		a.Assign(5)
	}()

	got, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestVariableFail(t *testing.T) {
	ex := newTestExecutor(t)

	v := NewVariable[string](ex)
	boom := testStrError("boom")
	require.True(t, v.Fail(boom))
	require.False(t, v.Assign("late"))

	_, err := v.Read()
	assert.Equal(t, boom, err)
}

func TestVariableReadWithin(t *testing.T) {
	ex := newTestExecutor(t)

	v := NewVariable[int](ex)

	_, err := v.ReadWithin(time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)

	// the elapsed deadline didn't consume or poison the variable
	v.Assign(3)
	got, err := v.ReadWithin(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestVariableFollowChain(t *testing.T) {
	ex := newTestExecutor(t)

	// a <- b <- c: assigning a propagates through the chain
	a := NewVariable[int](ex)
	b := NewVariable[int](ex)
	c := NewVariable[int](ex)
	b.Follow(a.Future())
	c.Follow(b.Future())

	a.Assign(11)

	got, err := c.Read()
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}
