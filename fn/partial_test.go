package fn_test

import (
	"testing"

	"github.com/on-the-ground/func_ive_go/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartial_DefersComputation(t *testing.T) {
	calls := 0
	f3 := fn.Lift3(func(a, b, c int) (int, error) {
		calls++
		return a*100 + b*10 + c, nil
	})

	bound := f3.Partial(1)
	assert.Equal(t, 0, calls, "binding must not compute")

	bound2 := bound.Partial(2)
	assert.Equal(t, 0, calls)

	got, err := bound2(3)
	require.NoError(t, err)
	assert.Equal(t, 123, got)
	assert.Equal(t, 1, calls)
}

func TestPartial_EagerCapture(t *testing.T) {
	f2 := fn.Lift2(func(a, b int) (int, error) { return a - b, nil })

	a := 10
	bound := f2.Partial(a)
	a = 99 // mutating the source variable must not affect the binding

	got, err := bound(3)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestPartial_AllPrefixLengths(t *testing.T) {
	f4 := fn.Lift4(func(a, b, c, d string) (string, error) {
		return a + b + c + d, nil
	})

	got, err := f4.Partial("a")("b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)

	got, err = f4.Partial2("a", "b")("c", "d")
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)

	got, err = f4.Partial3("a", "b", "c")("d")
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)

	f3 := fn.Lift3(concat3)
	got, err = f3.Partial2("a", "b")("c")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestPartial_FailureDeferredToFinalApplication(t *testing.T) {
	f2 := fn.Lift2(func(a, b int) (int, error) { return 0, errBoom })

	bound := f2.Partial(1) // no failure yet
	_, err := bound(2)
	assert.ErrorIs(t, err, errBoom)
}
