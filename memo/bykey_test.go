package memo_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/on-the-ground/func_ive_go/fn"
	"github.com/on-the-ground/func_ive_go/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByKey1_MemoizesNonComparableArguments(t *testing.T) {
	calls := 0
	sum := memo.ByKey1(fn.Lift1(func(xs []int) (int, error) {
		calls++
		total := 0
		for _, x := range xs {
			total += x
		}
		return total, nil
	}), func(xs []int) string {
		return fmt.Sprint(xs)
	})

	v, err := sum([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = sum([]int{1, 2, 3}) // equal rendering, cached
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, 1, calls)

	v, err = sum([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 2, calls)
}

func TestByKey2_JoinsBothArguments(t *testing.T) {
	calls := 0
	join := memo.ByKey2(fn.Lift2(func(sep string, parts []string) (string, error) {
		calls++
		return strings.Join(parts, sep), nil
	}), func(sep string, parts []string) string {
		return sep + "|" + strings.Join(parts, "\x00")
	})

	v, err := join("-", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a-b", v)

	_, _ = join("-", []string{"a", "b"})
	assert.Equal(t, 1, calls)
}

func TestByKey_WithNumShards(t *testing.T) {
	calls := 0
	f := memo.ByKey1(fn.Lift1(func(i int) (int, error) {
		calls++
		return i * i, nil
	}), func(i int) string {
		return fmt.Sprint(i)
	}, memo.WithNumShards(2))

	for i := 0; i < 10; i++ {
		v, err := f(i)
		require.NoError(t, err)
		assert.Equal(t, i*i, v)
	}
	for i := 0; i < 10; i++ {
		_, _ = f(i)
	}
	assert.Equal(t, 10, calls)
}

func TestByKey_NilKeyFnPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on nil key function")
		}
		assert.Equal(t, memo.ErrNilKeyFn, r)
	}()
	memo.ByKey1[int, int](fn.Lift1(func(i int) (int, error) { return i, nil }), nil)
}
