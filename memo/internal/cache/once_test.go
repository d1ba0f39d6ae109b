package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/func_ive_go/memo/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce_ComputesOncePerKey(t *testing.T) {
	calls := 0
	o := cache.NewOnce[string, int]()

	v, err, outcome := o.GetOrCompute("k", func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, cache.Computed, outcome)

	v, err, outcome = o.GetOrCompute("k", func() (int, error) {
		calls++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, cache.Hit, outcome)
	assert.Equal(t, 1, calls)
}

func TestOnce_DistinctKeysComputeIndependently(t *testing.T) {
	o := cache.NewOnce[int, int]()

	for _, k := range []int{1, 2, 3} {
		k := k
		v, err, _ := o.GetOrCompute(k, func() (int, error) { return k * 10, nil })
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
	assert.Equal(t, 3, o.Len())
}

func TestOnce_CachesFailures(t *testing.T) {
	errNope := errors.New("nope")
	calls := 0
	o := cache.NewOnce[string, int]()

	_, err, _ := o.GetOrCompute("k", func() (int, error) {
		calls++
		return 0, errNope
	})
	assert.ErrorIs(t, err, errNope)

	_, err, outcome := o.GetOrCompute("k", func() (int, error) {
		calls++
		return 1, nil
	})
	assert.ErrorIs(t, err, errNope, "a cached failure is replayed, not retried")
	assert.Equal(t, cache.Hit, outcome)
	assert.Equal(t, 1, calls)
}

func TestOnce_RacersShareSingleComputation(t *testing.T) {
	var calls atomic.Int32
	o := cache.NewOnce[string, int]()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		o.GetOrCompute("k", func() (int, error) {
			close(started)
			<-release
			calls.Add(1)
			return 7, nil
		})
	}()
	<-started

	const racers = 32
	var wg sync.WaitGroup
	results := make([]int, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err, outcome := o.GetOrCompute("k", func() (int, error) {
				calls.Add(1)
				return -1, nil
			})
			assert.NoError(t, err)
			assert.NotEqual(t, cache.Computed, outcome)
			results[i] = v
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestOnce_PanicReplayedToWaiters(t *testing.T) {
	o := cache.NewOnce[string, int]()

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Equal(t, "kaboom", r)
		}()
		o.GetOrCompute("k", func() (int, error) { panic("kaboom") })
	}()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "kaboom", r)
	}()
	o.GetOrCompute("k", func() (int, error) { return 0, nil })
}
