package memo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/func_ive_go/fn"
	"github.com/on-the-ground/func_ive_go/memo/internal/cache"
	"github.com/on-the-ground/func_ive_go/tuple"
)

// Memoize0 caches a nullary function's single outcome on first use.
func Memoize0[R any](f fn.Fn0[R]) fn.Fn0[R] {
	var (
		once sync.Once
		val  R
		err  error
	)
	return func() (R, error) {
		once.Do(func() { val, err = f() })
		return val, err
	}
}

// Memoize1 wraps f so the computation for each distinct argument runs
// at most once, failures included.
func Memoize1[T1 comparable, R any](f fn.Fn1[T1, R], opts ...Option) fn.Fn1[T1, R] {
	m := newMemoizer[tuple.T1[T1], R](opts)
	tupled := f.Tupled()
	return func(t1 T1) (R, error) {
		return m.apply(tuple.NewT1(t1), tupled)
	}
}

// Memoize2 wraps f so the computation for each distinct argument tuple
// runs at most once, failures included.
func Memoize2[T1, T2 comparable, R any](f fn.Fn2[T1, T2, R], opts ...Option) fn.Fn2[T1, T2, R] {
	m := newMemoizer[tuple.T2[T1, T2], R](opts)
	tupled := f.Tupled()
	return func(t1 T1, t2 T2) (R, error) {
		return m.apply(tuple.NewT2(t1, t2), tupled)
	}
}

// Memoize3 wraps f so the computation for each distinct argument tuple
// runs at most once, failures included.
func Memoize3[T1, T2, T3 comparable, R any](f fn.Fn3[T1, T2, T3, R], opts ...Option) fn.Fn3[T1, T2, T3, R] {
	m := newMemoizer[tuple.T3[T1, T2, T3], R](opts)
	tupled := f.Tupled()
	return func(t1 T1, t2 T2, t3 T3) (R, error) {
		return m.apply(tuple.NewT3(t1, t2, t3), tupled)
	}
}

// Memoize4 wraps f so the computation for each distinct argument tuple
// runs at most once, failures included.
func Memoize4[T1, T2, T3, T4 comparable, R any](f fn.Fn4[T1, T2, T3, T4, R], opts ...Option) fn.Fn4[T1, T2, T3, T4, R] {
	m := newMemoizer[tuple.T4[T1, T2, T3, T4], R](opts)
	tupled := f.Tupled()
	return func(t1 T1, t2 T2, t3 T3, t4 T4) (R, error) {
		return m.apply(tuple.NewT4(t1, t2, t3, t4), tupled)
	}
}

// memoKey is what the compute-once cache keys on: the argument tuple,
// comparable for identity and renderable for observability.
type memoKey interface {
	comparable
	String() string
}

// memoizer is the arity-generic core shared by every MemoizeN: a
// compute-once cache keyed by the argument tuple, owned 1:1 by the
// returned function value.
type memoizer[K memoKey, R any] struct {
	id    string
	cache *cache.Once[K, R]
	obs   Observer
}

func newMemoizer[K memoKey, R any](opts []Option) *memoizer[K, R] {
	cfg := newConfig(opts)
	return &memoizer[K, R]{
		id:    uuid.New().String(),
		cache: cache.NewOnce[K, R](),
		obs:   cfg.observer,
	}
}

func (m *memoizer[K, R]) apply(key K, tupled fn.Fn1[K, R]) (R, error) {
	if m.obs == nil {
		val, err, _ := m.cache.GetOrCompute(key, func() (R, error) {
			return tupled(key)
		})
		return val, err
	}

	var span timespan.TimeSpan
	val, err, outcome := m.cache.GetOrCompute(key, func() (R, error) {
		started := time.Now()
		v, e := tupled(key)
		span = timespan.BetweenTimes(started, time.Now())
		return v, e
	})
	m.obs.On(EventData{
		Event:  eventOf(outcome),
		MemoID: m.id,
		Key:    key.String(),
		Span:   span,
	})
	return val, err
}

func eventOf(outcome cache.Outcome) Event {
	switch outcome {
	case cache.Computed:
		return EventMiss
	case cache.Coalesced:
		return EventCoalesced
	default:
		return EventHit
	}
}
