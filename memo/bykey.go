package memo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/func_ive_go/fn"
	"github.com/on-the-ground/func_ive_go/memo/internal/cache"
)

// ErrNilKeyFn is the panic value when a nil key function is passed to
// one of the ByKey constructors.
var ErrNilKeyFn = errors.New("memo: key function is nil")

// ByKey1 memoizes f by a caller-derived string key instead of the
// argument itself. Use it when the argument type is not comparable.
// keyFn must produce a distinct key per distinct argument; callers
// sharing a key share an outcome. Panics with ErrNilKeyFn if keyFn is
// nil.
func ByKey1[T1, R any](f fn.Fn1[T1, R], keyFn func(T1) string, opts ...Option) fn.Fn1[T1, R] {
	if keyFn == nil {
		panic(ErrNilKeyFn)
	}
	m := newKeyedMemoizer[R](opts)
	return func(t1 T1) (R, error) {
		return m.apply(keyFn(t1), func() (R, error) {
			return f(t1)
		})
	}
}

// ByKey2 memoizes f by a caller-derived string key over both
// arguments. Panics with ErrNilKeyFn if keyFn is nil.
func ByKey2[T1, T2, R any](f fn.Fn2[T1, T2, R], keyFn func(T1, T2) string, opts ...Option) fn.Fn2[T1, T2, R] {
	if keyFn == nil {
		panic(ErrNilKeyFn)
	}
	m := newKeyedMemoizer[R](opts)
	return func(t1 T1, t2 T2) (R, error) {
		return m.apply(keyFn(t1, t2), func() (R, error) {
			return f(t1, t2)
		})
	}
}

// ByKey3 memoizes f by a caller-derived string key over all three
// arguments. Panics with ErrNilKeyFn if keyFn is nil.
func ByKey3[T1, T2, T3, R any](f fn.Fn3[T1, T2, T3, R], keyFn func(T1, T2, T3) string, opts ...Option) fn.Fn3[T1, T2, T3, R] {
	if keyFn == nil {
		panic(ErrNilKeyFn)
	}
	m := newKeyedMemoizer[R](opts)
	return func(t1 T1, t2 T2, t3 T3) (R, error) {
		return m.apply(keyFn(t1, t2, t3), func() (R, error) {
			return f(t1, t2, t3)
		})
	}
}

// ByKey4 memoizes f by a caller-derived string key over all four
// arguments. Panics with ErrNilKeyFn if keyFn is nil.
func ByKey4[T1, T2, T3, T4, R any](f fn.Fn4[T1, T2, T3, T4, R], keyFn func(T1, T2, T3, T4) string, opts ...Option) fn.Fn4[T1, T2, T3, T4, R] {
	if keyFn == nil {
		panic(ErrNilKeyFn)
	}
	m := newKeyedMemoizer[R](opts)
	return func(t1 T1, t2 T2, t3 T3, t4 T4) (R, error) {
		return m.apply(keyFn(t1, t2, t3, t4), func() (R, error) {
			return f(t1, t2, t3, t4)
		})
	}
}

type keyedMemoizer[R any] struct {
	id    string
	cache *cache.Keyed[R]
	obs   Observer
}

func newKeyedMemoizer[R any](opts []Option) *keyedMemoizer[R] {
	cfg := newConfig(opts)
	return &keyedMemoizer[R]{
		id:    uuid.New().String(),
		cache: cache.NewKeyed[R](cfg.numShards),
		obs:   cfg.observer,
	}
}

func (m *keyedMemoizer[R]) apply(key string, compute func() (R, error)) (R, error) {
	if m.obs == nil {
		val, err, _ := m.cache.GetOrCompute(key, compute)
		return val, err
	}

	var span timespan.TimeSpan
	val, err, outcome := m.cache.GetOrCompute(key, func() (R, error) {
		started := time.Now()
		v, e := compute()
		span = timespan.BetweenTimes(started, time.Now())
		return v, e
	})
	m.obs.On(EventData{
		Event:  eventOf(outcome),
		MemoID: m.id,
		Key:    key,
		Span:   span,
	})
	return val, err
}
