package fn

import "errors"

// ErrNilAfter is the panic value when a nil post-processing function is
// passed to one of the AndThen or Compose combinators. The rejection
// happens at composition time, before anything is applied.
var ErrNilAfter = errors.New("fn: after function is nil")

// AndThen combinators live at package level because Go methods cannot
// introduce the extra result type parameter V.

// AndThen0 returns a function that applies f and, only on success,
// feeds the result into after. A failure of f propagates unchanged and
// after is never invoked. Panics with ErrNilAfter if after is nil.
func AndThen0[R, V any](f Fn0[R], after Fn1[R, V]) Fn0[V] {
	mustNonNil(after)
	return func() (V, error) {
		r, err := f()
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// AndThen1 post-composes a unary function with after.
// Panics with ErrNilAfter if after is nil.
func AndThen1[T1, R, V any](f Fn1[T1, R], after Fn1[R, V]) Fn1[T1, V] {
	mustNonNil(after)
	return func(t1 T1) (V, error) {
		r, err := f(t1)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// AndThen2 post-composes a binary function with after.
// Panics with ErrNilAfter if after is nil.
func AndThen2[T1, T2, R, V any](f Fn2[T1, T2, R], after Fn1[R, V]) Fn2[T1, T2, V] {
	mustNonNil(after)
	return func(t1 T1, t2 T2) (V, error) {
		r, err := f(t1, t2)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// AndThen3 post-composes a ternary function with after.
// Panics with ErrNilAfter if after is nil.
func AndThen3[T1, T2, T3, R, V any](f Fn3[T1, T2, T3, R], after Fn1[R, V]) Fn3[T1, T2, T3, V] {
	mustNonNil(after)
	return func(t1 T1, t2 T2, t3 T3) (V, error) {
		r, err := f(t1, t2, t3)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// AndThen4 post-composes a quaternary function with after.
// Panics with ErrNilAfter if after is nil.
func AndThen4[T1, T2, T3, T4, R, V any](f Fn4[T1, T2, T3, T4, R], after Fn1[R, V]) Fn4[T1, T2, T3, T4, V] {
	mustNonNil(after)
	return func(t1 T1, t2 T2, t3 T3, t4 T4) (V, error) {
		r, err := f(t1, t2, t3, t4)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// Compose1 is pre-composition: Compose1(f, before)(v) applies before
// first and feeds its result into f. Panics with ErrNilAfter if before
// is nil.
func Compose1[V, T1, R any](f Fn1[T1, R], before Fn1[V, T1]) Fn1[V, R] {
	mustNonNil(before)
	return func(v V) (R, error) {
		t1, err := before(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(t1)
	}
}

func mustNonNil[A, B any](g Fn1[A, B]) {
	if g == nil {
		panic(ErrNilAfter)
	}
}
