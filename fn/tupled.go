package fn

import "github.com/on-the-ground/func_ive_go/tuple"

// Tupled converts the function into a unary function over a 1-tuple.
// It exists so memoization sees the same single-key shape at every
// arity.
//
// The return type is spelled as the unnamed function type rather than
// Fn1[tuple.T1[T1], R]: naming the method's own generic type with a
// wrapped type argument is an instantiation cycle the compiler
// rejects. The unnamed form is assignable to that Fn1 instantiation.
func (f Fn1[T1, R]) Tupled() func(tuple.T1[T1]) (R, error) {
	return func(t tuple.T1[T1]) (R, error) {
		return f(t.First())
	}
}

// Tupled converts the function into a unary function over a 2-tuple of
// its arguments. Applying the tupled form to NewT2(t1, t2) yields the
// same result, or the same failure, as f(t1, t2).
func (f Fn2[T1, T2, R]) Tupled() Fn1[tuple.T2[T1, T2], R] {
	return func(t tuple.T2[T1, T2]) (R, error) {
		return f(t.Unpack())
	}
}

// Tupled converts the function into a unary function over a 3-tuple.
func (f Fn3[T1, T2, T3, R]) Tupled() Fn1[tuple.T3[T1, T2, T3], R] {
	return func(t tuple.T3[T1, T2, T3]) (R, error) {
		return f(t.Unpack())
	}
}

// Tupled converts the function into a unary function over a 4-tuple.
func (f Fn4[T1, T2, T3, T4, R]) Tupled() Fn1[tuple.T4[T1, T2, T3, T4], R] {
	return func(t tuple.T4[T1, T2, T3, T4]) (R, error) {
		return f(t.Unpack())
	}
}

// Untupled1 is the inverse of Fn1.Tupled.
func Untupled1[T1, R any](f Fn1[tuple.T1[T1], R]) Fn1[T1, R] {
	return func(t1 T1) (R, error) {
		return f(tuple.NewT1(t1))
	}
}

// Untupled2 is the inverse of Fn2.Tupled.
func Untupled2[T1, T2, R any](f Fn1[tuple.T2[T1, T2], R]) Fn2[T1, T2, R] {
	return func(t1 T1, t2 T2) (R, error) {
		return f(tuple.NewT2(t1, t2))
	}
}

// Untupled3 is the inverse of Fn3.Tupled.
func Untupled3[T1, T2, T3, R any](f Fn1[tuple.T3[T1, T2, T3], R]) Fn3[T1, T2, T3, R] {
	return func(t1 T1, t2 T2, t3 T3) (R, error) {
		return f(tuple.NewT3(t1, t2, t3))
	}
}

// Untupled4 is the inverse of Fn4.Tupled.
func Untupled4[T1, T2, T3, T4, R any](f Fn1[tuple.T4[T1, T2, T3, T4], R]) Fn4[T1, T2, T3, T4, R] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) (R, error) {
		return f(tuple.NewT4(t1, t2, t3, t4))
	}
}
