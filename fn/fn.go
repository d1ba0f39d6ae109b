// Package fn provides a checked function algebra for arities 0 to 4.
//
// A checked function is an ordinary Go func value returning a result
// and an error. Fn0 through Fn4 give those shapes named types so that
// structural transforms — partial application, currying, tupling,
// reversal, composition — can be written once per arity and chained.
// The memo package wraps any of these shapes with per-argument caching.
package fn

// Lambda is implemented by every function shape in this package. It
// lets generic tooling dispatch on arity without runtime inspection.
type Lambda interface {
	Arity() int
}

// Fn0 is a checked function of no arguments.
type Fn0[R any] func() (R, error)

// Fn1 is a checked function of one argument.
type Fn1[T1, R any] func(T1) (R, error)

// Fn2 is a checked function of two arguments.
type Fn2[T1, T2, R any] func(T1, T2) (R, error)

// Fn3 is a checked function of three arguments.
type Fn3[T1, T2, T3, R any] func(T1, T2, T3) (R, error)

// Fn4 is a checked function of four arguments.
type Fn4[T1, T2, T3, T4, R any] func(T1, T2, T3, T4) (R, error)

var (
	_ Lambda = (Fn0[any])(nil)
	_ Lambda = (Fn1[any, any])(nil)
	_ Lambda = (Fn2[any, any, any])(nil)
	_ Lambda = (Fn3[any, any, any, any])(nil)
	_ Lambda = (Fn4[any, any, any, any, any])(nil)
)

// Arity returns 0.
func (f Fn0[R]) Arity() int { return 0 }

// Arity returns 1.
func (f Fn1[T1, R]) Arity() int { return 1 }

// Arity returns 2.
func (f Fn2[T1, T2, R]) Arity() int { return 2 }

// Arity returns 3.
func (f Fn3[T1, T2, T3, R]) Arity() int { return 3 }

// Arity returns 4.
func (f Fn4[T1, T2, T3, T4, R]) Arity() int { return 4 }

// Lift0 fixes the static shape of a plain func value as an Fn0.
// It is an identity operation with no conversion cost.
func Lift0[R any](f func() (R, error)) Fn0[R] { return f }

// Lift1 fixes the static shape of a plain func value as an Fn1.
func Lift1[T1, R any](f func(T1) (R, error)) Fn1[T1, R] { return f }

// Lift2 fixes the static shape of a plain func value as an Fn2.
func Lift2[T1, T2, R any](f func(T1, T2) (R, error)) Fn2[T1, T2, R] { return f }

// Lift3 fixes the static shape of a plain func value as an Fn3.
func Lift3[T1, T2, T3, R any](f func(T1, T2, T3) (R, error)) Fn3[T1, T2, T3, R] { return f }

// Lift4 fixes the static shape of a plain func value as an Fn4.
func Lift4[T1, T2, T3, T4, R any](f func(T1, T2, T3, T4) (R, error)) Fn4[T1, T2, T3, T4, R] {
	return f
}

// Identity is the unary function that returns its argument and never
// fails. It is the left and right identity of composition.
func Identity[A any]() Fn1[A, A] {
	return func(a A) (A, error) {
		return a, nil
	}
}

// Constant returns a function that ignores its argument and always
// returns a, irrespective of what it is applied to.
func Constant[B, A any](a A) Fn1[B, A] {
	return func(_ B) (A, error) {
		return a, nil
	}
}
