package fn

// Curried returns the function itself. A unary function is already
// fully curried; the method exists so curried chains compose uniformly
// across arities.
func (f Fn1[T1, R]) Curried() Fn1[T1, R] {
	return f
}

// Curried converts the function into a chain of unary functions, one
// level per argument. Applying the chain to t1 then t2 yields the same
// result, or the same failure, as f(t1, t2). The intermediate levels
// never fail themselves.
func (f Fn2[T1, T2, R]) Curried() Fn1[T1, Fn1[T2, R]] {
	return func(t1 T1) (Fn1[T2, R], error) {
		return f.Partial(t1), nil
	}
}

// Curried converts the function into a three-level chain of unary
// functions.
func (f Fn3[T1, T2, T3, R]) Curried() Fn1[T1, Fn1[T2, Fn1[T3, R]]] {
	return func(t1 T1) (Fn1[T2, Fn1[T3, R]], error) {
		return f.Partial(t1).Curried(), nil
	}
}

// Curried converts the function into a four-level chain of unary
// functions.
func (f Fn4[T1, T2, T3, T4, R]) Curried() Fn1[T1, Fn1[T2, Fn1[T3, Fn1[T4, R]]]] {
	return func(t1 T1) (Fn1[T2, Fn1[T3, Fn1[T4, R]]], error) {
		return f.Partial(t1).Curried(), nil
	}
}
