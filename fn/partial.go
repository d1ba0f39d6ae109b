package fn

// Partial binds the first argument eagerly and returns a unary function
// over the remaining argument. Computation, and any failure, is
// deferred until the returned function is applied.
func (f Fn2[T1, T2, R]) Partial(t1 T1) Fn1[T2, R] {
	return func(t2 T2) (R, error) {
		return f(t1, t2)
	}
}

// Partial binds the first argument and defers the rest.
func (f Fn3[T1, T2, T3, R]) Partial(t1 T1) Fn2[T2, T3, R] {
	return func(t2 T2, t3 T3) (R, error) {
		return f(t1, t2, t3)
	}
}

// Partial2 binds the first two arguments and defers the rest.
func (f Fn3[T1, T2, T3, R]) Partial2(t1 T1, t2 T2) Fn1[T3, R] {
	return func(t3 T3) (R, error) {
		return f(t1, t2, t3)
	}
}

// Partial binds the first argument and defers the rest.
func (f Fn4[T1, T2, T3, T4, R]) Partial(t1 T1) Fn3[T2, T3, T4, R] {
	return func(t2 T2, t3 T3, t4 T4) (R, error) {
		return f(t1, t2, t3, t4)
	}
}

// Partial2 binds the first two arguments and defers the rest.
func (f Fn4[T1, T2, T3, T4, R]) Partial2(t1 T1, t2 T2) Fn2[T3, T4, R] {
	return func(t3 T3, t4 T4) (R, error) {
		return f(t1, t2, t3, t4)
	}
}

// Partial3 binds the first three arguments and defers the rest.
func (f Fn4[T1, T2, T3, T4, R]) Partial3(t1 T1, t2 T2, t3 T3) Fn1[T4, R] {
	return func(t4 T4) (R, error) {
		return f(t1, t2, t3, t4)
	}
}
