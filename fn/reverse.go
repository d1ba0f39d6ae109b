package fn

// Reversed returns the function itself; a unary function has nothing
// to mirror.
func (f Fn1[T1, R]) Reversed() Fn1[T1, R] {
	return f
}

// Reversed returns a function over the mirrored argument order.
// Reversing twice restores the original behavior.
func (f Fn2[T1, T2, R]) Reversed() Fn2[T2, T1, R] {
	return func(t2 T2, t1 T1) (R, error) {
		return f(t1, t2)
	}
}

// Reversed returns a function over the mirrored argument order.
func (f Fn3[T1, T2, T3, R]) Reversed() Fn3[T3, T2, T1, R] {
	return func(t3 T3, t2 T2, t1 T1) (R, error) {
		return f(t1, t2, t3)
	}
}

// Reversed returns a function over the mirrored argument order.
func (f Fn4[T1, T2, T3, T4, R]) Reversed() Fn4[T4, T3, T2, T1, R] {
	return func(t4 T4, t3 T3, t2 T2, t1 T1) (R, error) {
		return f(t1, t2, t3, t4)
	}
}
