// Package tuple provides small immutable tuple types that carry a
// function's arguments as a single value.
//
// A tuple built from comparable slot types is itself comparable, so it
// can serve directly as a map key. That property is what the memo
// package relies on for cache identity.
package tuple

import "fmt"

// T1 is a 1-tuple. It mostly exists so that unary functions share the
// same tupled shape as every other arity.
type T1[A any] struct {
	first A
}

// NewT1 is the canonical constructor for a T1. We include it because the
// field itself is unexported.
func NewT1[A any](a A) T1[A] {
	return T1[A]{first: a}
}

// First returns the first value in the T1.
func (t T1[A]) First() A {
	return t.first
}

// Unpack ejects the tuple's member.
func (t T1[A]) Unpack() A {
	return t.first
}

func (t T1[A]) String() string {
	return fmt.Sprintf("(%v)", t.first)
}

// T2 is the simplest 2-tuple type. It is useful for capturing ad hoc
// type conjunctions in a single value that can be easily dot-chained.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 is the canonical constructor for a T2.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{
		first:  a,
		second: b,
	}
}

// First returns the first value in the T2.
func (t T2[A, B]) First() A {
	return t.first
}

// Second returns the second value in the T2.
func (t T2[A, B]) Second() B {
	return t.second
}

// Unpack ejects the 2-tuple's members into the multiple return values
// that are customary in go idiom.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

func (t T2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

// MapFirst lifts the argument function into one that applies to the
// first element of a 2-tuple.
func MapFirst[A, B, C any](f func(A) B) func(T2[A, C]) T2[B, C] {
	return func(t T2[A, C]) T2[B, C] {
		return NewT2(f(t.first), t.second)
	}
}

// MapSecond lifts the argument function into one that applies to the
// second element of a 2-tuple.
func MapSecond[A, B, C any](f func(A) B) func(T2[C, A]) T2[C, B] {
	return func(t T2[C, A]) T2[C, B] {
		return NewT2(t.first, f(t.second))
	}
}

// T3 is a 3-tuple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewT3 is the canonical constructor for a T3.
func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{
		first:  a,
		second: b,
		third:  c,
	}
}

// First returns the first value in the T3.
func (t T3[A, B, C]) First() A {
	return t.first
}

// Second returns the second value in the T3.
func (t T3[A, B, C]) Second() B {
	return t.second
}

// Third returns the third value in the T3.
func (t T3[A, B, C]) Third() C {
	return t.third
}

// Unpack ejects the 3-tuple's members.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

func (t T3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// T4 is a 4-tuple.
type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

// NewT4 is the canonical constructor for a T4.
func NewT4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{
		first:  a,
		second: b,
		third:  c,
		fourth: d,
	}
}

// First returns the first value in the T4.
func (t T4[A, B, C, D]) First() A {
	return t.first
}

// Second returns the second value in the T4.
func (t T4[A, B, C, D]) Second() B {
	return t.second
}

// Third returns the third value in the T4.
func (t T4[A, B, C, D]) Third() C {
	return t.third
}

// Fourth returns the fourth value in the T4.
func (t T4[A, B, C, D]) Fourth() D {
	return t.fourth
}

// Unpack ejects the 4-tuple's members.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

func (t T4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.first, t.second, t.third, t.fourth)
}
