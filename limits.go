package frac

import (
	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// MinPositive returns the smallest positive Fraction, 1/MaxU.
func MinPositive[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return New(T(1), checked.Max[U]())
}

// MaxValue returns the largest finite Fraction, MaxT/1.
func MaxValue[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return From[T, U](checked.Max[T]())
}

// Lowest returns the most negative finite Fraction, MinT/1. It is zero for
// unsigned types.
func Lowest[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return From[T, U](checked.Min[T]())
}

// Epsilon returns the fraction counterpart of machine epsilon: 1 + Epsilon()
// is not equal to 1, but 1 + (Epsilon() - MinPositive()) is.
func Epsilon[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	if checked.IsSigned[T]() {
		return New(T(3), checked.Max[U]())
	}
	return New(T(2), checked.Max[U]())
}

// RoundError returns the largest error Round can introduce, 1/2.
func RoundError[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return New(T(1), U(2))
}

// Infinity returns 1/0. Use Infinity().Neg() for negative infinity.
func Infinity[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return Fraction[T, U]{numer: 1}
}

// NaN returns 0/0, which is also the zero value of Fraction.
func NaN[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return Fraction[T, U]{}
}
