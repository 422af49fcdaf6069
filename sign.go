package frac

import (
	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// Abs returns |f| using the unsigned type for both parts, so the magnitude of
// the minimum value of a signed type is exact.
func (f Fraction[T, U]) Abs() Fraction[U, U] {
	return Fraction[U, U]{numer: U(mag64(f.numer)), denom: f.denom}
}

// Signum returns -1 if f is negative, +1 if it is positive and 0 if it is zero
// or NaN.
func (f Fraction[T, U]) Signum() T {
	if f.numer < 0 {
		return ^T(0) // -1
	} else if f.numer > 0 {
		return 1
	}
	return 0
}

// CopySign returns f with the sign of g. If g is zero, the result is zero.
func (f Fraction[T, U]) CopySign(g Fraction[T, U]) Fraction[T, U] {
	return f.CopySignValue(g.numer)
}

// CopySignValue returns f with the sign of v. If v is zero, the result is zero.
func (f Fraction[T, U]) CopySignValue(v T) Fraction[T, U] {
	if v == 0 {
		return Zero[T, U]()
	}
	if f.neg() != (v < 0) {
		return f.Neg()
	}
	return f
}

// Neg returns -f.
//
// The magnitude of the minimum value of a signed type does not fit in the
// type, so negating a fraction with that numerator loses precision; -(MIN/1)
// becomes +Inf. Unsigned fractions have no negative values, so negating
// anything other than zero or NaN yields NaN.
func (f Fraction[T, U]) Neg() Fraction[T, U] {
	if f.numer == 0 {
		return f
	}
	if !checked.IsSigned[T]() {
		return NaN[T, U]()
	}
	return negate[T](f)
}

// Negate returns -f using the signed type S of the same width as T, which
// allows the negation of an unsigned fraction. Magnitudes that do not fit S
// lose precision.
func Negate[S constraints.Signed, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U]) Fraction[S, U] {
	return negate[S](f)
}

func negate[S constraints.Integer, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U]) Fraction[S, U] {
	if f.numer == 0 {
		return New(S(0), f.denom)
	}
	return scaleInto[S, U](!f.neg(), mag64(f.numer), uint64(f.denom))
}

// Recip returns 1/f. The sign stays with the numerator. If the denominator of
// f does not fit the numerator type, the result loses precision.
func (f Fraction[T, U]) Recip() Fraction[T, U] {
	return scaleInto[T, U](f.neg(), uint64(f.denom), mag64(f.numer))
}
