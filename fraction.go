package frac

import (
	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// Fraction is a rational number with a numerator of type T and a denominator
// of type U. U must be the unsigned type of the same width as T.
//
// A Fraction with a zero denominator is not finite: if the numerator is also
// zero it is NaN, otherwise it is an infinity with the sign of the numerator.
type Fraction[T constraints.Integer, U constraints.Unsigned] struct {
	numer T
	denom U
}

type (
	Int8   = Fraction[int8, uint8]
	Uint8  = Fraction[uint8, uint8]
	Int16  = Fraction[int16, uint16]
	Uint16 = Fraction[uint16, uint16]
	Int32  = Fraction[int32, uint32]
	Uint32 = Fraction[uint32, uint32]
	Int64  = Fraction[int64, uint64]
	Uint64 = Fraction[uint64, uint64]
	Int    = Fraction[int, uint]
	Uint   = Fraction[uint, uint]
)

// New creates a Fraction reduced to lowest terms. Any pair of values is
// accepted, including a zero denominator.
//
// New panics if T and U are not the same width.
func New[T constraints.Integer, U constraints.Unsigned](numer T, denom U) Fraction[T, U] {
	if checked.Bits[T]() != checked.Bits[U]() {
		panic("frac: numerator and denominator types must be the same width")
	}

	neg := numer < 0
	n := mag64(numer)
	if g := gcd(n, uint64(denom)); g > 1 {
		n /= g
		denom /= U(g)
	}
	return Fraction[T, U]{numer: fromMag64[T](neg, n), denom: denom}
}

// From creates the Fraction v/1.
func From[T constraints.Integer, U constraints.Unsigned](v T) Fraction[T, U] {
	return New(v, U(1))
}

// Zero returns 0/1.
func Zero[T constraints.Integer, U constraints.Unsigned]() Fraction[T, U] {
	return New(T(0), U(1))
}

func (f Fraction[T, U]) Numer() T { return f.numer }
func (f Fraction[T, U]) Denom() U { return f.denom }

func (f Fraction[T, U]) IsNaN() bool    { return f.numer == 0 && f.denom == 0 }
func (f Fraction[T, U]) IsInf() bool    { return f.numer != 0 && f.denom == 0 }
func (f Fraction[T, U]) IsFinite() bool { return f.denom != 0 }
func (f Fraction[T, U]) IsZero() bool   { return f.numer == 0 && f.denom != 0 }
func (f Fraction[T, U]) IsOne() bool    { return f.numer > 0 && U(f.numer) == f.denom }

// IsInt reports whether f is finite and has no fractional part.
func (f Fraction[T, U]) IsInt() bool { return f.denom == 1 }

func (f *Fraction[T, U]) AddAssign(g Fraction[T, U]) { *f = f.Add(g) }
func (f *Fraction[T, U]) SubAssign(g Fraction[T, U]) { *f = f.Sub(g) }
func (f *Fraction[T, U]) MulAssign(g Fraction[T, U]) { *f = f.Mul(g) }
func (f *Fraction[T, U]) QuoAssign(g Fraction[T, U]) { *f = f.Quo(g) }
func (f *Fraction[T, U]) RemAssign(g Fraction[T, U]) { *f = f.Rem(g) }

func (f *Fraction[T, U]) AddValueAssign(v T) { *f = f.AddValue(v) }
func (f *Fraction[T, U]) SubValueAssign(v T) { *f = f.SubValue(v) }
func (f *Fraction[T, U]) MulValueAssign(v T) { *f = f.MulValue(v) }
func (f *Fraction[T, U]) QuoValueAssign(v T) { *f = f.QuoValue(v) }
func (f *Fraction[T, U]) RemValueAssign(v T) { *f = f.RemValue(v) }
