package frac

import (
	"math"
	"math/big"

	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// Convert returns f as a Fraction[I, IU].
//
// A negative f converted to an unsigned type is NaN. Converting to a wider
// type, or to a type of the same width that can hold every value of T, is
// exact. Otherwise the numerator and denominator are divided by the smallest
// common factor that makes both fit, losing precision.
func Convert[I constraints.Integer, IU constraints.Unsigned, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U]) Fraction[I, IU] {
	if f.neg() && !checked.IsSigned[I]() {
		return NaN[I, IU]()
	}

	from, to := checked.Bits[T](), checked.Bits[I]()
	if to > from || (to == from && (checked.IsSigned[I]() == checked.IsSigned[T]() || !checked.IsSigned[I]())) {
		return Fraction[I, IU]{numer: I(f.numer), denom: IU(f.denom)}
	}
	return scaleInto[I, IU](f.neg(), mag64(f.numer), uint64(f.denom))
}

// TruncTo returns f.Trunc() converted to the integer type I. Values outside
// the range of I wrap, as they do with a Go conversion.
func TruncTo[I, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U]) I {
	return I(f.Trunc())
}

// Float64 returns numer / denom using floating point division. NaN and the
// infinities map to their float64 counterparts.
func (f Fraction[T, U]) Float64() float64 {
	return float64(f.numer) / float64(f.denom)
}

// Float32 returns numer / denom using floating point division.
func (f Fraction[T, U]) Float32() float32 {
	return float32(f.numer) / float32(f.denom)
}

// Rat returns f as a big.Rat. It returns nil if f is not finite.
func (f Fraction[T, U]) Rat() *big.Rat {
	if f.denom == 0 {
		return nil
	}
	var n big.Int
	if f.neg() {
		n.SetInt64(int64(f.numer))
	} else {
		n.SetUint64(uint64(f.numer))
	}
	return new(big.Rat).SetFrac(&n, new(big.Int).SetUint64(uint64(f.denom)))
}

// FromBigRat converts r to a Fraction. If r does not fit, the numerator and
// denominator are divided by the smallest common factor that makes them fit
// and exact is false. A negative r converted to an unsigned type is NaN.
func FromBigRat[T constraints.Integer, U constraints.Unsigned](r *big.Rat) (out Fraction[T, U], exact bool) {
	neg := r.Sign() < 0
	if neg && !checked.IsSigned[T]() {
		return NaN[T, U](), false
	}

	n := new(big.Int).Abs(r.Num())
	d := r.Denom()

	s := bigMinScale(n, limit64[T](neg))
	if ds := bigMinScale(d, uint64(checked.Max[U]())); ds.Cmp(s) > 0 {
		s = ds
	}
	exact = s.IsUint64() && s.Uint64() == 1
	if !exact {
		n.Quo(n, s)
		d = new(big.Int).Quo(d, s)
	}
	return New(fromMag64[T](neg, n.Uint64()), U(d.Uint64())), exact
}

// bigMinScale is minScale for an arbitrarily large v.
func bigMinScale(v *big.Int, lim uint64) *big.Int {
	l := new(big.Int).SetUint64(lim)
	if v.Cmp(l) <= 0 {
		return big.NewInt(1)
	}
	l.Add(l, big1)
	s := new(big.Int).Quo(v, l)
	return s.Add(s, big1)
}

// FromFloat64 converts v to a Fraction. NaN and the infinities convert
// exactly, except -Inf for an unsigned type, which is NaN. Finite values that
// do not fit lose precision as they do in FromBigRat.
func FromFloat64[T constraints.Integer, U constraints.Unsigned](v float64) (out Fraction[T, U], exact bool) {
	switch {
	case math.IsNaN(v):
		return NaN[T, U](), true
	case math.IsInf(v, 1):
		return Infinity[T, U](), true
	case math.IsInf(v, -1):
		if !checked.IsSigned[T]() {
			return NaN[T, U](), false
		}
		return Infinity[T, U]().Neg(), true
	}
	return FromBigRat[T, U](new(big.Rat).SetFloat64(v))
}
