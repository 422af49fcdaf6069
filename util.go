package frac

import (
	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// mag64 returns |x|. It is correct for the minimum value of a signed type,
// whose magnitude does not fit the type itself.
func mag64[X constraints.Integer](x X) uint64 {
	if x < 0 {
		return uint64(^x) + 1
	}
	return uint64(x)
}

// fromMag64 is the inverse of mag64. m must not exceed limit64[T](neg).
func fromMag64[T constraints.Integer](neg bool, m uint64) T {
	if neg {
		return -T(m)
	}
	return T(m)
}

// limit64 returns the largest magnitude T can hold with the given sign.
func limit64[T constraints.Integer](neg bool) uint64 {
	if neg {
		return mag64(checked.Min[T]())
	}
	return uint64(checked.Max[T]())
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of a and b, or ok == false if it does
// not fit U. Both must be non-zero.
func lcm[U constraints.Unsigned](a, b U) (l U, ok bool) {
	g := U(gcd(uint64(a), uint64(b)))
	return checked.Mul(a/g, b)
}

// minScale returns the smallest s for which v/s <= lim.
func minScale(v, lim uint64) uint64 {
	if v <= lim {
		return 1
	}
	return v/(lim+1) + 1
}

// scaleInto builds a Fraction[T, U] from a sign and two magnitudes, dividing
// both by the smallest common factor that brings them within range.
func scaleInto[T constraints.Integer, U constraints.Unsigned](neg bool, n, d uint64) Fraction[T, U] {
	s := minScale(n, limit64[T](neg))
	if ds := minScale(d, uint64(checked.Max[U]())); ds > s {
		s = ds
	}
	return New(fromMag64[T](neg, n/s), U(d/s))
}

func (f Fraction[T, U]) neg() bool { return f.numer < 0 }

// dominant is the larger of |numer| and denom.
func (f Fraction[T, U]) dominant() uint64 {
	n, d := mag64(f.numer), uint64(f.denom)
	if n > d {
		return n
	}
	return d
}

// shrink divides numer and denom by 2**k, truncating both towards zero.
func (f Fraction[T, U]) shrink(k uint) Fraction[T, U] {
	return New(fromMag64[T](f.neg(), mag64(f.numer)>>k), U(uint64(f.denom)>>k))
}
