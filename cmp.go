package frac

import (
	"github.com/shabbyrobe/go-frac/internal/wide"
	"golang.org/x/exp/constraints"
)

// Ordering is the result of comparing two values that may include NaN.
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "invalid"
	}
}

// Reverse returns the ordering of the same comparison with the operands
// swapped.
func (o Ordering) Reverse() Ordering {
	if o == Less || o == Greater {
		return -o
	}
	return o
}

// cmpParts compares two sign-magnitude rationals. The cross products are
// computed in 128 bits, so the result is exact for any pair of 64-bit parts.
func cmpParts(fneg bool, fn, fd uint64, gneg bool, gn, gd uint64) Ordering {
	if (fn == 0 && fd == 0) || (gn == 0 && gd == 0) {
		return Unordered
	}

	fs, gs := signOf(fneg, fn), signOf(gneg, gn)
	if fs != gs {
		if fs < gs {
			return Less
		}
		return Greater
	} else if fs == 0 {
		return Equal
	}

	// Two infinities of the same sign have zero cross products and are equal.
	o := Ordering(wide.Mul64(fn, gd).Cmp(wide.Mul64(gn, fd)))
	if fs < 0 {
		o = o.Reverse()
	}
	return o
}

func signOf(neg bool, n uint64) int {
	if n == 0 {
		return 0
	} else if neg {
		return -1
	}
	return 1
}

// Cmp compares f and g. If either is NaN, the result is Unordered.
func (f Fraction[T, U]) Cmp(g Fraction[T, U]) Ordering {
	return cmpParts(f.neg(), mag64(f.numer), uint64(f.denom), g.neg(), mag64(g.numer), uint64(g.denom))
}

// Equal reports whether f == g. NaN is not equal to anything, including
// itself.
func (f Fraction[T, U]) Equal(g Fraction[T, U]) bool { return f.Cmp(g) == Equal }

func (f Fraction[T, U]) GreaterThan(g Fraction[T, U]) bool { return f.Cmp(g) == Greater }

func (f Fraction[T, U]) GreaterOrEqualTo(g Fraction[T, U]) bool {
	o := f.Cmp(g)
	return o == Greater || o == Equal
}

func (f Fraction[T, U]) LessThan(g Fraction[T, U]) bool { return f.Cmp(g) == Less }

func (f Fraction[T, U]) LessOrEqualTo(g Fraction[T, U]) bool {
	o := f.Cmp(g)
	return o == Less || o == Equal
}

// CmpValue compares f with the integer v.
func (f Fraction[T, U]) CmpValue(v T) Ordering { return CmpInt(f, v) }

// EqualValue reports whether f == v.
func (f Fraction[T, U]) EqualValue(v T) bool { return CmpInt(f, v) == Equal }

// CmpZero compares f with zero using only the sign of the numerator.
func (f Fraction[T, U]) CmpZero() Ordering {
	if f.IsNaN() {
		return Unordered
	}
	return Ordering(signOf(f.neg(), mag64(f.numer)))
}

// EqualZero reports whether f is zero.
func (f Fraction[T, U]) EqualZero() bool { return f.IsZero() }

// CmpInt compares f with v, which may be an integer of any type.
func CmpInt[I, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U], v I) Ordering {
	return cmpParts(f.neg(), mag64(f.numer), uint64(f.denom), v < 0, mag64(v), 1)
}

// IntCmp compares v with f, which is the reverse of CmpInt(f, v).
func IntCmp[I, T constraints.Integer, U constraints.Unsigned](v I, f Fraction[T, U]) Ordering {
	return CmpInt(f, v).Reverse()
}

// EqualInt reports whether f == v, for an integer v of any type.
func EqualInt[I, T constraints.Integer, U constraints.Unsigned](f Fraction[T, U], v I) bool {
	return CmpInt(f, v) == Equal
}
