package frac

import (
	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// checkedOp computes an exact result, or returns ok == false if an
// intermediate value overflows.
type checkedOp[T constraints.Integer, U constraints.Unsigned] func(a, b Fraction[T, U]) (Fraction[T, U], bool)

// reduceHook, if set, is passed the number of shrinks each call to reduce
// made before op succeeded.
var reduceHook func(shrinks uint)

// reduce applies op to f and g. If the exact result overflows, the operand
// with the larger numerator or denominator is repeatedly shrunk by a growing
// power of two until op succeeds. Each operand can be shrunk at most once per
// bit before it collapses to 0/0, with which every op succeeds, so there are
// never more than 2*W shrinks for a W bit type.
func reduce[T constraints.Integer, U constraints.Unsigned](f, g Fraction[T, U], op checkedOp[T, U]) Fraction[T, U] {
	a, b := f, g
	var i, j uint
	for {
		if r, ok := op(a, b); ok {
			if reduceHook != nil {
				reduceHook(i + j)
			}
			return r
		}
		if a.dominant() > b.dominant() {
			i++
			a = f.shrink(i)
		} else {
			j++
			b = g.shrink(j)
		}
	}
}

// Add returns f + g.
func (f Fraction[T, U]) Add(g Fraction[T, U]) Fraction[T, U] {
	return reduce(f, g, checkedAdd[T, U])
}

// Sub returns f - g. For unsigned types, a negative difference is NaN.
func (f Fraction[T, U]) Sub(g Fraction[T, U]) Fraction[T, U] {
	if !checked.IsSigned[T]() && f.IsFinite() && g.IsFinite() && f.LessThan(g) {
		return NaN[T, U]()
	}
	return reduce(f, g, checkedSub[T, U])
}

// Mul returns f * g.
func (f Fraction[T, U]) Mul(g Fraction[T, U]) Fraction[T, U] {
	return reduce(f, g, checkedMul[T, U])
}

// Quo returns f / g. Dividing a non-zero value by zero gives an infinity with
// the sign of f; 0/0 is NaN.
func (f Fraction[T, U]) Quo(g Fraction[T, U]) Fraction[T, U] {
	return reduce(f, g, checkedQuo[T, U])
}

// Rem returns the remainder of f / g after truncating the quotient towards
// zero. The result has the sign of f, like Go's '%' operator.
//
// Rem by zero is NaN, as is the remainder of an infinity divided by a finite
// value. The remainder of any value divided by an infinity is the value itself.
func (f Fraction[T, U]) Rem(g Fraction[T, U]) Fraction[T, U] {
	return reduce(f, g, checkedRem[T, U])
}

func (f Fraction[T, U]) AddValue(v T) Fraction[T, U] { return f.Add(From[T, U](v)) }
func (f Fraction[T, U]) SubValue(v T) Fraction[T, U] { return f.Sub(From[T, U](v)) }
func (f Fraction[T, U]) MulValue(v T) Fraction[T, U] { return f.Mul(From[T, U](v)) }
func (f Fraction[T, U]) QuoValue(v T) Fraction[T, U] { return f.Quo(From[T, U](v)) }
func (f Fraction[T, U]) RemValue(v T) Fraction[T, U] { return f.Rem(From[T, U](v)) }

// RevSub returns v - f.
func (f Fraction[T, U]) RevSub(v T) Fraction[T, U] { return From[T, U](v).Sub(f) }

// RevQuo returns v / f.
func (f Fraction[T, U]) RevQuo(v T) Fraction[T, U] { return From[T, U](v).Quo(f) }

// RevRem returns v % f.
func (f Fraction[T, U]) RevRem(v T) Fraction[T, U] { return From[T, U](v).Rem(f) }

// commonNumers rescales the numerators of a and b to their least common
// denominator. Both denominators must be non-zero.
func commonNumers[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (an, bn T, d U, ok bool) {
	d, ok = lcm(a.denom, b.denom)
	if !ok {
		return 0, 0, 0, false
	}

	max := U(checked.Max[T]())
	sa, sb := d/a.denom, d/b.denom
	if sa > max || sb > max {
		return 0, 0, 0, false
	}
	if an, ok = checked.Mul(a.numer, T(sa)); !ok {
		return 0, 0, 0, false
	}
	if bn, ok = checked.Mul(b.numer, T(sb)); !ok {
		return 0, 0, 0, false
	}
	return an, bn, d, true
}

func checkedAdd[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (Fraction[T, U], bool) {
	if b.IsZero() || a.IsNaN() {
		return a, true
	}
	if a.IsZero() || b.IsNaN() {
		return b, true
	}

	if a.denom == b.denom {
		n, ok := checked.Add(a.numer, b.numer)
		if !ok {
			return a, false
		}
		return New(n, a.denom), true
	}

	// An infinity plus anything finite is unchanged.
	if a.denom == 0 {
		return a, true
	} else if b.denom == 0 {
		return b, true
	}

	an, bn, d, ok := commonNumers(a, b)
	if !ok {
		return a, false
	}
	n, ok := checked.Add(an, bn)
	if !ok {
		return a, false
	}
	return New(n, d), true
}

func checkedSub[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (Fraction[T, U], bool) {
	if b.IsZero() || a.IsNaN() {
		return a, true
	}
	if b.IsNaN() {
		return b, true
	}
	if a.IsZero() {
		return b.Neg(), true
	}

	if a.denom == b.denom {
		n, ok := checked.Sub(a.numer, b.numer)
		if !ok {
			return a, false
		}
		return New(n, a.denom), true
	}

	if a.denom == 0 {
		return a, true
	} else if b.denom == 0 {
		// Finite minus an infinity is the opposite infinity, which does not
		// exist for unsigned types.
		n, _ := checked.Sub(T(0), b.numer)
		return New(n, U(0)), true
	}

	an, bn, d, ok := commonNumers(a, b)
	if !ok {
		return a, false
	}
	n, ok := checked.Sub(an, bn)
	if !ok {
		return a, false
	}
	return New(n, d), true
}

func checkedRem[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (Fraction[T, U], bool) {
	if b.numer == 0 || a.IsNaN() {
		return NaN[T, U](), true
	}
	if b.denom == 0 {
		return a, true
	} else if a.denom == 0 {
		return NaN[T, U](), true
	}

	if a.denom == b.denom {
		n, ok := checked.Rem(a.numer, b.numer)
		if !ok {
			return a, false
		}
		return New(n, a.denom), true
	}

	an, bn, d, ok := commonNumers(a, b)
	if !ok {
		return a, false
	}
	n, ok := checked.Rem(an, bn)
	if !ok {
		return a, false
	}
	return New(n, d), true
}

func checkedMul[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (Fraction[T, U], bool) {
	if a.IsNaN() || b.IsNaN() {
		return NaN[T, U](), true
	}
	return mulMag[T, U](a.neg() != b.neg(),
		mag64(a.numer), uint64(a.denom),
		mag64(b.numer), uint64(b.denom))
}

func checkedQuo[T constraints.Integer, U constraints.Unsigned](a, b Fraction[T, U]) (Fraction[T, U], bool) {
	if a.IsNaN() || b.IsNaN() {
		return NaN[T, U](), true
	}
	return mulMag[T, U](a.neg() != b.neg(),
		mag64(a.numer), uint64(a.denom),
		uint64(b.denom), mag64(b.numer))
}

// mulMag multiplies an/ad by bn/bd, cancelling common factors across the two
// operands before multiplying. All four magnitudes must fit in U.
func mulMag[T constraints.Integer, U constraints.Unsigned](neg bool, an, ad, bn, bd uint64) (Fraction[T, U], bool) {
	g1 := gcd(an, bd)
	if g1 == 0 {
		g1 = 1
	}
	g2 := gcd(bn, ad)
	if g2 == 0 {
		g2 = 1
	}

	n, ok := checked.Mul(U(an/g1), U(bn/g2))
	if !ok || uint64(n) > limit64[T](neg) {
		return Fraction[T, U]{}, false
	}
	d, ok := checked.Mul(U(ad/g2), U(bd/g1))
	if !ok {
		return Fraction[T, U]{}, false
	}
	return New(fromMag64[T](neg, uint64(n)), d), true
}
