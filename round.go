package frac

import "github.com/shabbyrobe/go-frac/checked"

// quoRem returns the truncated quotient and remainder of |numer| / denom.
// f must be finite.
func (f Fraction[T, U]) quoRem() (q, r uint64) {
	n, d := mag64(f.numer), uint64(f.denom)
	return n / d, n % d
}

// nonFinite returns the integer an infinity or NaN rounds to: NaN is 0, and
// the infinities clamp to the range of T.
func (f Fraction[T, U]) nonFinite() T {
	if f.numer > 0 {
		return checked.Max[T]()
	} else if f.numer < 0 {
		return checked.Min[T]()
	}
	return 0
}

// Trunc rounds f towards zero.
func (f Fraction[T, U]) Trunc() T {
	if f.denom == 0 {
		return f.nonFinite()
	}
	q, _ := f.quoRem()
	return fromMag64[T](f.neg(), q)
}

// Floor rounds f towards negative infinity.
func (f Fraction[T, U]) Floor() T {
	if f.denom == 0 {
		return f.nonFinite()
	}
	q, r := f.quoRem()
	if f.neg() && r != 0 {
		q++
	}
	return fromMag64[T](f.neg(), q)
}

// Ceil rounds f towards positive infinity.
func (f Fraction[T, U]) Ceil() T {
	if f.denom == 0 {
		return f.nonFinite()
	}
	q, r := f.quoRem()
	if !f.neg() && r != 0 {
		q++
	}
	return fromMag64[T](f.neg(), q)
}

// Round rounds f to the nearest integer, rounding halfway cases away from
// zero.
func (f Fraction[T, U]) Round() T {
	if f.denom == 0 {
		return f.nonFinite()
	}
	q, r := f.quoRem()
	if r > (uint64(f.denom)-1)/2 {
		q++
	}
	return fromMag64[T](f.neg(), q)
}

// Fract returns the fractional part of f, f - f.Trunc(), which has the sign of
// f. The fractional part of NaN or an infinity is NaN.
func (f Fraction[T, U]) Fract() Fraction[T, U] {
	if f.denom == 0 {
		return NaN[T, U]()
	}
	_, r := f.quoRem()
	return New(fromMag64[T](f.neg(), r), f.denom)
}

// Pow returns f**n. Negative powers are powers of the reciprocal, and f**0 is
// 1 for every f.
func (f Fraction[T, U]) Pow(n int) Fraction[T, U] {
	x := f
	if n < 0 {
		x = f.Recip()
	}

	r := From[T, U](1)
	for e := mag64(n); e > 0; e >>= 1 {
		if e&1 == 1 {
			r = r.Mul(x)
		}
		if e > 1 {
			x = x.Mul(x)
		}
	}
	return r
}
