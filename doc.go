/*
Package frac provides Fraction, an exact rational number built from a
fixed-width integer numerator and an unsigned denominator of the same width.

Fraction is a value type; all operations return new values. Values are kept in
lowest terms, and arithmetic never wraps or panics: results that overflow the
chosen width lose precision instead, and division by zero produces an
infinity or NaN in the same way floating point does.

Simple example:

	a := frac.New[int8, uint8](4, 3)
	b := frac.New[int8, uint8](5, 7)
	fmt.Println(a.Mul(b))
	// Output: 20/21

Aliases are provided for every Go integer type, so the above can also be
written using frac.Int8:

	a := frac.New[int8, uint8](4, 3)
	var b frac.Int8 = frac.From[int8, uint8](2)

The zero value of a Fraction is 0/0, which is NaN. Use Zero() or From(0) for
the number zero.

Fractions can be created from a variety of sources:

	New[T, U](numer T, denom U) Fraction[T, U]
	From[T, U](v T) Fraction[T, U]
	Parse[T, U](s string) (Fraction[T, U], error)
	FromBigRat[T, U](r *big.Rat) (out Fraction[T, U], exact bool)
	FromFloat64[T, U](v float64) (out Fraction[T, U], exact bool)
	Convert[I, IU, T, U](f Fraction[T, U]) Fraction[I, IU]

Comparisons involving NaN are unordered: NaN is not equal to anything,
including itself. Comparisons are always exact, regardless of the magnitude of
the numerators and denominators involved.

Fraction supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

The checked subpackage contains the overflow-checked integer primitives the
arithmetic is built on.
*/
package frac
