/*
Package checked implements integer arithmetic that reports overflow instead of
wrapping around.

Every operation works on any fixed-width Go integer type and returns the exact
result along with ok == true, or the zero value and ok == false if the result
cannot be represented in the type:

	v, ok := checked.Mul[int8](64, 2)
	// v == 0, ok == false

Division and remainder also report ok == false for a zero divisor and for the
single overflowing quotient, Min / -1.
*/
package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// Min returns the smallest value representable by T.
func Min[T constraints.Integer]() T {
	if IsSigned[T]() {
		return T(1) << (Bits[T]() - 1)
	}
	return 0
}

// Max returns the largest value representable by T.
func Max[T constraints.Integer]() T {
	if IsSigned[T]() {
		return ^Min[T]()
	}
	return ^T(0)
}

// Add returns a + b.
func Add[T constraints.Integer](a, b T) (sum T, ok bool) {
	if a > 0 && b > Max[T]()-a {
		return 0, false
	}
	if a < 0 && b < Min[T]()-a {
		return 0, false
	}
	return a + b, true
}

// Sub returns a - b.
func Sub[T constraints.Integer](a, b T) (diff T, ok bool) {
	if b < 0 && a > Max[T]()+b {
		return 0, false
	}
	if b > 0 && a < Min[T]()+b {
		return 0, false
	}
	return a - b, true
}

// Mul returns a * b.
func Mul[T constraints.Integer](a, b T) (product T, ok bool) {
	min, max := Min[T](), Max[T]()

	if b > 0 {
		if a > max/b || a < min/b {
			return 0, false
		}

	} else if b < 0 {
		// ^T(0) is -1 for every signed T; b can only be negative if T is signed.
		minusOne := b == ^T(0)
		if minusOne && a == min {
			return 0, false
		}
		if a < max/b || (!minusOne && a > min/b) {
			return 0, false
		}
	}

	return a * b, true
}

// Quo returns the quotient a / b, truncated towards zero like Go's '/'
// operator.
func Quo[T constraints.Integer](a, b T) (quo T, ok bool) {
	if b == 0 || (b < 0 && b == ^T(0) && a == Min[T]()) {
		return 0, false
	}
	return a / b, true
}

// Rem returns the remainder a % b, which has the sign of a like Go's '%'
// operator.
func Rem[T constraints.Integer](a, b T) (rem T, ok bool) {
	if b == 0 || (b < 0 && b == ^T(0) && a == Min[T]()) {
		return 0, false
	}
	return a % b, true
}

// Neg returns -a. It fails for Min of a signed type, and for any non-zero
// value of an unsigned type.
func Neg[T constraints.Integer](a T) (neg T, ok bool) {
	return Sub(T(0), a)
}
