// Package wide provides the 128-bit unsigned intermediate used to compare
// products of two 64-bit magnitudes without overflow.
package wide

// U128 is an unsigned 128-bit integer made of two 64-bit halves.
type U128 struct {
	hi, lo uint64
}

// Mul64 returns the full 128-bit product of u and v.
func Mul64(u, v uint64) U128 {
	hi, lo := mul64to128(u, v)
	return U128{hi: hi, lo: lo}
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}
