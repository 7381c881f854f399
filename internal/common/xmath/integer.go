// Package xmath collects small overflow-safe integer helpers.
package xmath

import "math/bits"

// SafeMul returns x*y and reports whether the multiplication overflowed
// uint64.
func SafeMul(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// SafeAdd returns x+y and reports whether the addition overflowed uint64.
func SafeAdd(x, y uint64) (uint64, bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut != 0
}

// AbsoluteDifference returns |x-y| in uint64 form.
func AbsoluteDifference(x, y uint64) uint64 {
	if x > y {
		return x - y
	}
	return y - x
}

// CeilDiv returns ceil(x/y), or 0 if y is 0.
func CeilDiv(x, y int64) int64 {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}
