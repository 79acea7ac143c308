package keypad

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// addSat returns x+y, or math.MaxUint64 if the sum does not fit.
func addSat(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// mulSat returns x*y, or math.MaxUint64 if the product does not fit.
func mulSat(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
