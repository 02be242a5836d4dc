package moremath

import "image"

// MinInt returns the smallest int from its arguments; panics if called with no
// args.
func MinInt(ints ...int) int {
	min := ints[0]
	for i := 1; i < len(ints); i++ {
		if n := ints[i]; n < min {
			min = n
		}
	}
	return min
}

// MaxInt returns the largest int from its arguments; panics if called with no
// args.
func MaxInt(ints ...int) int {
	max := ints[0]
	for i := 1; i < len(ints); i++ {
		if n := ints[i]; n > max {
			max = n
		}
	}
	return max
}

// AbsInt returns the magnitude of n.
func AbsInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Chebyshev returns the chessboard distance between two points: the larger of
// the absolute X and Y differences. Every cell of the 3x3 block around a point
// is within distance 1 of it.
func Chebyshev(a, b image.Point) int {
	d := a.Sub(b)
	return MaxInt(AbsInt(d.X), AbsInt(d.Y))
}

// IsUnitStep returns true if d is one of the four orthogonal unit directions.
func IsUnitStep(d image.Point) bool {
	return AbsInt(d.X)+AbsInt(d.Y) == 1
}
