// Package mathx collects the small integer helpers that puzzle kernels keep
// reaching for: greatest common divisor, least common multiple, absolute value,
// sums and products over slices.
//
// The helpers are generic over constraints.Integer (Sign over constraints.Signed),
// so they work equally for int, int64 or uint8 counters without conversions
// at the call site.
package mathx

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// The result is always non-negative; GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// LCM(0, x) == 0 for any x.
//
// The division happens before the multiplication to keep intermediate values
// as small as possible.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a / GCD(a, b) * b)
}

// LCMSlice folds LCM over values. An empty slice yields 0.
func LCMSlice[T constraints.Integer](values []T) T {
	if len(values) == 0 {
		return 0
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = LCM(acc, v)
	}
	return acc
}

// Abs returns |v|.
func Abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Sum adds all values.
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Product multiplies all values; an empty slice yields 1.
func Product[T constraints.Integer](values []T) T {
	var total T = 1
	for _, v := range values {
		total *= v
	}
	return total
}
