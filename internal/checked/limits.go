package checked

import "unsafe"

// Integer enumerates the native integer types the checked operations accept.
// Rejecting non-integer instantiation happens at compile time; it is not a
// runtime failure mode.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed reports whether T is a signed type.
func Signed[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Bits returns the width of T in bits, including the sign bit.
func Bits[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Digits returns the number of value bits in T, excluding the sign bit.
func Digits[T Integer]() int {
	if Signed[T]() {
		return Bits[T]() - 1
	}
	return Bits[T]()
}

// MaxOf returns the largest value representable in T.
func MaxOf[T Integer]() T {
	ones := ^T(0)
	if ones > 0 {
		return ones
	}
	// signed: clear the sign bit of the all-ones pattern
	return ones ^ (T(1) << (Bits[T]() - 1))
}

// MinOf returns the smallest value representable in T.
func MinOf[T Integer]() T {
	if !Signed[T]() {
		return 0
	}
	return T(1) << (Bits[T]() - 1)
}

// magnitude64 returns |v| in the unsigned 64-bit domain. Exact for every
// value of every Integer type, including the minimum of a signed type.
func magnitude64[T Integer](v T) uint64 {
	if Signed[T]() && v < 0 {
		return ^uint64(int64(v)) + 1
	}
	return uint64(v)
}

// fitsInt64 reports whether v is exactly representable as an int64. Only a
// 64-bit unsigned value above MaxInt64 is not.
func fitsInt64[T Integer](v T) bool {
	if Signed[T]() || Bits[T]() < 64 {
		return true
	}
	return uint64(v)>>63 == 0
}
