package checked_test

import (
	"math"
	"testing"

	"safenum/internal/checked"
)

func TestDivideByZero(t *testing.T) {
	wantErr(t, checked.Divide[int32](int32(7), int32(0)), checked.DomainError, "divide by zero")
	wantErr(t, checked.Divide[uint32](uint32(7), uint32(0)), checked.DomainError, "divide by zero")
	wantErr(t, checked.Divide[int32](int32(-7), int32(0)), checked.DomainError, "divide by zero")
	// the zero check precedes the casts
	wantErr(t, checked.Divide[uint8](int8(-7), int16(0)), checked.DomainError, "divide by zero")
}

func TestDivideSignedCorner(t *testing.T) {
	wantErr(t, checked.Divide[int8](int8(-128), int8(-1)), checked.DomainError, "result cannot be represented")
	wantOk(t, checked.Divide[int8](int8(-128), int8(-2)), int8(64))
	wantOk(t, checked.Divide[int8](int8(-128), int8(1)), int8(-128))
	wantErr(t, checked.Divide[int64](int64(math.MinInt64), int64(-1)), checked.DomainError, "result cannot be represented")
	wantOk(t, checked.Divide[int64](int64(math.MinInt64), int64(-2)), int64(1)<<62)
}

func TestDivideBasics(t *testing.T) {
	wantOk(t, checked.Divide[int32](int32(7), int32(2)), int32(3))
	wantOk(t, checked.Divide[int32](int32(-7), int32(2)), int32(-3))
	wantOk(t, checked.Divide[uint64](uint64(math.MaxUint64), uint64(3)), uint64(math.MaxUint64)/3)
	wantErr(t, checked.Divide[uint8](int8(-8), int8(2)), checked.RangeError, "converted negative value to unsigned")
}

func TestModulusByZero(t *testing.T) {
	wantErr(t, checked.Modulus[int32](int32(7), int32(0)), checked.DomainError, "denominator is zero")
	wantErr(t, checked.Modulus[uint8](uint8(7), uint8(0)), checked.DomainError, "denominator is zero")
}

func TestModulusMirrorsDivideCorner(t *testing.T) {
	wantErr(t, checked.Modulus[int8](int8(-128), int8(-1)), checked.DomainError, "result cannot be represented")
	// any negative denominator against MIN is rejected, not just -1
	wantErr(t, checked.Modulus[int8](int8(-128), int8(-3)), checked.DomainError, "result cannot be represented")
	wantOk(t, checked.Modulus[int8](int8(-127), int8(-3)), int8(-1))
	wantOk(t, checked.Modulus[int8](int8(7), int8(3)), int8(1))
	wantOk(t, checked.Modulus[uint16](uint16(7), uint16(3)), uint16(1))
}

func TestModulusConservativeCrossSignedness(t *testing.T) {
	// int8 % uint32 with a negative numerator: the true remainder of
	// -5 mod 1 is zero and representable, yet the operand cast into the
	// unsigned result type fails first. Intentional conservatism.
	wantErr(t, checked.Modulus[uint32](int8(-5), uint32(1)), checked.RangeError, "converted negative value to unsigned")
}

func TestDivideAutomatic(t *testing.T) {
	wantOk(t, checked.DivideAutomatic[int32](int32(7), int32(2)), int32(3))
	wantErr(t, checked.DivideAutomatic[int32](int32(7), int32(0)), checked.DomainError, "divide by zero")
	// a narrow MIN / -1 gains a guard bit from the widening and succeeds
	// when the result type can hold it
	wantOk(t, checked.DivideAutomatic[int16](int8(-128), int8(-1)), int16(128))
	// ... and is a range failure, not a domain one, when it cannot
	wantErr(t, checked.DivideAutomatic[int8](int8(-128), int8(-1)), checked.RangeError, "converted signed value too large")
	// full-width signed numerator has no guard bit: the corner case remains
	wantErr(t, checked.DivideAutomatic[int64](int64(math.MinInt64), int64(-1)), checked.DomainError, "result cannot be represented")
	wantOk(t, checked.DivideAutomatic[int64](int64(math.MinInt64), int64(-2)), int64(1)<<62)
}

func TestDivideAutomaticUnsignedWide(t *testing.T) {
	wantOk(t, checked.DivideAutomatic[uint64](uint64(math.MaxUint64), uint64(2)), uint64(math.MaxUint64)/2)
	wantOk(t, checked.DivideAutomatic[uint64](uint64(math.MaxUint64), uint64(1)), uint64(math.MaxUint64))
	// negative denominator against a numerator above MaxInt64
	wantOk(t, checked.DivideAutomatic[int64](uint64(math.MaxUint64), int64(-2)), int64(math.MaxUint64/2)*-1)
	wantErr(t, checked.DivideAutomatic[int64](uint64(math.MaxUint64), int64(-1)), checked.RangeError, "converted signed value too small")
	wantOk(t, checked.DivideAutomatic[int8](uint64(math.MaxUint64), int64(math.MinInt64)), int8(-1))
}

func TestDivideModulusIdempotence(t *testing.T) {
	a := checked.Divide[int8](int8(-128), int8(-1))
	b := checked.Divide[int8](int8(-128), int8(-1))
	if a.Kind() != b.Kind() || a.Err().Error() != b.Err().Error() {
		t.Fatalf("repeated divides differ: %v vs %v", a, b)
	}
}
