package checked_test

import (
	"math"
	"testing"

	"safenum/internal/checked"
)

func TestMultiplySignedNarrow(t *testing.T) {
	// 8-bit results go through the widened 64-bit intermediate
	wantOk(t, checked.Multiply[int8](int8(11), int8(11)), int8(121))
	wantErr(t, checked.Multiply[int8](int8(12), int8(11)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[int8](int8(-64), int8(2)), int8(-128))
	wantErr(t, checked.Multiply[int8](int8(-65), int8(2)), checked.UnderflowError, "multiplication underflow")
	wantOk(t, checked.Multiply[int8](int8(-128), int8(1)), int8(-128))
	wantErr(t, checked.Multiply[int8](int8(-128), int8(-1)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[int8](int8(0), int8(-128)), int8(0))
}

func TestMultiplyUnsignedNarrow(t *testing.T) {
	wantOk(t, checked.Multiply[uint8](uint8(15), uint8(17)), uint8(255))
	wantErr(t, checked.Multiply[uint8](uint8(16), uint8(16)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[uint32](uint32(65536), uint32(65535)), uint32(math.MaxUint32-65535))
	wantErr(t, checked.Multiply[uint32](uint32(65536), uint32(65536)), checked.OverflowError, "multiplication overflow")
}

func TestMultiplySignedWide(t *testing.T) {
	// 64-bit results use the bounded-division strategy
	wantOk(t, checked.Multiply[int64](int64(math.MaxInt64/2), int64(2)), int64(math.MaxInt64-1))
	wantErr(t, checked.Multiply[int64](int64(math.MaxInt64/2+1), int64(2)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[int64](int64(math.MinInt64/2), int64(2)), int64(math.MinInt64))
	wantErr(t, checked.Multiply[int64](int64(math.MinInt64/2-1), int64(2)), checked.UnderflowError, "multiplication underflow")
	wantErr(t, checked.Multiply[int64](int64(math.MinInt64), int64(-1)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[int64](int64(math.MinInt64), int64(1)), int64(math.MinInt64))
	wantOk(t, checked.Multiply[int64](int64(-1), int64(-1)), int64(1))
	wantErr(t, checked.Multiply[int64](int64(-3037000500), int64(-3037000500)), checked.OverflowError, "multiplication overflow")
}

func TestMultiplyUnsignedWide(t *testing.T) {
	wantOk(t, checked.Multiply[uint64](uint64(math.MaxUint64), uint64(1)), uint64(math.MaxUint64))
	wantErr(t, checked.Multiply[uint64](uint64(math.MaxUint64), uint64(2)), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[uint64](uint64(1)<<32, uint64(1)<<31), uint64(1)<<63)
	wantErr(t, checked.Multiply[uint64](uint64(1)<<32, uint64(1)<<32), checked.OverflowError, "multiplication overflow")
	wantOk(t, checked.Multiply[uint64](uint64(0), uint64(math.MaxUint64)), uint64(0))
}

func TestMultiplyCastFailures(t *testing.T) {
	wantErr(t, checked.Multiply[uint8](int8(-2), int8(3)), checked.RangeError, "converted negative value to unsigned")
	wantErr(t, checked.Multiply[int8](int32(200), int32(1)), checked.RangeError, "converted signed value too large")
}
