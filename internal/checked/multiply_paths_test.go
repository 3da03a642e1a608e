package checked

import (
	"math"
	"testing"
)

// Both multiply strategies must classify every operand pair identically on
// any result type where both are implementable (widened needs <=32 bits,
// bounded works everywhere).

func pathsAgree[R Integer](t *testing.T, values []R) {
	t.Helper()
	for _, a := range values {
		for _, b := range values {
			w := multiplyWidened(a, b)
			d := multiplyBounded(a, b)
			if w.IsErr() != d.IsErr() {
				t.Fatalf("paths disagree for %v * %v: widened=%v bounded=%v", a, b, w, d)
			}
			if w.IsErr() {
				if w.Kind() != d.Kind() {
					t.Fatalf("paths classify %v * %v differently: widened=%v bounded=%v", a, b, w, d)
				}
				continue
			}
			if w.Value() != d.Value() {
				t.Fatalf("paths compute %v * %v differently: widened=%v bounded=%v", a, b, w, d)
			}
		}
	}
}

func TestMultiplyPathsAgreeInt8(t *testing.T) {
	values := make([]int8, 0, 256)
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		values = append(values, int8(i))
	}
	pathsAgree(t, values)
}

func TestMultiplyPathsAgreeUint8(t *testing.T) {
	values := make([]uint8, 0, 256)
	for i := 0; i <= math.MaxUint8; i++ {
		values = append(values, uint8(i))
	}
	pathsAgree(t, values)
}

func TestMultiplyPathsAgreeInt16(t *testing.T) {
	values := []int16{math.MinInt16, math.MinInt16 + 1, -182, -181, -180, -2, -1, 0, 1, 2,
		180, 181, 182, math.MaxInt16 / 2, math.MaxInt16/2 + 1, math.MaxInt16 - 1, math.MaxInt16}
	pathsAgree(t, values)
}

func TestMultiplyPathsAgreeInt32(t *testing.T) {
	values := []int32{math.MinInt32, math.MinInt32 + 1, -46341, -46340, -3, -1, 0, 1, 2, 3,
		46340, 46341, math.MaxInt32 / 2, math.MaxInt32/2 + 1, math.MaxInt32 - 1, math.MaxInt32}
	pathsAgree(t, values)
}

func TestMultiplyPathsAgreeUint32(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 65535, 65536, 65537, math.MaxUint32 / 2,
		math.MaxUint32/2 + 1, math.MaxUint32 - 1, math.MaxUint32}
	pathsAgree(t, values)
}
