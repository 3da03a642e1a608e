package checked

import "math"

// Divide computes t / u in R. Division by zero is rejected before the
// operands are cast; a cast failure propagates as-is. The single remaining
// failure mode is signed MIN / -1, whose exact quotient is one past R's
// maximum.
func Divide[R, T, U Integer](t T, u U) Result[R] {
	if u == 0 {
		return Errf[R](DomainError, "divide by zero")
	}
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return divideChecked(rt.value, ru.value)
}

func divideChecked[R Integer](t, u R) Result[R] {
	if Signed[R]() && u == R(0)-1 && t == MinOf[R]() {
		return Errf[R](DomainError, "result cannot be represented")
	}
	return Ok(t / u)
}

// Modulus computes t % u in R. The denominator-zero check precedes the
// casts. Casting both operands into R first deliberately rejects
// cross-signedness operand pairs whose remainder happens to be representable
// (a negative numerator against an unsigned denominator yields a RangeError
// even when the true remainder is zero); that conservatism is intentional.
func Modulus[R, T, U Integer](t T, u U) Result[R] {
	if u == 0 {
		return Errf[R](DomainError, "denominator is zero")
	}
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return modulusChecked(rt.value, ru.value)
}

func modulusChecked[R Integer](t, u R) Result[R] {
	// presumes two's complement: any negative denominator against MIN is
	// rejected, mirroring the divide corner case
	if Signed[R]() && u < 0 && t == MinOf[R]() {
		return Errf[R](DomainError, "result cannot be represented")
	}
	return Ok(t % u)
}

// DivideAutomatic computes t / u through an intermediate sized
// min(max(Digits[T], Digits[U])+2, 64) bits: wide enough to absorb every
// divide corner case except MIN / -1 on a full-width signed numerator, which
// is the one case still checked explicitly. The quotient is then cast into
// R, so a result R cannot hold surfaces as a RangeError rather than a
// DomainError. Cheaper than Divide when the caller can accept that trade.
func DivideAutomatic[R, T, U Integer](t T, u U) Result[R] {
	if u == 0 {
		return Errf[R](DomainError, "divide by zero")
	}
	if fitsInt64(t) && fitsInt64(u) {
		wt := int64(t)
		wu := int64(u)
		// reachable only for a 64-bit signed numerator: narrower operands
		// gained a guard bit from the widening
		if wu == -1 && wt == math.MinInt64 {
			return Errf[R](DomainError, "result cannot be represented")
		}
		return Cast[R](wt / wu)
	}
	// at least one operand is an unsigned 64-bit value above MaxInt64
	tNeg := Signed[T]() && t < 0
	uNeg := Signed[U]() && u < 0
	q := magnitude64(t) / magnitude64(u)
	if tNeg == uNeg {
		return Cast[R](q)
	}
	return castNegated[R](q)
}

// castNegated converts the magnitude q into R as the value -q.
func castNegated[R Integer](q uint64) Result[R] {
	if q == 0 {
		return Ok(R(0))
	}
	if !Signed[R]() {
		return Errf[R](RangeError, "converted negative value to unsigned")
	}
	if q > magnitude64(MinOf[R]()) {
		return Errf[R](RangeError, "converted signed value too small")
	}
	return Ok(R(int64(^q + 1)))
}
