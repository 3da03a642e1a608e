package checked

// Multiply computes t * u in R. Result types no wider than 32 bits go
// through a 64-bit intermediate that cannot itself overflow; wider result
// types use per-quadrant bounded-division checks so the multiply is only
// performed once it is proven representable. Signed products below R's
// minimum report UnderflowError, above its maximum OverflowError.
func Multiply[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	if Bits[R]() <= 32 {
		return multiplyWidened(rt.value, ru.value)
	}
	return multiplyBounded(rt.value, ru.value)
}

// multiplyWidened checks via an intermediate twice R's width. Valid only
// when R is at most 32 bits wide.
func multiplyWidened[R Integer](t, u R) Result[R] {
	if !Signed[R]() {
		p := uint64(t) * uint64(u)
		if p > uint64(MaxOf[R]()) {
			return Errf[R](OverflowError, "multiplication overflow")
		}
		return Ok(R(p))
	}
	p := int64(t) * int64(u)
	if p > int64(MaxOf[R]()) {
		return Errf[R](OverflowError, "multiplication overflow")
	}
	if p < int64(MinOf[R]()) {
		return Errf[R](UnderflowError, "multiplication underflow")
	}
	return Ok(R(p))
}

// multiplyBounded checks via division, splitting on the sign of each
// operand, for result types too wide for any native intermediate.
func multiplyBounded[R Integer](t, u R) Result[R] {
	if !Signed[R]() {
		if u > 0 && t > MaxOf[R]()/u {
			return Errf[R](OverflowError, "multiplication overflow")
		}
		return Ok(t * u)
	}
	switch {
	case t > 0 && u > 0:
		if t > MaxOf[R]()/u {
			return Errf[R](OverflowError, "multiplication overflow")
		}
	case t > 0 && u <= 0:
		if u < MinOf[R]()/t {
			return Errf[R](UnderflowError, "multiplication underflow")
		}
	case t <= 0 && u > 0:
		if t < MinOf[R]()/u {
			return Errf[R](UnderflowError, "multiplication underflow")
		}
	default: // t <= 0 && u <= 0, product is non-negative
		if t != 0 && u < MaxOf[R]()/t {
			return Errf[R](OverflowError, "multiplication overflow")
		}
	}
	return Ok(t * u)
}
