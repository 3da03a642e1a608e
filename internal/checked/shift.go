package checked

// checkShiftAmount validates a shift amount for a T-typed operand. A
// negative amount is rejected on its own type, before the cast into R, so
// the failure classifies as the domain error it is even when R is unsigned.
// Amounts at or beyond T's width are equally undefined in two's-complement
// arithmetic regardless of type (INT34-C).
func checkShiftAmount[R, T, U Integer](u U) Result[R] {
	if Signed[U]() && u < 0 {
		return Errf[R](DomainError, "shifting negative amount is undefined behavior")
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	if uint64(ru.value) >= uint64(Bits[T]()) {
		return Errf[R](DomainError, "shifting more bits than available is undefined behavior")
	}
	return ru
}

// LeftShift computes t << u in R. Once the amount is validated the shift
// itself cannot overflow the destination width; no overflow class applies.
func LeftShift[R, T, U Integer](t T, u U) Result[R] {
	ru := checkShiftAmount[R, T](u)
	if ru.IsErr() {
		return ru
	}
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	return Ok(rt.value << uint(ru.value))
}

// RightShift computes t >> u in R.
func RightShift[R, T, U Integer](t T, u U) Result[R] {
	ru := checkShiftAmount[R, T](u)
	if ru.IsErr() {
		return ru
	}
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	return Ok(rt.value >> uint(ru.value))
}
