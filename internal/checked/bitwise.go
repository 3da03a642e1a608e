package checked

// BitwiseOr computes t | u in R. Bitwise operations have no overflow concept
// of their own: both operands must merely be losslessly castable into R, and
// any cast failure propagates (t's before u's).
func BitwiseOr[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return Ok(rt.value | ru.value)
}

// BitwiseAnd computes t & u in R.
func BitwiseAnd[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return Ok(rt.value & ru.value)
}

// BitwiseXor computes t ^ u in R.
func BitwiseXor[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return Ok(rt.value ^ ru.value)
}
