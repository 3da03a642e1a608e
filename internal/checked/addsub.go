package checked

// Add computes t + u in R. Both operands are cast into R first; the first
// cast failure wins, t's before u's. The boundary checks never compute the
// sum before proving it representable (INT30-C / INT32-C forms).
func Add[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return addChecked(rt.value, ru.value)
}

func addChecked[R Integer](t, u R) Result[R] {
	if !Signed[R]() {
		if MaxOf[R]()-u < t {
			return Errf[R](OverflowError, "addition overflow")
		}
		return Ok(t + u)
	}
	if (u > 0 && t > MaxOf[R]()-u) || (u < 0 && t < MinOf[R]()-u) {
		return Errf[R](OverflowError, "addition overflow")
	}
	return Ok(t + u)
}

// Subtract computes t - u in R, casting both operands into R first.
func Subtract[R, T, U Integer](t T, u U) Result[R] {
	rt := Cast[R](t)
	if rt.IsErr() {
		return rt
	}
	ru := Cast[R](u)
	if ru.IsErr() {
		return ru
	}
	return subtractChecked(rt.value, ru.value)
}

func subtractChecked[R Integer](t, u R) Result[R] {
	if !Signed[R]() {
		if t < u {
			return Errf[R](OverflowError, "subtraction overflow")
		}
		return Ok(t - u)
	}
	if (u > 0 && t < MinOf[R]()+u) || (u < 0 && t > MaxOf[R]()+u) {
		return Errf[R](OverflowError, "subtraction overflow")
	}
	return Ok(t - u)
}
