package checked

// Cast converts t to R, failing with RangeError when the value cannot be
// represented. This is the primitive every other operation funnels its
// operands through; the four signedness quadrants each carry their own
// diagnostic so a caller can tell which direction the range was lost in.
func Cast[R, T Integer](t T) Result[R] {
	if Signed[T]() && t < 0 {
		if !Signed[R]() {
			return Errf[R](RangeError, "converted negative value to unsigned")
		}
		if int64(t) < int64(MinOf[R]()) {
			return Errf[R](RangeError, "converted signed value too small")
		}
		return Ok(R(t))
	}
	// non-negative: magnitudes compare exactly in the unsigned 64-bit domain
	if uint64(t) > uint64(MaxOf[R]()) {
		if Signed[T]() {
			return Errf[R](RangeError, "converted signed value too large")
		}
		return Errf[R](RangeError, "converted unsigned value too large")
	}
	return Ok(R(t))
}
