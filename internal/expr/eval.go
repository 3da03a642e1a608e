package expr

import (
	"fmt"
	"math"
	"strconv"

	"safenum/internal/checked"
)

// Eval evaluates a parsed expression. Every operation's result type is the
// target type; untyped literals adopt the type of their enclosing context
// (the nearest cast, or the target). Failures surface as *checked.Failure
// values, so callers can branch on the failure kind.
func Eval(n Node, target NumType) (Outcome, error) {
	if c, ok := n.(*CmpNode); ok {
		a, err := evalNode(c.L, target)
		if err != nil {
			return Outcome{}, err
		}
		b, err := evalNode(c.R, target)
		if err != nil {
			return Outcome{}, err
		}
		res, err := evalCompare(c.Op, a, b, target)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{IsBool: true, Bool: res}, nil
	}
	v, err := evalNode(n, target)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Num: v}, nil
}

// EvalString parses and evaluates src in one step.
func EvalString(src string, target NumType) (Outcome, error) {
	n, err := Parse(src)
	if err != nil {
		return Outcome{}, err
	}
	return Eval(n, target)
}

func evalNode(n Node, ctx NumType) (Value, error) {
	switch n := n.(type) {
	case *LitNode:
		return literalValue(n, ctx)
	case *CastNode:
		inner, err := evalNode(n.Inner, n.Type)
		if err != nil {
			return Value{}, err
		}
		return convertValue(inner, n.Type)
	case *BinNode:
		a, err := evalNode(n.L, ctx)
		if err != nil {
			return Value{}, err
		}
		// shift amounts default to a signed context so a negative amount
		// reaches the domain check instead of dying in an unsigned cast
		rctx := ctx
		if n.Op == OpShl || n.Op == OpShr {
			rctx = TypeInt64
		}
		b, err := evalNode(n.R, rctx)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(n.Op, a, b, ctx)
	default:
		return Value{}, fmt.Errorf("cannot evaluate %T here", n)
	}
}

func literalValue(n *LitNode, ctx NumType) (Value, error) {
	mag, err := strconv.ParseUint(n.Text, 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("position %d: bad literal %q: %w", n.Pos, n.Text, err)
	}
	if !n.Neg {
		return asValue(ctx, castUint(mag, ctx))
	}
	if mag > uint64(1)<<63 {
		return Value{}, fmt.Errorf("position %d: literal -%s out of range", n.Pos, n.Text)
	}
	iv := int64(math.MinInt64)
	if mag < uint64(1)<<63 {
		iv = -int64(mag)
	}
	return asValue(ctx, castInt(iv, ctx))
}

// convertValue is a checked cast of v into t (identity when types match).
func convertValue(v Value, t NumType) (Value, error) {
	if v.Type.IsSigned() {
		return asValue(t, castInt(v.I, t))
	}
	return asValue(t, castUint(v.U, t))
}

func evalBinary(op Op, a, b Value, t NumType) (Value, error) {
	switch t {
	case TypeInt8:
		return asValue(t, binaryAs[int8](op, a, b))
	case TypeInt16:
		return asValue(t, binaryAs[int16](op, a, b))
	case TypeInt32:
		return asValue(t, binaryAs[int32](op, a, b))
	case TypeInt64:
		return asValue(t, binaryAs[int64](op, a, b))
	case TypeUint8:
		return asValue(t, binaryAs[uint8](op, a, b))
	case TypeUint16:
		return asValue(t, binaryAs[uint16](op, a, b))
	case TypeUint32:
		return asValue(t, binaryAs[uint32](op, a, b))
	case TypeUint64:
		return asValue(t, binaryAs[uint64](op, a, b))
	default:
		return Value{}, fmt.Errorf("unknown result type %v", t)
	}
}

func evalCompare(op Op, a, b Value, t NumType) (bool, error) {
	var r checked.Result[bool]
	switch t {
	case TypeInt8:
		r = compareAs[int8](op, a, b)
	case TypeInt16:
		r = compareAs[int16](op, a, b)
	case TypeInt32:
		r = compareAs[int32](op, a, b)
	case TypeInt64:
		r = compareAs[int64](op, a, b)
	case TypeUint8:
		r = compareAs[uint8](op, a, b)
	case TypeUint16:
		r = compareAs[uint16](op, a, b)
	case TypeUint32:
		r = compareAs[uint32](op, a, b)
	case TypeUint64:
		r = compareAs[uint64](op, a, b)
	default:
		return false, fmt.Errorf("unknown result type %v", t)
	}
	return r.Get()
}

// convert casts a dynamic value into the static type R. The value's own
// width is immaterial: cast semantics depend only on the value.
func convert[R checked.Integer](v Value) checked.Result[R] {
	if v.Type.IsSigned() {
		return checked.Cast[R](v.I)
	}
	return checked.Cast[R](v.U)
}

func asValue[R checked.Integer](t NumType, r checked.Result[R]) (Value, error) {
	val, err := r.Get()
	if err != nil {
		return Value{}, err
	}
	if t.IsSigned() {
		return Value{Type: t, I: int64(val)}, nil
	}
	return Value{Type: t, U: uint64(val)}, nil
}

func castInt(v int64, t NumType) checked.Result[int64] {
	// cast validity in the 64-bit domain; asValue narrows the payload
	switch t {
	case TypeInt8:
		return widen(checked.Cast[int8](v))
	case TypeInt16:
		return widen(checked.Cast[int16](v))
	case TypeInt32:
		return widen(checked.Cast[int32](v))
	case TypeInt64:
		return checked.Cast[int64](v)
	case TypeUint8:
		return widen(checked.Cast[uint8](v))
	case TypeUint16:
		return widen(checked.Cast[uint16](v))
	case TypeUint32:
		return widen(checked.Cast[uint32](v))
	case TypeUint64:
		return widenU(checked.Cast[uint64](v))
	default:
		return checked.Errf[int64](checked.RangeError, "unknown result type")
	}
}

func castUint(v uint64, t NumType) checked.Result[int64] {
	switch t {
	case TypeInt8:
		return widen(checked.Cast[int8](v))
	case TypeInt16:
		return widen(checked.Cast[int16](v))
	case TypeInt32:
		return widen(checked.Cast[int32](v))
	case TypeInt64:
		return widen(checked.Cast[int64](v))
	case TypeUint8:
		return widen(checked.Cast[uint8](v))
	case TypeUint16:
		return widen(checked.Cast[uint16](v))
	case TypeUint32:
		return widen(checked.Cast[uint32](v))
	case TypeUint64:
		return widenU(checked.Cast[uint64](v))
	default:
		return checked.Errf[int64](checked.RangeError, "unknown result type")
	}
}

func binaryAs[R checked.Integer](op Op, a, b Value) checked.Result[R] {
	switch op {
	case OpDiv:
		if b.IsZero() {
			// the zero check precedes the casts
			return checked.Divide[R](0, 0)
		}
		ra := convert[R](a)
		if ra.IsErr() {
			return ra
		}
		rb := convert[R](b)
		if rb.IsErr() {
			return rb
		}
		return checked.Divide[R](ra.Value(), rb.Value())
	case OpMod:
		if b.IsZero() {
			return checked.Modulus[R](0, 0)
		}
		ra := convert[R](a)
		if ra.IsErr() {
			return ra
		}
		rb := convert[R](b)
		if rb.IsErr() {
			return rb
		}
		return checked.Modulus[R](ra.Value(), rb.Value())
	case OpShl, OpShr:
		return shiftAs[R](op == OpShl, a, b)
	}

	ra := convert[R](a)
	if ra.IsErr() {
		return ra
	}
	rb := convert[R](b)
	if rb.IsErr() {
		return rb
	}
	switch op {
	case OpAdd:
		return checked.Add[R](ra.Value(), rb.Value())
	case OpSub:
		return checked.Subtract[R](ra.Value(), rb.Value())
	case OpMul:
		return checked.Multiply[R](ra.Value(), rb.Value())
	case OpOr:
		return checked.BitwiseOr[R](ra.Value(), rb.Value())
	case OpAnd:
		return checked.BitwiseAnd[R](ra.Value(), rb.Value())
	case OpXor:
		return checked.BitwiseXor[R](ra.Value(), rb.Value())
	default:
		return checked.Errf[R](checked.DomainError, "unsupported operator %s", op)
	}
}

// shiftAs dispatches on the shifted value's own type: the amount bound
// tracks the operand width, not the result width.
func shiftAs[R checked.Integer](left bool, v, amt Value) checked.Result[R] {
	switch v.Type {
	case TypeInt8:
		return shiftWith[R](left, int8(v.I), amt)
	case TypeInt16:
		return shiftWith[R](left, int16(v.I), amt)
	case TypeInt32:
		return shiftWith[R](left, int32(v.I), amt)
	case TypeInt64:
		return shiftWith[R](left, v.I, amt)
	case TypeUint8:
		return shiftWith[R](left, uint8(v.U), amt)
	case TypeUint16:
		return shiftWith[R](left, uint16(v.U), amt)
	case TypeUint32:
		return shiftWith[R](left, uint32(v.U), amt)
	case TypeUint64:
		return shiftWith[R](left, v.U, amt)
	default:
		return checked.Errf[R](checked.DomainError, "unknown operand type")
	}
}

func shiftWith[R, T checked.Integer](left bool, t T, amt Value) checked.Result[R] {
	if amt.Type.IsSigned() {
		if left {
			return checked.LeftShift[R](t, amt.I)
		}
		return checked.RightShift[R](t, amt.I)
	}
	if left {
		return checked.LeftShift[R](t, amt.U)
	}
	return checked.RightShift[R](t, amt.U)
}

func compareAs[R checked.Integer](op Op, a, b Value) checked.Result[bool] {
	ra := convert[R](a)
	rb := convert[R](b)
	if op == OpEq {
		return checked.Equal(ra, rb)
	}
	return checked.Less(ra, rb)
}

// widen lifts a narrow cast result into the int64 carrier used by Value.
func widen[T checked.Integer](r checked.Result[T]) checked.Result[int64] {
	v, err := r.Get()
	if err != nil {
		return reFail[int64](r)
	}
	return checked.Ok(int64(v))
}

// widenU carries a uint64 bit pattern through the signed carrier.
func widenU(r checked.Result[uint64]) checked.Result[int64] {
	v, err := r.Get()
	if err != nil {
		return reFail[int64](r)
	}
	return checked.Ok(int64(v))
}

func reFail[T, F checked.Integer](r checked.Result[F]) checked.Result[T] {
	f, _ := r.Err().(*checked.Failure)
	return checked.Errf[T](f.Kind, "%s", f.Msg)
}
