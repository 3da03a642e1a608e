package checked

import (
	"errors"
	"fmt"
)

// Kind classifies why a checked operation could not produce a value.
type Kind uint8

const (
	// KindNone is the Kind of a successful result.
	KindNone Kind = iota
	// RangeError reports a cast that cannot represent the source value.
	RangeError
	// OverflowError reports a true result above the destination maximum.
	OverflowError
	// UnderflowError reports a true result below the destination minimum.
	UnderflowError
	// DomainError reports an operation that is undefined in two's-complement
	// arithmetic regardless of width: division or modulus by zero, MIN / -1,
	// invalid shift amounts.
	DomainError
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case RangeError:
		return "range error"
	case OverflowError:
		return "overflow error"
	case UnderflowError:
		return "underflow error"
	case DomainError:
		return "domain error"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sentinels matched by errors.Is against a *Failure.
var (
	ErrRange     = errors.New("range error")
	ErrOverflow  = errors.New("overflow error")
	ErrUnderflow = errors.New("underflow error")
	ErrDomain    = errors.New("domain error")
)

// Failure carries the classification and diagnostic of a failed operation.
// The message is for humans; callers branch on Kind.
type Failure struct {
	Kind Kind
	Msg  string
}

func (f *Failure) Error() string {
	return f.Kind.String() + ": " + f.Msg
}

// Is matches the per-kind sentinel errors.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrRange:
		return f.Kind == RangeError
	case ErrOverflow:
		return f.Kind == OverflowError
	case ErrUnderflow:
		return f.Kind == UnderflowError
	case ErrDomain:
		return f.Kind == DomainError
	default:
		return false
	}
}

// Result holds either a value of T or a classified failure, never both.
// Results are immutable values constructed only by Ok, Errf and the checked
// operations; the zero Result is Ok with T's zero value.
type Result[T any] struct {
	value T
	fail  *Failure
}

// Ok wraps a value known to be the exact, representable result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Errf constructs a failed result with the given kind and diagnostic.
func Errf[T any](kind Kind, format string, args ...any) Result[T] {
	return Result[T]{fail: &Failure{Kind: kind, Msg: fmt.Sprintf(format, args...)}}
}

// failAs re-tags a failure under a different result type, preserving the
// failure identity so first-failure-wins propagation stays exact.
func failAs[T, F any](r Result[F]) Result[T] {
	return Result[T]{fail: r.fail}
}

// IsErr reports whether the result holds a failure.
func (r Result[T]) IsErr() bool { return r.fail != nil }

// Kind returns the failure classification, or KindNone for a success.
func (r Result[T]) Kind() Kind {
	if r.fail == nil {
		return KindNone
	}
	return r.fail.Kind
}

// Err returns the failure as an error, or nil for a success.
func (r Result[T]) Err() error {
	if r.fail == nil {
		return nil
	}
	return r.fail
}

// Get returns the value and a non-nil error when the result is a failure.
func (r Result[T]) Get() (T, error) {
	if r.fail != nil {
		var zero T
		return zero, r.fail
	}
	return r.value, nil
}

// Value returns the computed value. Asking a failed result for its value is
// a caller bug; it panics rather than returning garbage.
func (r Result[T]) Value() T {
	if r.fail != nil {
		panic("checked: Value called on failed result: " + r.fail.Error())
	}
	return r.value
}

func (r Result[T]) String() string {
	if r.fail != nil {
		return "Err(" + r.fail.Error() + ")"
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Comparisons below propagate failure state: comparing against a failed
// result is itself a failure, a's before b's.

// Less reports a < b.
func Less[R Integer](a, b Result[R]) Result[bool] {
	if a.fail != nil {
		return failAs[bool](a)
	}
	if b.fail != nil {
		return failAs[bool](b)
	}
	return Ok(a.value < b.value)
}

// LessEq reports a <= b.
func LessEq[R Integer](a, b Result[R]) Result[bool] {
	if a.fail != nil {
		return failAs[bool](a)
	}
	if b.fail != nil {
		return failAs[bool](b)
	}
	return Ok(a.value <= b.value)
}

// Greater reports a > b.
func Greater[R Integer](a, b Result[R]) Result[bool] {
	if a.fail != nil {
		return failAs[bool](a)
	}
	if b.fail != nil {
		return failAs[bool](b)
	}
	return Ok(a.value > b.value)
}

// GreaterEq reports a >= b.
func GreaterEq[R Integer](a, b Result[R]) Result[bool] {
	if a.fail != nil {
		return failAs[bool](a)
	}
	if b.fail != nil {
		return failAs[bool](b)
	}
	return Ok(a.value >= b.value)
}

// Equal reports a == b.
func Equal[R Integer](a, b Result[R]) Result[bool] {
	if a.fail != nil {
		return failAs[bool](a)
	}
	if b.fail != nil {
		return failAs[bool](b)
	}
	return Ok(a.value == b.value)
}

// NotEqual reports a != b.
func NotEqual[R Integer](a, b Result[R]) Result[bool] {
	r := Equal(a, b)
	if r.fail != nil {
		return r
	}
	return Ok(!r.value)
}
