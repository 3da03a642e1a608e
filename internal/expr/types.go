package expr

import "strconv"

// NumType identifies one of the eight fixed-width integer types an
// expression can evaluate in.
type NumType uint8

const (
	TypeInt8 NumType = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
)

var numTypeNames = [...]string{
	TypeInt8:   "int8",
	TypeInt16:  "int16",
	TypeInt32:  "int32",
	TypeInt64:  "int64",
	TypeUint8:  "uint8",
	TypeUint16: "uint16",
	TypeUint32: "uint32",
	TypeUint64: "uint64",
}

func (t NumType) String() string {
	if int(t) < len(numTypeNames) {
		return numTypeNames[t]
	}
	return "numtype(" + strconv.Itoa(int(t)) + ")"
}

// IsSigned reports whether values of t carry a sign.
func (t NumType) IsSigned() bool { return t <= TypeInt64 }

// ParseNumType resolves a type name like "uint32".
func ParseNumType(name string) (NumType, bool) {
	for t, n := range numTypeNames {
		if n == name {
			return NumType(t), true
		}
	}
	return 0, false
}

// Value is a dynamically typed integer. The payload lives in I for signed
// types and in U otherwise; the other field is zero.
type Value struct {
	Type NumType
	I    int64
	U    uint64
}

func (v Value) String() string {
	if v.Type.IsSigned() {
		return strconv.FormatInt(v.I, 10)
	}
	return strconv.FormatUint(v.U, 10)
}

// IsZero reports whether the payload is zero regardless of type.
func (v Value) IsZero() bool { return v.I == 0 && v.U == 0 }

// Outcome is the result of evaluating an expression: a numeric value, or a
// boolean when the expression is a comparison.
type Outcome struct {
	IsBool bool
	Bool   bool
	Num    Value
}

func (o Outcome) String() string {
	if o.IsBool {
		return strconv.FormatBool(o.Bool)
	}
	return o.Num.String()
}
