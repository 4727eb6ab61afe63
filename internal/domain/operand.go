package domain

import "fmt"

// Operator names a binary quaternion operation.
type Operator string

const (
	// OpAdd is componentwise addition.
	OpAdd Operator = "add"

	// OpMul is the Hamilton product.
	OpMul Operator = "mul"
)

// Combine applies op to two dynamically typed operands. Both must be a
// Quaternion or a non-nil *Quaternion; anything else yields an
// *UnsupportedOperandError. Callers holding concrete Quaternion values
// should use Add and Mul directly.
func Combine(op Operator, left, right any) (Quaternion, error) {
	l, ok := asQuaternion(left)
	if !ok {
		return Quaternion{}, NewUnsupportedOperandError(string(op), left)
	}

	r, ok := asQuaternion(right)
	if !ok {
		return Quaternion{}, NewUnsupportedOperandError(string(op), right)
	}

	switch op {
	case OpAdd:
		return l.Add(r), nil
	case OpMul:
		return l.Mul(r), nil
	default:
		return Quaternion{}, NewValidationErrorWithValue("op", fmt.Sprintf("unknown operator %q", op), op)
	}
}

// AddAny is q + v for a dynamically typed right-hand operand.
func (q Quaternion) AddAny(v any) (Quaternion, error) {
	return Combine(OpAdd, q, v)
}

// MulAny is q ⋅ v for a dynamically typed right-hand operand.
func (q Quaternion) MulAny(v any) (Quaternion, error) {
	return Combine(OpMul, q, v)
}

func asQuaternion(v any) (Quaternion, bool) {
	switch q := v.(type) {
	case Quaternion:
		return q, true
	case *Quaternion:
		if q == nil {
			return Quaternion{}, false
		}

		return *q, true
	default:
		return Quaternion{}, false
	}
}
