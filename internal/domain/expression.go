package domain

import "fmt"

// OpConjugate negates the imaginary parts of a single operand.
const OpConjugate Operator = "conjugate"

// Expression is an operator applied left to right over its operands.
// Operands are dynamically typed because they usually come off the wire.
type Expression struct {
	Op       Operator
	Operands []any
}

// Validate checks the operator and the operand count. Operand types are
// checked during evaluation by Combine.
func (e Expression) Validate() error {
	switch e.Op {
	case OpAdd, OpMul:
		if len(e.Operands) < 2 {
			return NewValidationErrorWithValue("operands", "needs at least two operands", len(e.Operands))
		}
	case OpConjugate:
		if len(e.Operands) != 1 {
			return NewValidationErrorWithValue("operands", "needs exactly one operand", len(e.Operands))
		}
	default:
		return NewValidationErrorWithValue("op", fmt.Sprintf("unknown operator %q", e.Op), e.Op)
	}
	return nil
}

// Fold evaluates the expression. Binary operators fold left, so
// Fold(mul, a, b, c) is (a⋅b)⋅c.
func (e Expression) Fold() (Quaternion, error) {
	if err := e.Validate(); err != nil {
		return Quaternion{}, err
	}

	acc, ok := asQuaternion(e.Operands[0])
	if !ok {
		return Quaternion{}, NewUnsupportedOperandError(string(e.Op), e.Operands[0])
	}

	if e.Op == OpConjugate {
		return acc.Conjugate(), nil
	}

	for _, operand := range e.Operands[1:] {
		next, err := Combine(e.Op, acc, operand)
		if err != nil {
			return Quaternion{}, err
		}
		acc = next
	}
	return acc, nil
}
