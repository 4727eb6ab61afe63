// Package domain contains the exercise value types and their rules.
// Nothing here knows about HTTP, configuration or logging.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Quaternion is the immutable value a + bi + cj + dk.
//
// The fields are unexported so a Quaternion cannot be changed after
// construction; every operation returns a new value. The zero value is the
// zero quaternion. Two quaternions compare equal with == exactly when all
// four coefficients are equal.
type Quaternion struct {
	a, b, c, d float64
}

// Units of the quaternion algebra.
var (
	Zero = Quaternion{}
	One  = Quaternion{a: 1}
	I    = Quaternion{b: 1}
	J    = Quaternion{c: 1}
	K    = Quaternion{d: 1}
)

// New returns the quaternion a + bi + cj + dk. Any real coefficients are valid.
func New(a, b, c, d float64) Quaternion {
	return Quaternion{a: a, b: b, c: c, d: d}
}

// Coefficients returns the real part followed by the i, j and k coefficients.
func (q Quaternion) Coefficients() (a, b, c, d float64) {
	return q.a, q.b, q.c, q.d
}

// Conjugate returns a - bi - cj - dk.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{a: q.a, b: -q.b, c: -q.c, d: -q.d}
}

// Add returns the componentwise sum q + r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{
		a: q.a + r.a,
		b: q.b + r.b,
		c: q.c + r.c,
		d: q.d + r.d,
	}
}

// Mul returns the Hamilton product q ⋅ r. The product is not commutative.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		a: q.a*r.a - q.b*r.b - q.c*r.c - q.d*r.d,
		b: q.a*r.b + q.b*r.a + q.c*r.d - q.d*r.c,
		c: q.a*r.c - q.b*r.d + q.c*r.a + q.d*r.b,
		d: q.a*r.d + q.b*r.c - q.c*r.b + q.d*r.a,
	}
}

// Equal reports whether v is a Quaternion (or a non-nil *Quaternion) with
// exactly the same coefficients as q. Values of any other type are never
// equal and do not cause an error.
func (q Quaternion) Equal(v any) bool {
	o, ok := asQuaternion(v)
	return ok && q == o
}

// String renders q in canonical algebraic form, e.g. "1+2i+3j+4k", "1-i",
// "-k" or "0".
func (q Quaternion) String() string {
	var sb strings.Builder

	switch {
	case q.a != 0:
		sb.WriteString(formatCoefficient(q.a))
	case q.b == 0 && q.c == 0 && q.d == 0:
		// Also covers -0.
		return "0"
	}

	writeTerm(&sb, q.b, "i")
	writeTerm(&sb, q.c, "j")
	writeTerm(&sb, q.d, "k")

	s := strings.ReplaceAll(sb.String(), "+-", "-")
	s = strings.TrimPrefix(s, "+")

	if s == "" {
		return "0"
	}

	return s
}

// writeTerm appends one imaginary term. Terms without a sign bit (NaN
// included) that follow an earlier term get a '+' separator; negative ones
// carry their own sign.
func writeTerm(sb *strings.Builder, x float64, unit string) {
	if x == 0 {
		return
	}

	if !math.Signbit(x) && sb.Len() > 0 {
		sb.WriteByte('+')
	}

	switch x {
	case 1:
		sb.WriteString(unit)
	case -1:
		sb.WriteString("-" + unit)
	default:
		sb.WriteString(formatCoefficient(x))
		sb.WriteString(unit)
	}
}

// formatCoefficient uses the shortest decimal that round-trips, so whole
// numbers print without a fractional part. The sign of +Inf is left to
// writeTerm like any other positive value.
func formatCoefficient(x float64) string {
	return strings.TrimPrefix(strconv.FormatFloat(x, 'g', -1, 64), "+")
}
