package dto

import (
	"fmt"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

// coefficientCount is the number of coefficients in a wire quaternion.
const coefficientCount = 4

// EvaluateRequest is the body of POST /api/v1/quaternions/evaluate.
// Each operand is expected to be an array of four numbers; anything else is
// passed through to the domain, which rejects it as an unsupported operand.
type EvaluateRequest struct {
	Op       string `json:"op"       validate:"required,oneof=add mul conjugate"`
	Operands []any  `json:"operands" validate:"required,min=1"`
}

// ToDomain converts the request into a domain expression.
func (r *EvaluateRequest) ToDomain() domain.Expression {
	operands := make([]any, len(r.Operands))
	for i, raw := range r.Operands {
		operands[i] = decodeOperand(raw)
	}

	return domain.Expression{Op: domain.Operator(r.Op), Operands: operands}
}

// Validate checks the operand count for the operator. Operand types are
// left to the domain.
func (r *EvaluateRequest) Validate() error {
	return domain.Expression{Op: domain.Operator(r.Op), Operands: r.Operands}.Validate()
}

// decodeOperand turns a JSON array of four numbers into a Quaternion and
// returns any other value unchanged.
func decodeOperand(raw any) any {
	values, ok := raw.([]any)
	if !ok || len(values) != coefficientCount {
		return raw
	}

	var coeffs [coefficientCount]float64
	for i, v := range values {
		f, ok := v.(float64)
		if !ok {
			return raw
		}
		coeffs[i] = f
	}

	return domain.New(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
}

// BatchRequest is the body of POST /api/v1/quaternions/batch.
type BatchRequest struct {
	Expressions []EvaluateRequest `json:"expressions" validate:"required,min=1,dive"`
}

// Validate checks every expression and names the first bad one.
func (r *BatchRequest) Validate() error {
	for i := range r.Expressions {
		if err := r.Expressions[i].Validate(); err != nil {
			return fmt.Errorf("expression %d: %w", i, err)
		}
	}
	return nil
}

// ToDomain converts every expression in the batch.
func (r *BatchRequest) ToDomain() []domain.Expression {
	exprs := make([]domain.Expression, len(r.Expressions))
	for i := range r.Expressions {
		exprs[i] = r.Expressions[i].ToDomain()
	}
	return exprs
}

// RenderQuery holds the coefficients for GET /api/v1/quaternions/render.
// Missing coefficients default to zero.
type RenderQuery struct {
	A float64 `form:"a" json:"a" validate:"finite"`
	B float64 `form:"b" json:"b" validate:"finite"`
	C float64 `form:"c" json:"c" validate:"finite"`
	D float64 `form:"d" json:"d" validate:"finite"`
}

// ToDomain returns the quaternion the query describes.
func (q *RenderQuery) ToDomain() domain.Quaternion {
	return domain.New(q.A, q.B, q.C, q.D)
}

// QuaternionResponse is the wire form of a quaternion.
type QuaternionResponse struct {
	Coefficients [coefficientCount]float64 `json:"coefficients"`
	Text         string                    `json:"text"`
}

// QuaternionFromDomain converts a domain quaternion to its wire form.
func QuaternionFromDomain(q domain.Quaternion) QuaternionResponse {
	a, b, c, d := q.Coefficients()
	return QuaternionResponse{
		Coefficients: [coefficientCount]float64{a, b, c, d},
		Text:         q.String(),
	}
}

// BatchResponse holds batch results in request order.
type BatchResponse struct {
	Results []QuaternionResponse `json:"results"`
}

// BatchFromDomain converts batch results to their wire form.
func BatchFromDomain(qs []domain.Quaternion) BatchResponse {
	results := make([]QuaternionResponse, len(qs))
	for i, q := range qs {
		results[i] = QuaternionFromDomain(q)
	}
	return BatchResponse{Results: results}
}
