package app

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

func newQuaternionService(maxBatch int) *QuaternionService {
	return NewQuaternionService(QuaternionServiceConfig{MaxBatch: maxBatch, Logger: discardLogger()})
}

func TestQuaternionService_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		expr     domain.Expression
		want     domain.Quaternion
		errCheck func(error) bool
	}{
		{
			name: "hamilton product",
			expr: domain.Expression{Op: domain.OpMul, Operands: []any{domain.New(1, 2, 3, 4), domain.New(5, 6, 7, 8)}},
			want: domain.New(-60, 12, 30, 24),
		},
		{
			name: "sum of three",
			expr: domain.Expression{Op: domain.OpAdd, Operands: []any{domain.I, domain.J, domain.K}},
			want: domain.New(0, 1, 1, 1),
		},
		{
			name: "conjugate",
			expr: domain.Expression{Op: domain.OpConjugate, Operands: []any{domain.New(1, 2, 3, 4)}},
			want: domain.New(1, -2, -3, -4),
		},
		{
			name:     "unknown operator",
			expr:     domain.Expression{Op: "div", Operands: []any{domain.One, domain.One}},
			errCheck: domain.IsValidation,
		},
		{
			name:     "non quaternion operand",
			expr:     domain.Expression{Op: domain.OpMul, Operands: []any{domain.One, 2.0}},
			errCheck: domain.IsUnsupportedOperand,
		},
		{
			name:     "overflow is rejected",
			expr:     domain.Expression{Op: domain.OpMul, Operands: []any{domain.New(math.MaxFloat64, 0, 0, 0), domain.New(2, 0, 0, 0)}},
			errCheck: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newQuaternionService(0).Evaluate(context.Background(), tt.expr)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuaternionService_Evaluate_VerifyStep(t *testing.T) {
	expr := domain.Expression{Op: domain.OpAdd, Operands: []any{domain.New(math.MaxFloat64, 0, 0, 0), domain.New(math.MaxFloat64, 0, 0, 0)}}

	_, err := newQuaternionService(0).Evaluate(context.Background(), expr)

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepVerify, step)
}

func TestQuaternionService_EvaluateBatch(t *testing.T) {
	exprs := []domain.Expression{
		{Op: domain.OpMul, Operands: []any{domain.I, domain.J}},
		{Op: domain.OpMul, Operands: []any{domain.J, domain.I}},
		{Op: domain.OpMul, Operands: []any{domain.K, domain.K}},
		{Op: domain.OpConjugate, Operands: []any{domain.New(0, 1, 1, 1)}},
	}

	got, err := newQuaternionService(10).EvaluateBatch(context.Background(), exprs)

	require.NoError(t, err)
	assert.Equal(t, []domain.Quaternion{
		domain.K,
		domain.New(0, 0, 0, -1),
		domain.New(-1, 0, 0, 0),
		domain.New(0, -1, -1, -1),
	}, got)
}

func TestQuaternionService_EvaluateBatch_Errors(t *testing.T) {
	svc := newQuaternionService(2)
	ok := domain.Expression{Op: domain.OpAdd, Operands: []any{domain.One, domain.One}}

	_, err := svc.EvaluateBatch(context.Background(), nil)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.EvaluateBatch(context.Background(), []domain.Expression{ok, ok, ok})
	assert.True(t, domain.IsValidation(err))

	bad := domain.Expression{Op: domain.OpAdd, Operands: []any{domain.One, "i"}}
	_, err = svc.EvaluateBatch(context.Background(), []domain.Expression{ok, bad})
	require.Error(t, err)
	assert.True(t, domain.IsUnsupportedOperand(err))
	assert.Contains(t, err.Error(), "expression 1")
}
