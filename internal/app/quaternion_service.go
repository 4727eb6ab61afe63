package app

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

// QuaternionService evaluates quaternion expressions.
type QuaternionService struct {
	exec     *Executor
	maxBatch int
	logger   *slog.Logger
}

// QuaternionServiceConfig contains the service dependencies.
type QuaternionServiceConfig struct {
	Executor *Executor
	MaxBatch int
	Logger   *slog.Logger
}

// NewQuaternionService creates a QuaternionService. A nil Executor gets a
// default one without metrics.
func NewQuaternionService(cfg QuaternionServiceConfig) *QuaternionService {
	logger := defaultLogger(cfg.Logger)

	exec := cfg.Executor
	if exec == nil {
		exec = NewExecutor(logger, nil)
	}

	return &QuaternionService{exec: exec, maxBatch: cfg.MaxBatch, logger: logger}
}

var evaluateOp = Operation[domain.Expression, domain.Quaternion, domain.Quaternion, domain.Quaternion]{
	Name: "quaternion.evaluate",
	Validate: func(_ context.Context, e domain.Expression) error {
		return e.Validate()
	},
	Perform: func(_ context.Context, e domain.Expression) (domain.Quaternion, error) {
		return e.Fold()
	},
	Verify: func(_ context.Context, _ domain.Expression, q domain.Quaternion) (domain.Quaternion, error) {
		if !finite(q) {
			return domain.Quaternion{}, domain.NewValidationErrorWithValue("result", "is not finite", q.String())
		}
		return q, nil
	},
}

// Evaluate folds expr left to right.
func (s *QuaternionService) Evaluate(ctx context.Context, expr domain.Expression) (domain.Quaternion, error) {
	q, err := Execute(ctx, s.exec, evaluateOp, expr)
	if err != nil {
		return domain.Quaternion{}, err
	}

	s.logger.DebugContext(ctx, "expression evaluated",
		slog.String("op", string(expr.Op)),
		slog.Int("operands", len(expr.Operands)),
		slog.String("result", q.String()),
	)

	return q, nil
}

// EvaluateBatch evaluates exprs concurrently. The first failure cancels the
// rest and is returned with the index of the failing expression.
func (s *QuaternionService) EvaluateBatch(ctx context.Context, exprs []domain.Expression) ([]domain.Quaternion, error) {
	if len(exprs) == 0 {
		return nil, domain.NewValidationError("expressions", "must not be empty")
	}
	if s.maxBatch > 0 && len(exprs) > s.maxBatch {
		return nil, domain.NewValidationErrorWithValue("expressions",
			fmt.Sprintf("at most %d expressions per batch", s.maxBatch), len(exprs))
	}

	type indexed struct {
		i    int
		expr domain.Expression
	}
	items := make([]indexed, len(exprs))
	for i, e := range exprs {
		items[i] = indexed{i: i, expr: e}
	}

	results, err := ParallelMap(ctx, runtime.GOMAXPROCS(0), items, func(ctx context.Context, it indexed) (domain.Quaternion, error) {
		q, err := s.Evaluate(ctx, it.expr)
		if err != nil {
			return domain.Quaternion{}, fmt.Errorf("expression %d: %w", it.i, err)
		}
		return q, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "batch evaluated", slog.Int("expressions", len(results)))

	return results, nil
}
