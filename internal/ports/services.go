// Package ports defines the contracts between the application layer and the
// adapters around it. Methods take a context first and speak domain types;
// adapters translate their own errors into domain errors.
package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen/exercises-service/internal/domain"
)

// QuaternionEvaluator evaluates quaternion expressions.
type QuaternionEvaluator interface {
	// Evaluate folds expr left to right. Returns a domain.ValidationError for
	// a bad operator or arity and a domain.UnsupportedOperandError when an
	// operand is not a quaternion.
	Evaluate(ctx context.Context, expr domain.Expression) (domain.Quaternion, error)

	// EvaluateBatch evaluates every expression; results keep input order.
	EvaluateBatch(ctx context.Context, exprs []domain.Expression) ([]domain.Quaternion, error)
}

// ExerciseRunner runs the small leaf exercises.
type ExerciseRunner interface {
	Change(ctx context.Context, amount int64) (map[int]int64, error)

	// FirstThenLowerCase applies the named predicate (prefix, suffix,
	// contains, minlen) with arg and lowercases the first match.
	FirstThenLowerCase(ctx context.Context, items []string, predicate, arg string) (string, bool, error)

	Powers(ctx context.Context, base, limit int64) ([]int64, error)
	Say(ctx context.Context, words []string) string

	// Tree inserts words, in order, into an empty search tree.
	Tree(ctx context.Context, words []string) domain.Tree

	// LineCount returns the meaningful line count per path.
	LineCount(ctx context.Context, paths []string) (map[string]int, error)
}

// FileStore opens text files by relative path. Paths may not escape the
// store root. Returns domain.ErrNotFound for missing files.
type FileStore interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// QuaternionClient evaluates expressions against a remote calculator.
// Returns domain.ErrUnavailable when the remote service cannot be reached.
type QuaternionClient interface {
	Evaluate(ctx context.Context, op domain.Operator, operands []domain.Quaternion) (domain.Quaternion, error)
}
