package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
	"github.com/jsamuelsen/exercises-service/internal/platform/telemetry"
)

// Operations run in four steps: Validate → Perform → Verify → Respond.
// Validate rejects bad input before any work happens, Verify checks the
// computed value before anyone sees it, and Respond shapes it for the caller.

// ExecutionStep names a step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// Executor runs operations, logging each step and recording a span and an
// evaluation metric per run.
type Executor struct {
	logger  *slog.Logger
	metrics *telemetry.ExerciseMetrics
}

// NewExecutor creates an executor. Both arguments may be nil.
func NewExecutor(logger *slog.Logger, metrics *telemetry.ExerciseMetrics) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger, metrics: metrics}
}

// Operation defines the steps of one use case. Nil steps are skipped; a nil
// Verify passes the performed value through when P and V are the same type.
type Operation[I, P, V, O any] struct {
	// Name labels logs, spans and metrics.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op over input.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (result O, err error) {
	var zero O

	logger := exec.logger
	if fromCtx := logging.FromContext(ctx); fromCtx != slog.Default() {
		logger = fromCtx
	}
	logger = logger.With(slog.String("operation", op.Name))

	ctx, span := telemetry.Tracer().Start(ctx, op.Name)
	start := time.Now()
	defer func() {
		exec.metrics.Observe(op.Name, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if op.Validate != nil {
		if verr := op.Validate(ctx, input); verr != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", verr))
			return zero, stepError(StepValidate, "input validation failed", verr)
		}
	}

	var performed P
	if op.Perform != nil {
		performed, err = op.Perform(ctx, input)
		if err != nil {
			logger.WarnContext(ctx, "perform failed", slog.Any("error", err))
			return zero, stepError(StepPerform, "operation failed", err)
		}
	}
	logger.Log(ctx, logging.LevelTrace, "operation performed")

	verified, err := runVerify(ctx, op, input, performed)
	if err != nil {
		logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))
		return zero, stepError(StepVerify, "verification failed", err)
	}

	if op.Respond != nil {
		result, err = op.Respond(ctx, input, verified)
		if err != nil {
			logger.WarnContext(ctx, "respond failed", slog.Any("error", err))
			return zero, stepError(StepRespond, "response shaping failed", err)
		}
	} else if r, ok := any(verified).(O); ok {
		result = r
	}

	span.SetAttributes(attribute.String("exercise.operation", op.Name))
	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

func runVerify[I, P, V, O any](ctx context.Context, op Operation[I, P, V, O], input I, performed P) (V, error) {
	if op.Verify != nil {
		return op.Verify(ctx, input, performed)
	}
	if v, ok := any(performed).(V); ok {
		return v, nil
	}
	var zero V
	return zero, nil
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}
	return "", false
}
