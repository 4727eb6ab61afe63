package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	appctx "github.com/jsamuelsen/exercises-service/internal/app/context"
	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// Predicate names accepted by FirstThenLowerCase.
const (
	PredicatePrefix   = "prefix"
	PredicateSuffix   = "suffix"
	PredicateContains = "contains"
	PredicateMinLen   = "minlen"
)

// ExerciseService runs the leaf exercises.
type ExerciseService struct {
	files     ports.FileStore
	exec      *Executor
	maxPowers int
	maxFiles  int
	logger    *slog.Logger
}

// ExerciseServiceConfig contains the service dependencies. Files is
// required; the limits fall back to no limit when zero.
type ExerciseServiceConfig struct {
	Files     ports.FileStore
	Executor  *Executor
	MaxPowers int
	MaxFiles  int
	Logger    *slog.Logger
}

// NewExerciseService creates an ExerciseService. It panics without a
// FileStore.
func NewExerciseService(cfg ExerciseServiceConfig) *ExerciseService {
	if cfg.Files == nil {
		panic("app: ExerciseService requires a FileStore")
	}

	logger := defaultLogger(cfg.Logger)

	exec := cfg.Executor
	if exec == nil {
		exec = NewExecutor(logger, nil)
	}

	return &ExerciseService{
		files:     cfg.Files,
		exec:      exec,
		maxPowers: cfg.MaxPowers,
		maxFiles:  cfg.MaxFiles,
		logger:    logger,
	}
}

// Change decomposes amount into quarters, dimes, nickels and pennies.
func (s *ExerciseService) Change(ctx context.Context, amount int64) (map[int]int64, error) {
	ctx = logging.WithExercise(ctx, "change")

	return Execute(ctx, s.exec, Operation[int64, map[int]int64, map[int]int64, map[int]int64]{
		Name:    "exercise.change",
		Perform: func(_ context.Context, amount int64) (map[int]int64, error) { return domain.Change(amount) },
	}, amount)
}

// FirstThenLowerCase lowercases the first item matching the named predicate.
func (s *ExerciseService) FirstThenLowerCase(ctx context.Context, items []string, predicate, arg string) (string, bool, error) {
	ctx = logging.WithExercise(ctx, "first-lower")

	type found struct {
		value string
		ok    bool
	}

	var p domain.Predicate[string]
	res, err := Execute(ctx, s.exec, Operation[[]string, found, found, found]{
		Name: "exercise.first_lower",
		Validate: func(_ context.Context, _ []string) error {
			var err error
			p, err = PredicateByName(predicate, arg)
			return err
		},
		Perform: func(_ context.Context, items []string) (found, error) {
			v, ok := domain.FirstThenLowerCase(items, p)
			return found{value: v, ok: ok}, nil
		},
	}, items)
	if err != nil {
		return "", false, err
	}

	return res.value, res.ok, nil
}

// PredicateByName builds one of the named string predicates.
func PredicateByName(name, arg string) (domain.Predicate[string], error) {
	switch name {
	case PredicatePrefix:
		return func(s string) bool { return strings.HasPrefix(s, arg) }, nil
	case PredicateSuffix:
		return func(s string) bool { return strings.HasSuffix(s, arg) }, nil
	case PredicateContains:
		return func(s string) bool { return strings.Contains(s, arg) }, nil
	case PredicateMinLen:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, domain.NewValidationErrorWithValue("arg", "must be a non-negative integer for minlen", arg)
		}
		return func(s string) bool { return len(s) >= n }, nil
	default:
		return nil, domain.NewValidationErrorWithValue("predicate", "must be one of prefix, suffix, contains, minlen", name)
	}
}

type powersInput struct {
	base, limit int64
}

// Powers materializes the powers of base up to limit. The result is capped
// at the configured maximum count.
func (s *ExerciseService) Powers(ctx context.Context, base, limit int64) ([]int64, error) {
	ctx = logging.WithExercise(ctx, "powers")

	return Execute(ctx, s.exec, Operation[powersInput, []int64, []int64, []int64]{
		Name: "exercise.powers",
		Perform: func(_ context.Context, in powersInput) ([]int64, error) {
			out := []int64{}
			for p := range domain.Powers(in.base, in.limit) {
				if s.maxPowers > 0 && len(out) == s.maxPowers {
					break
				}
				out = append(out, p)
			}
			return out, nil
		},
	}, powersInput{base: base, limit: limit})
}

// Say joins words into a phrase.
func (s *ExerciseService) Say(ctx context.Context, words []string) string {
	phrase := domain.Say()
	for _, w := range words {
		phrase = phrase.And(w)
	}

	s.logger.DebugContext(logging.WithExercise(ctx, "say"), "phrase built", slog.Int("words", len(words)))

	return phrase.Phrase()
}

// Tree builds a search tree from words. Duplicates are kept once.
func (s *ExerciseService) Tree(ctx context.Context, words []string) domain.Tree {
	var t domain.Tree
	for _, w := range words {
		t = t.Insert(w)
	}

	s.logger.DebugContext(logging.WithExercise(ctx, "tree"), "tree built",
		slog.Int("words", len(words)), slog.Int("size", t.Size()))

	return t
}

// LineCount counts the meaningful lines of each file. Files are read in
// parallel and each path is read at most once per request.
func (s *ExerciseService) LineCount(ctx context.Context, paths []string) (map[string]int, error) {
	ctx = logging.WithExercise(ctx, "line-count")
	ctx, rc := appctx.Ensure(ctx)

	return Execute(ctx, s.exec, Operation[[]string, []int, []int, map[string]int]{
		Name: "exercise.line_count",
		Validate: func(_ context.Context, paths []string) error {
			if len(paths) == 0 {
				return domain.NewValidationError("paths", "must not be empty")
			}
			if s.maxFiles > 0 && len(paths) > s.maxFiles {
				return domain.NewValidationErrorWithValue("paths", fmt.Sprintf("at most %d files", s.maxFiles), len(paths))
			}
			for _, p := range paths {
				if strings.TrimSpace(p) == "" {
					return domain.NewValidationError("paths", "must not contain blank entries")
				}
			}
			return nil
		},
		Perform: func(ctx context.Context, paths []string) ([]int, error) {
			// The shared fetch runs on the caller's per-file context, so a
			// failed file cancels the other opens and logs keep the exercise.
			return ParallelMap(ctx, s.maxFiles, paths, func(ctx context.Context, path string) (int, error) {
				return appctx.Fetch(rc, "lines:"+path, func(context.Context) (int, error) {
					return s.countFile(ctx, path)
				})
			})
		},
		Respond: func(_ context.Context, paths []string, counts []int) (map[string]int, error) {
			out := make(map[string]int, len(paths))
			for i, p := range paths {
				out[p] = counts[i]
			}
			return out, nil
		},
	}, paths)
}

func (s *ExerciseService) countFile(ctx context.Context, path string) (int, error) {
	r, err := s.files.Open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	n, err := domain.MeaningfulLineCount(r)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", path, err)
	}

	logging.FromContext(ctx).DebugContext(ctx, "file counted", slog.String("path", path), slog.Int("lines", n))

	return n, nil
}
