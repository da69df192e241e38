package evalsrvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EvalRepo stores finished evaluations for later retrieval. It is an
// optional, explicitly passed capability: the harness itself carries no
// ambient persistent state.
type EvalRepo interface {
	Save(ctx context.Context, eval Evaluation) error
	Get(ctx context.Context, id uuid.UUID) (Evaluation, error)
}

// VerdictCache is the optional content-addressed replay cache, keyed by
// CacheKey. Evaluation is deterministic, so a hit may be returned without
// re-executing the submission.
type VerdictCache interface {
	Lookup(key string) (Evaluation, bool)
	Store(key string, eval Evaluation)
}

// EvalSrvc runs evaluation requests. One request is processed by one
// Evaluate call; test cases inside it run sequentially so the first
// failing case is deterministic. No state is shared across concurrent
// requests: each gets its own filter pass, environment and workers.
type EvalSrvc struct {
	logger *slog.Logger

	// optional capabilities, nil disables them
	repo  EvalRepo
	cache VerdictCache

	caseDeadline time.Duration
	maxSrcBytes  int
	maxTests     int
}

const (
	// DefaultCaseDeadline is the per-test-case wall-clock limit.
	DefaultCaseDeadline = 5 * time.Second

	defaultMaxSrcBytes = 64 * 1024
	defaultMaxTests    = 200
)

// NewEvalSrvc creates an evaluation service with default limits and no
// storage capabilities.
func NewEvalSrvc() *EvalSrvc {
	return NewCustomEvalSrvc(
		slog.Default().With("module", "eval"),
		nil,
		nil,
		DefaultCaseDeadline,
	)
}

// NewCustomEvalSrvc creates an evaluation service with the provided
// dependencies. repo and cache may be nil.
func NewCustomEvalSrvc(
	logger *slog.Logger,
	repo EvalRepo,
	cache VerdictCache,
	caseDeadline time.Duration,
) *EvalSrvc {
	if caseDeadline <= 0 {
		caseDeadline = DefaultCaseDeadline
	}
	return &EvalSrvc{
		logger:       logger,
		repo:         repo,
		cache:        cache,
		caseDeadline: caseDeadline,
		maxSrcBytes:  defaultMaxSrcBytes,
		maxTests:     defaultMaxTests,
	}
}

// Get retrieves a stored evaluation by id.
func (s *EvalSrvc) Get(ctx context.Context, id uuid.UUID) (Evaluation, error) {
	if s.repo == nil {
		return Evaluation{}, ErrEvalNotFound()
	}
	return s.repo.Get(ctx, id)
}
