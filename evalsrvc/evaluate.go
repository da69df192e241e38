package evalsrvc

import (
	"context"
	"go/token"
	"time"

	"github.com/google/uuid"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/runner"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/seccheck"
)

// Evaluate judges one submission against its test cases and returns the
// verdict. The state machine is terminal on the first non-pass:
//
//	filtering → defining → resolving → running (per case, in order)
//
// There are no retries; a single failure is final and is reported
// immediately. Request-shape problems (empty source, too many cases)
// come back as srvcerror values instead of verdicts.
func (s *EvalSrvc) Evaluate(ctx context.Context, subm Submission, cases []TestCase) (Evaluation, error) {
	converted, err := s.validate(subm, cases)
	if err != nil {
		return Evaluation{}, err
	}

	key := CacheKey(subm, cases)
	if s.cache != nil {
		if cached, ok := s.cache.Lookup(key); ok {
			s.logger.Debug("verdict cache hit", "cache_key", key)
			cached.UUID = uuid.New()
			cached.CreatedAt = time.Now()
			// a replayed verdict is still a new evaluation record, so the
			// returned uuid must be retrievable like any other
			if s.repo != nil {
				if err := s.repo.Save(ctx, cached); err != nil {
					s.logger.Error("failed to save evaluation", "error", err)
				}
			}
			return cached, nil
		}
	}

	eval := Evaluation{
		UUID:       uuid.New(),
		TargetName: subm.TargetName,
		SrcSha256:  srcSha256(subm.SrcCode),
		CacheKey:   key,
		CasesTotal: len(cases),
		CreatedAt:  time.Now(),
	}
	eval.Verdict, eval.CasesPassed = s.judge(subm, converted)

	s.logger.Info("evaluation finished",
		"eval_uuid", eval.UUID,
		"target", subm.TargetName,
		"category", eval.Verdict.Category,
		"cases_passed", eval.CasesPassed,
		"cases_total", eval.CasesTotal,
	)

	if s.cache != nil && eval.Verdict.Category != CatInternalError {
		s.cache.Store(key, eval)
	}
	if s.repo != nil {
		if err := s.repo.Save(ctx, eval); err != nil {
			// storage is best-effort; the verdict still stands
			s.logger.Error("failed to save evaluation", "error", err)
		}
	}
	return eval, nil
}

// EvaluateCode is the narrow entry point consumed by presentation layers:
// it returns only the pass flag and the renderable diagnostic message.
func (s *EvalSrvc) EvaluateCode(ctx context.Context, srcCode string, targetName string, cases []TestCase) (bool, string, error) {
	eval, err := s.Evaluate(ctx, Submission{SrcCode: srcCode, TargetName: targetName}, cases)
	if err != nil {
		return false, "", err
	}
	return eval.Verdict.Passed, eval.Verdict.Message, nil
}

// convertedCase holds a test case translated into sandbox values.
type convertedCase struct {
	args     []sandbox.Value
	expected sandbox.Value
}

func (s *EvalSrvc) validate(subm Submission, cases []TestCase) ([]convertedCase, error) {
	if len(subm.SrcCode) == 0 {
		return nil, ErrEmptySubmission()
	}
	if len(subm.SrcCode) > s.maxSrcBytes {
		return nil, ErrSubmissionTooLarge()
	}
	if !token.IsIdentifier(subm.TargetName) {
		return nil, ErrInvalidTargetName()
	}
	if len(cases) == 0 {
		return nil, ErrNoTestCases()
	}
	if len(cases) > s.maxTests {
		return nil, ErrTooManyTestCases()
	}

	converted := make([]convertedCase, len(cases))
	for i, tc := range cases {
		args := make([]sandbox.Value, len(tc.Inputs))
		for j, input := range tc.Inputs {
			v, err := sandbox.FromGo(input)
			if err != nil {
				return nil, ErrInvalidTestCase().SetDebug(err)
			}
			args[j] = v
		}
		expected, err := sandbox.FromGo(tc.Expected)
		if err != nil {
			return nil, ErrInvalidTestCase().SetDebug(err)
		}
		converted[i] = convertedCase{args: args, expected: expected}
	}
	return converted, nil
}

// judge runs the terminal state machine. An engine defect (panic) is
// recovered into a generic internal-error verdict that never echoes the
// submission's code.
func (s *EvalSrvc) judge(subm Submission, cases []convertedCase) (verdict Verdict, casesPassed int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("evaluation engine defect", "recover", r)
			verdict = Verdict{Category: CatInternalError, Message: internalErrorMessage}
		}
	}()

	// filtering
	if v := seccheck.Check(subm.SrcCode); v != nil {
		cat, msg := Classify(outcome.SecurityViolation{
			Construct: v.Construct,
			Reason:    v.Reason,
		})
		return Verdict{Category: cat, Message: msg}, 0
	}

	// defining, inside a fresh restricted environment
	env := sandbox.NewEnv()
	if derr := sandbox.Define(env, subm.SrcCode); derr != nil {
		cat, msg := Classify(outcome.DefinitionFailure{
			Detail: derr.Detail,
			Line:   derr.Line,
			Column: derr.Column,
		})
		return Verdict{Category: cat, Message: msg}, 0
	}

	// resolving
	fn, ok := env.Lookup(subm.TargetName)
	if !ok {
		return Verdict{
			Category: CatNameResolutionFailure,
			Message:  formatResolutionFailure(subm.TargetName, env.DefinedNames()),
		}, 0
	}

	// running, fail-fast
	for i, tc := range cases {
		caseNum := i + 1
		out := runner.Run(env, fn, tc.args, s.caseDeadline)

		switch o := out.(type) {
		case outcome.Timeout:
			return Verdict{
				Category: CatTimeout,
				Message:  formatTimeout(caseNum, o.Deadline),
			}, casesPassed

		case outcome.RuntimeFailure:
			return Verdict{
				Category: CatRuntimeFailure,
				Kind:     o.Kind,
				Message:  formatRuntimeFailure(o.Kind, o.Detail, caseNum, inputTuple(tc.args)),
			}, casesPassed

		case outcome.Success:
			if sandbox.IsNone(o.Value) {
				if len(o.Printed) > 0 {
					return Verdict{
						Category: CatOutputInsteadOfReturn,
						Message:  formatOutputInsteadOfReturn(),
					}, casesPassed
				}
				return Verdict{
					Category: CatMissingReturn,
					Message:  formatMissingReturn(),
				}, casesPassed
			}
			if !sandbox.Equal(o.Value, tc.expected) {
				msg, typeMismatch := formatMismatch(caseNum, inputTuple(tc.args), tc.expected, o.Value)
				return Verdict{
					Category:     CatValueMismatch,
					TypeMismatch: typeMismatch,
					Message:      msg,
				}, casesPassed
			}
			casesPassed++

		default:
			return Verdict{Category: CatInternalError, Message: internalErrorMessage}, casesPassed
		}
	}

	return Verdict{
		Passed:   true,
		Category: CatPassed,
		Message:  formatPassed(len(cases)),
	}, casesPassed
}
