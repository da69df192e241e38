package evalsrvc_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/srvcerror"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSrvc() *evalsrvc.EvalSrvc {
	return evalsrvc.NewCustomEvalSrvc(quietLogger(), nil, nil, evalsrvc.DefaultCaseDeadline)
}

func addCases() []evalsrvc.TestCase {
	return []evalsrvc.TestCase{
		{Inputs: []any{2, 3}, Expected: 5},
		{Inputs: []any{10, 20}, Expected: 30},
	}
}

func TestCorrectSubmissionPasses(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a + b }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.True(t, eval.Verdict.Passed)
	require.Equal(t, evalsrvc.CatPassed, eval.Verdict.Category)
	require.Equal(t, 2, eval.CasesPassed)
	require.Equal(t, 2, eval.CasesTotal)
}

func TestPrintInsteadOfReturn(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { print(a + b) }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.False(t, eval.Verdict.Passed)
	require.Equal(t, evalsrvc.CatOutputInsteadOfReturn, eval.Verdict.Category)
	require.Contains(t, eval.Verdict.Message, "printed")
	require.Contains(t, eval.Verdict.Message, "return")
}

func TestMissingReturn(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode: `func add(a, b int) int {
	c := a + b
	c++
}`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatMissingReturn, eval.Verdict.Category)
}

func TestForbiddenImportIsSecurityViolation(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode: `import "os"

func add(a, b int) int { return a + b }
`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.False(t, eval.Verdict.Passed)
	require.Equal(t, evalsrvc.CatSecurityViolation, eval.Verdict.Category)
	// the message names the offending construct
	require.Contains(t, eval.Verdict.Message, `"os"`)
	// the filter fires before any case runs
	require.Equal(t, 0, eval.CasesPassed)
}

func TestIdentifiersContainingForbiddenWordsEvaluate(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func keep(important int) int { return important }`,
		TargetName: "keep",
	}, []evalsrvc.TestCase{{Inputs: []any{7}, Expected: 7}})
	require.NoError(t, err)
	require.True(t, eval.Verdict.Passed)
	require.Equal(t, evalsrvc.CatPassed, eval.Verdict.Category)
}

func TestInfiniteLoopTimesOutWithinDeadline(t *testing.T) {
	deadline := 100 * time.Millisecond
	srvc := evalsrvc.NewCustomEvalSrvc(quietLogger(), nil, nil, deadline)

	start := time.Now()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { for { } }`,
		TargetName: "add",
	}, addCases())
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatTimeout, eval.Verdict.Category)
	require.Contains(t, eval.Verdict.Message, "Time limit exceeded")
	require.Less(t, elapsed, deadline+time.Second)
}

func TestFailFastStopsAtFirstFailingCase(t *testing.T) {
	srvc := newSrvc()
	// correct for the first case only
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode: `func add(a, b int) int {
	if a == 2 {
		return 5
	}
	return 0
}`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatValueMismatch, eval.Verdict.Category)
	require.Equal(t, 1, eval.CasesPassed)
	require.Contains(t, eval.Verdict.Message, "test case 2")
	require.Contains(t, eval.Verdict.Message, "Input: (10, 20)")
	require.Contains(t, eval.Verdict.Message, "Expected: 30")
	require.Contains(t, eval.Verdict.Message, "Got: 0")
}

func TestTypeMismatchIsCalledOut(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return "5" }`,
		TargetName: "add",
	}, []evalsrvc.TestCase{{Inputs: []any{2, 3}, Expected: 5}})
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatValueMismatch, eval.Verdict.Category)
	require.True(t, eval.Verdict.TypeMismatch)
	require.Contains(t, eval.Verdict.Message, "expected int but got str")
}

func TestIntAndFloatDoNotCompareEqual(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func half(a int) float64 { return a / 1.0 }`,
		TargetName: "half",
	}, []evalsrvc.TestCase{{Inputs: []any{5}, Expected: 5}})
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatValueMismatch, eval.Verdict.Category)
	require.True(t, eval.Verdict.TypeMismatch)
}

func TestWrongNameListsDefinedFunctions(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func sumTwo(a, b int) int { return a + b }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatNameResolutionFailure, eval.Verdict.Category)
	require.Contains(t, eval.Verdict.Message, `"add" is not defined`)
	require.Contains(t, eval.Verdict.Message, "sumTwo")
}

func TestSyntaxErrorIsDefinitionFailure(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode: `func add(a, b int) int {
	return a +
}`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatDefinitionFailure, eval.Verdict.Category)
	require.Contains(t, eval.Verdict.Message, "syntax error")
	require.Contains(t, eval.Verdict.Message, "braces")
}

func TestRuntimeFailureNamesCaseAndInput(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a + c }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.Equal(t, evalsrvc.CatRuntimeFailure, eval.Verdict.Category)
	require.Equal(t, outcome.KindName, eval.Verdict.Kind)
	require.Contains(t, eval.Verdict.Message, "test case 1")
	require.Contains(t, eval.Verdict.Message, "Input: (2, 3)")
}

func TestVerdictsAreIdempotent(t *testing.T) {
	srvc := newSrvc()
	subm := evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a * b }`,
		TargetName: "add",
	}
	first, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)
	second, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)

	require.Equal(t, first.Verdict, second.Verdict)
	require.Equal(t, first.CasesPassed, second.CasesPassed)
	require.NotEqual(t, first.UUID, second.UUID)
}

func TestVerdictCacheServesRepeats(t *testing.T) {
	cache := evalsrvc.NewInMemVerdictCache()
	srvc := evalsrvc.NewCustomEvalSrvc(quietLogger(), nil, cache, evalsrvc.DefaultCaseDeadline)

	subm := evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a + b }`,
		TargetName: "add",
	}
	first, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)
	second, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)

	require.Equal(t, first.Verdict, second.Verdict)
	require.Equal(t, first.CacheKey, second.CacheKey)
	// a cache hit is still a distinct evaluation record
	require.NotEqual(t, first.UUID, second.UUID)
}

func TestCacheHitIsStillRetrievableFromRepo(t *testing.T) {
	repo := evalsrvc.NewInMemEvalRepo()
	cache := evalsrvc.NewInMemVerdictCache()
	srvc := evalsrvc.NewCustomEvalSrvc(quietLogger(), repo, cache, evalsrvc.DefaultCaseDeadline)

	subm := evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a + b }`,
		TargetName: "add",
	}
	first, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)
	second, err := srvc.Evaluate(context.Background(), subm, addCases())
	require.NoError(t, err)
	require.NotEqual(t, first.UUID, second.UUID)

	// both evaluation records resolve, the replayed one included
	stored, err := srvc.Get(context.Background(), first.UUID)
	require.NoError(t, err)
	require.Equal(t, first.Verdict, stored.Verdict)

	stored, err = srvc.Get(context.Background(), second.UUID)
	require.NoError(t, err)
	require.Equal(t, second.Verdict, stored.Verdict)
}

func TestRepoReceivesFinishedEvaluations(t *testing.T) {
	repo := evalsrvc.NewInMemEvalRepo()
	srvc := evalsrvc.NewCustomEvalSrvc(quietLogger(), repo, nil, evalsrvc.DefaultCaseDeadline)

	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a + b }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)

	stored, err := srvc.Get(context.Background(), eval.UUID)
	require.NoError(t, err)
	require.Equal(t, eval.UUID, stored.UUID)
	require.True(t, stored.Verdict.Passed)
}

func TestValidationErrors(t *testing.T) {
	srvc := newSrvc()
	ctx := context.Background()

	_, err := srvc.Evaluate(ctx, evalsrvc.Submission{TargetName: "add"}, addCases())
	requireErrCode(t, err, evalsrvc.ErrCodeEmptySubmission)

	_, err = srvc.Evaluate(ctx, evalsrvc.Submission{
		SrcCode: `func add(a, b int) int { return a + b }`, TargetName: "my func",
	}, addCases())
	requireErrCode(t, err, evalsrvc.ErrCodeInvalidTargetName)

	_, err = srvc.Evaluate(ctx, evalsrvc.Submission{
		SrcCode: `func add(a, b int) int { return a + b }`, TargetName: "add",
	}, nil)
	requireErrCode(t, err, evalsrvc.ErrCodeNoTestCases)

	_, err = srvc.Evaluate(ctx, evalsrvc.Submission{
		SrcCode: `func add(a, b int) int { return a + b }`, TargetName: "add",
	}, []evalsrvc.TestCase{{Inputs: []any{struct{}{}}, Expected: 5}})
	requireErrCode(t, err, evalsrvc.ErrCodeInvalidTestCase)
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	srvcErr, ok := err.(*srvcerror.Error)
	require.True(t, ok, "got %T", err)
	require.Equal(t, code, srvcErr.ErrorCode())
}

func TestEvaluateCode(t *testing.T) {
	srvc := newSrvc()
	passed, msg, err := srvc.EvaluateCode(context.Background(),
		`func add(a, b int) int { return a + b }`, "add", addCases())
	require.NoError(t, err)
	require.True(t, passed)
	require.Contains(t, msg, "passed")
}

func TestMessagesNeverEchoHostDetails(t *testing.T) {
	srvc := newSrvc()
	eval, err := srvc.Evaluate(context.Background(), evalsrvc.Submission{
		SrcCode:    `func add(a, b int) int { return a / 0 }`,
		TargetName: "add",
	}, addCases())
	require.NoError(t, err)
	require.NotContains(t, eval.Verdict.Message, "goroutine")
	require.NotContains(t, eval.Verdict.Message, ".go:")
}
