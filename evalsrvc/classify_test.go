package evalsrvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
)

func TestClassifyMapsOutcomesToCategories(t *testing.T) {
	tests := []struct {
		name string
		out  outcome.Outcome
		want Category
	}{
		{"success", outcome.Success{Value: int64(1)}, CatPassed},
		{"security", outcome.SecurityViolation{Construct: `import "os"`, Reason: `importing package "os" is not allowed`}, CatSecurityViolation},
		{"definition", outcome.DefinitionFailure{Detail: "syntax error at line 2: expected operand", Line: 2}, CatDefinitionFailure},
		{"timeout", outcome.Timeout{Deadline: 5 * time.Second}, CatTimeout},
		{"runtime", outcome.RuntimeFailure{Kind: outcome.KindName, Detail: `name "b" is not defined`}, CatRuntimeFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, msg := Classify(tt.out)
			require.Equal(t, tt.want, cat)
			require.NotEmpty(t, msg)
		})
	}
}

func TestRuntimeMessagesCarryKindSuggestions(t *testing.T) {
	_, msg := Classify(outcome.RuntimeFailure{Kind: outcome.KindIndex, Detail: "list index 5 out of range for length 2"})
	require.Contains(t, msg, "Index out of range")
	require.Contains(t, msg, "loop bounds")

	_, msg = Classify(outcome.RuntimeFailure{Kind: outcome.KindArith, Detail: "integer division by zero"})
	require.Contains(t, msg, "divisor is never zero")

	// unknown kinds fall back to the generic template
	_, msg = Classify(outcome.RuntimeFailure{Kind: outcome.FailureKind("weird"), Detail: "something odd"})
	require.Contains(t, msg, "Runtime error")
}

func TestTimeoutMessageNamesDeadline(t *testing.T) {
	_, msg := Classify(outcome.Timeout{Deadline: 5 * time.Second})
	require.Contains(t, msg, "5s")
	require.Contains(t, msg, "infinite loops")
}

func TestFormatMismatchFlagsTypeDifference(t *testing.T) {
	msg, typeMismatch := formatMismatch(1, "(2, 3)", int64(5), "5")
	require.True(t, typeMismatch)
	require.Contains(t, msg, "expected int but got str")

	msg, typeMismatch = formatMismatch(2, "(10, 20)", int64(30), int64(25))
	require.False(t, typeMismatch)
	require.Contains(t, msg, "Expected: 30")
	require.Contains(t, msg, "Got: 25")
}

func TestMismatchRendersCollections(t *testing.T) {
	expected := []sandbox.Value{int64(1), int64(2)}
	actual := []sandbox.Value{int64(2), int64(1)}
	msg, typeMismatch := formatMismatch(1, "([2, 1])", expected, actual)
	require.False(t, typeMismatch)
	require.Contains(t, msg, "Expected: [1, 2]")
	require.Contains(t, msg, "Got: [2, 1]")
}

func TestCacheKeyIsContentAddressed(t *testing.T) {
	subm := Submission{SrcCode: "func f() int { return 1 }", TargetName: "f"}
	cases := []TestCase{{Inputs: []any{1}, Expected: 1}}

	require.Equal(t, CacheKey(subm, cases), CacheKey(subm, cases))

	other := subm
	other.SrcCode += " "
	require.NotEqual(t, CacheKey(subm, cases), CacheKey(other, cases))

	renamed := subm
	renamed.TargetName = "g"
	require.NotEqual(t, CacheKey(subm, cases), CacheKey(renamed, cases))
}
