package evalsrvc

import (
	"fmt"
	"strings"
	"time"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
)

// Every user-visible message in this file comes from a fixed template: a
// terse statement of the problem plus one remediation suggestion. Nothing
// here ever renders host stack traces, internal file paths, or the
// submission's code verbatim.

// kindTemplate is the per-kind message template for runtime failures.
type kindTemplate struct {
	title      string
	suggestion string
}

var kindTemplates = map[outcome.FailureKind]kindTemplate{
	outcome.KindName: {
		title:      "undefined name",
		suggestion: "Define every variable and function before using it.",
	},
	outcome.KindType: {
		title:      "type error",
		suggestion: "Check that operand and argument types match what the operation expects.",
	},
	outcome.KindIndex: {
		title:      "index out of range",
		suggestion: "Check your loop bounds and list indices.",
	},
	outcome.KindKey: {
		title:      "missing map key",
		suggestion: "Check that the key exists before accessing it, for example with contains().",
	},
	outcome.KindArith: {
		title:      "arithmetic error",
		suggestion: "Guard divisions and modulo so the divisor is never zero.",
	},
	outcome.KindOther: {
		title:      "runtime error",
		suggestion: "Check your code logic and try again.",
	},
}

// Classify maps an execution outcome to its category and a context-free
// diagnostic message. The harness composes the same templates with
// per-case context where it has any.
func Classify(out outcome.Outcome) (Category, string) {
	switch o := out.(type) {
	case outcome.Success:
		return CatPassed, "execution succeeded"
	case outcome.SecurityViolation:
		return CatSecurityViolation, formatSecurityViolation(o.Reason)
	case outcome.DefinitionFailure:
		return CatDefinitionFailure, formatDefinitionFailure(o.Detail)
	case outcome.Timeout:
		return CatTimeout, formatTimeout(0, o.Deadline)
	case outcome.RuntimeFailure:
		return CatRuntimeFailure, formatRuntimeFailure(o.Kind, o.Detail, 0, "")
	default:
		return CatInternalError, internalErrorMessage
	}
}

const internalErrorMessage = "Internal evaluation error. Your submission was not judged; please try again."

func formatSecurityViolation(reason string) string {
	return fmt.Sprintf("Security violation: %s. Remove the construct; only the allow-listed primitives are available inside the sandbox.", reason)
}

func formatDefinitionFailure(detail string) string {
	suggestion := "Check your function definition for errors."
	if strings.HasPrefix(detail, "syntax error") {
		suggestion = "Check for missing braces, parentheses or quotes."
	}
	return fmt.Sprintf("Could not define your code.\n%s\n%s", detail, suggestion)
}

func formatResolutionFailure(target string, defined []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Function %q is not defined.\n", target)
	if len(defined) > 0 {
		fmt.Fprintf(&b, "Defined functions: %s\n", strings.Join(defined, ", "))
	} else {
		b.WriteString("No functions were defined.\n")
	}
	fmt.Fprintf(&b, "Name your function exactly %q.", target)
	return b.String()
}

func formatTimeout(caseNum int, deadline time.Duration) string {
	where := ""
	if caseNum > 0 {
		where = fmt.Sprintf(" on test case %d", caseNum)
	}
	return fmt.Sprintf("Time limit exceeded%s: execution took longer than %s. Check for infinite loops or optimize your solution.",
		where, deadline)
}

func formatRuntimeFailure(kind outcome.FailureKind, detail string, caseNum int, input string) string {
	tmpl, ok := kindTemplates[kind]
	if !ok {
		tmpl = kindTemplates[outcome.KindOther]
	}
	var b strings.Builder
	b.WriteString(strings.ToUpper(tmpl.title[:1]) + tmpl.title[1:])
	if caseNum > 0 {
		fmt.Fprintf(&b, " on test case %d", caseNum)
	}
	fmt.Fprintf(&b, ": %s.", detail)
	if input != "" {
		fmt.Fprintf(&b, "\nInput: %s", input)
	}
	b.WriteString("\n" + tmpl.suggestion)
	return b.String()
}

func formatOutputInsteadOfReturn() string {
	return "Your function printed a value instead of returning it. Replace print(...) with return ... so the value reaches the caller."
}

func formatMissingReturn() string {
	return "Your function did not return a value. Add a return statement at the end of your function."
}

func formatMismatch(caseNum int, input string, expected, actual sandbox.Value) (string, bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "Wrong answer on test case %d.\n", caseNum)
	fmt.Fprintf(&b, "Input: %s\n", input)
	fmt.Fprintf(&b, "Expected: %s\n", sandbox.Repr(expected))
	fmt.Fprintf(&b, "Got: %s", sandbox.Repr(actual))

	typeMismatch := sandbox.TypeName(expected) != sandbox.TypeName(actual)
	if typeMismatch {
		fmt.Fprintf(&b, "\nType mismatch: expected %s but got %s. Make sure you return the correct type.",
			sandbox.TypeName(expected), sandbox.TypeName(actual))
	}
	return b.String(), typeMismatch
}

func formatPassed(count int) string {
	if count == 1 {
		return "The test case passed."
	}
	return fmt.Sprintf("All %d test cases passed.", count)
}

// inputTuple renders a test case input tuple for diagnostics: "(2, 3)".
func inputTuple(args []sandbox.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = sandbox.Repr(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
