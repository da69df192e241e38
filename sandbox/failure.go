package sandbox

import (
	"fmt"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
)

// Failure is an exception-like runtime failure raised by the interpreter.
// It never carries host stack traces, only dialect-level information.
type Failure struct {
	Kind   outcome.FailureKind
	Detail string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

func nameErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindName, Detail: fmt.Sprintf(format, args...)}
}

func typeErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindType, Detail: fmt.Sprintf(format, args...)}
}

func indexErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindIndex, Detail: fmt.Sprintf(format, args...)}
}

func keyErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindKey, Detail: fmt.Sprintf(format, args...)}
}

func arithErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindArith, Detail: fmt.Sprintf(format, args...)}
}

func otherErr(format string, args ...any) *Failure {
	return &Failure{Kind: outcome.KindOther, Detail: fmt.Sprintf(format, args...)}
}
