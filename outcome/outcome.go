package outcome

import "time"

// Outcome is the result of one isolated execution attempt. Exactly one
// concrete type is produced per attempt and it is never mutated afterwards,
// only inspected by the classifier.
type Outcome interface {
	isOutcome()
}

// Success carries the value the callable returned and anything it printed
// into the captured output sink during the attempt.
type Success struct {
	Value   any
	Printed []string
}

// RuntimeFailure is an exception-like failure raised while the callable ran.
type RuntimeFailure struct {
	Kind   FailureKind
	Detail string
}

// Timeout means the callable did not finish within the deadline.
type Timeout struct {
	Deadline time.Duration
}

// SecurityViolation is produced by the security filter before any execution.
type SecurityViolation struct {
	// Construct names the exact forbidden construct, e.g. `import "os"`.
	Construct string
	Reason    string
}

// DefinitionFailure means the submission could not be parsed or defined.
type DefinitionFailure struct {
	Detail string
	Line   int // 0 when unknown
	Column int
}

func (Success) isOutcome()           {}
func (RuntimeFailure) isOutcome()    {}
func (Timeout) isOutcome()           {}
func (SecurityViolation) isOutcome() {}
func (DefinitionFailure) isOutcome() {}

// FailureKind is the closed set of runtime failure kinds. It is stable
// across versions; new failure modes map to KindOther.
type FailureKind string

const (
	KindName  FailureKind = "name_error"
	KindType  FailureKind = "type_error"
	KindIndex FailureKind = "index_error"
	KindKey   FailureKind = "key_error"
	KindArith FailureKind = "arithmetic_error"
	KindOther FailureKind = "other"
)
