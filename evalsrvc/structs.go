package evalsrvc

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
)

// Submission is the untrusted source code and the name of the function the
// harness must resolve after definition. Immutable once received.
type Submission struct {
	SrcCode    string `json:"src_code"`    // submitter-authored source, UTF-8
	TargetName string `json:"target_name"` // exact identifier to resolve
}

// TestCase is one (inputs, expected) pair supplied by the question-bank
// collaborator; read-only to this engine. Inputs is a fixed-arity tuple
// matching the target's parameter count.
type TestCase struct {
	Inputs   []any `json:"inputs"`
	Expected any   `json:"expected"`
}

// Category is the closed failure taxonomy. It is stable across versions;
// new failure modes must map onto an existing member.
type Category string

const (
	CatPassed                Category = "passed"
	CatSecurityViolation     Category = "security_violation"
	CatDefinitionFailure     Category = "definition_failure"
	CatNameResolutionFailure Category = "name_resolution_failure"
	CatTimeout               Category = "timeout"
	CatRuntimeFailure        Category = "runtime_failure"
	CatOutputInsteadOfReturn Category = "output_instead_of_return"
	CatMissingReturn         Category = "missing_return"
	CatValueMismatch         Category = "value_mismatch"
	CatInternalError         Category = "internal_error"
)

// Verdict is the single result returned to the caller. Message is built
// only from the fixed templates and submission-level information, never
// from host stack traces, so it is always safe to render directly.
type Verdict struct {
	Passed       bool                `json:"passed"`
	Category     Category            `json:"category"`
	Kind         outcome.FailureKind `json:"kind,omitempty"` // set for runtime failures
	TypeMismatch bool                `json:"type_mismatch,omitempty"`
	Message      string              `json:"message"`
}

// Evaluation is the stored record of one harness invocation.
type Evaluation struct {
	UUID        uuid.UUID `json:"uuid"`
	TargetName  string    `json:"target_name"`
	SrcSha256   string    `json:"src_sha256"`
	CacheKey    string    `json:"cache_key"`
	Verdict     Verdict   `json:"verdict"`
	CasesPassed int       `json:"cases_passed"`
	CasesTotal  int       `json:"cases_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// CacheKey derives the content-addressed identity of an evaluation
// request: identical submission and test cases yield identical keys, which
// is what makes replay lookups sound (evaluation itself is deterministic).
func CacheKey(subm Submission, cases []TestCase) string {
	h := sha256.New()
	h.Write([]byte(subm.TargetName))
	h.Write([]byte{0})
	h.Write([]byte(subm.SrcCode))
	h.Write([]byte{0})
	enc, _ := json.Marshal(cases)
	h.Write(enc)
	return hex.EncodeToString(h.Sum(nil))
}

func srcSha256(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}
