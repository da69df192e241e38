package sandbox

import (
	"go/ast"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Env is one restricted execution environment. Each submission gets a
// fresh instance; definitions may be reused across test cases of the same
// submission but an Env is never shared between submissions.
//
// The only capabilities an Env exposes are the allow-listed builtins and
// the functions the submission itself defined. There is no filesystem,
// process, network, import or reflection primitive to reach for: what the
// interpreter does not implement cannot be done.
type Env struct {
	defs map[string]*Func

	mu   sync.Mutex
	sink []string // captured print output
}

// NewEnv builds a fresh, non-shared restricted environment.
func NewEnv() *Env {
	return &Env{defs: make(map[string]*Func)}
}

// Func is a callable defined by the submission.
type Func struct {
	name   string
	params []string
	body   *ast.BlockStmt
	env    *Env
}

// Name returns the identifier the function was defined under.
func (f *Func) Name() string { return f.name }

// Arity returns the declared parameter count.
func (f *Func) Arity() int { return len(f.params) }

// Lookup resolves a function the submission defined.
func (e *Env) Lookup(name string) (*Func, bool) {
	fn, ok := e.defs[name]
	return fn, ok
}

// DefinedNames lists the defined function names in sorted order, for the
// name-resolution diagnostic.
func (e *Env) DefinedNames() []string {
	names := maps.Keys(e.defs)
	slices.Sort(names)
	return names
}

// capturePrint records one print call. Safe for concurrent use: an
// abandoned timed-out worker may still be printing while the harness
// inspects the sink.
func (e *Env) capturePrint(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = append(e.sink, line)
}

// ClearPrinted empties the output sink before an execution attempt.
func (e *Env) ClearPrinted() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = nil
}

// Printed returns a copy of everything captured since the last clear.
func (e *Env) Printed() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.sink))
	copy(out, e.sink)
	return out
}
