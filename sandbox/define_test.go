package sandbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefineCollectsAllFunctions(t *testing.T) {
	src := `
func add(a, b int) int { return a + b }
func sub(a, b int) int { return a - b }
`
	env := NewEnv()
	require.Nil(t, Define(env, src))
	require.Equal(t, []string{"add", "sub"}, env.DefinedNames())
}

func TestDefineAcceptsExplicitPackageClause(t *testing.T) {
	src := `package whatever

func id(x int) int { return x }
`
	env := NewEnv()
	require.Nil(t, Define(env, src))
	_, ok := env.Lookup("id")
	require.True(t, ok)
}

func TestDefineSyntaxErrorHasLineAndContext(t *testing.T) {
	src := `func add(a, b int) int {
	return a +
}`
	env := NewEnv()
	derr := Define(env, src)
	require.NotNil(t, derr)
	require.Contains(t, derr.Detail, "syntax error")
	require.Contains(t, derr.Detail, "→ ")
	// position refers to the submission's own lines, not the
	// synthesized header
	require.GreaterOrEqual(t, derr.Line, 1)
	require.LessOrEqual(t, derr.Line, 3)
}

func TestDefineRejectsMethods(t *testing.T) {
	derr := Define(NewEnv(), `func (r receiver) add(a int) int { return a }`)
	require.NotNil(t, derr)
	require.Contains(t, derr.Detail, "methods")
}

func TestDefineRejectsVariadicParams(t *testing.T) {
	derr := Define(NewEnv(), `func sum(xs ...int) int { return 0 }`)
	require.NotNil(t, derr)
	require.Contains(t, derr.Detail, "variadic")
}

func TestDefineRejectsTopLevelVar(t *testing.T) {
	derr := Define(NewEnv(), `var counter = 0

func get() int { return counter }
`)
	require.NotNil(t, derr)
	require.Contains(t, derr.Detail, "function declarations")
}

func TestDefineRejectsImports(t *testing.T) {
	derr := Define(NewEnv(), `import "fmt"

func f() int { return 1 }
`)
	require.NotNil(t, derr)
	require.Contains(t, derr.Detail, "imports")
}
