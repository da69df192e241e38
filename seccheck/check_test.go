package seccheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/seccheck"
)

func TestCleanSourcePasses(t *testing.T) {
	srcs := []string{
		`func add(a, b int) int { return a + b }`,
		`func countUp(n int) []int {
	out := []int{}
	for i := range n {
		out = append(out, i)
	}
	return out
}`,
		`func pick(m map[string]int, k string) int { return m[k] }`,
	}
	for _, src := range srcs {
		require.Nil(t, seccheck.Check(src), "source should be clean: %s", src)
	}
}

func TestIdentifiersContainingForbiddenWordsPass(t *testing.T) {
	srcs := []string{
		`func keep(important int) int { return important }`,
		`func tally(imports []int) int { return sum(imports) }`,
		`func count(opened int) int { return opened }`,
		`func osmosisRate(osmosis float64) float64 { return osmosis }`,
	}
	for _, src := range srcs {
		require.Nil(t, seccheck.Check(src), "source should be clean: %s", src)
	}
}

func TestBareImportSpellingIsStillNamed(t *testing.T) {
	v := seccheck.Check(`import os

func f() int { return 1 }
`)
	require.NotNil(t, v)
	require.Contains(t, v.Reason, `"os"`)
}

func TestImportIsNamedInViolation(t *testing.T) {
	v := seccheck.Check(`import "os"

func f() int { return 1 }
`)
	require.NotNil(t, v)
	require.Contains(t, v.Construct, "os")
	require.Contains(t, v.Reason, `"os"`)
}

func TestImportGroupIsRejected(t *testing.T) {
	v := seccheck.Check(`import (
	"net/http"
)

func f() int { return 1 }
`)
	require.NotNil(t, v)
	require.Contains(t, v.Reason, "not allowed")
}

func TestForbiddenCallNames(t *testing.T) {
	for _, name := range []string{"open", "eval", "exec", "getattr", "globals", "__import__"} {
		src := `func f(x string) int { return ` + name + `(x) }`
		v := seccheck.Check(src)
		require.NotNil(t, v, "call to %s must be rejected", name)
		require.Contains(t, v.Construct, name)
	}
}

func TestDangerousPackageAccess(t *testing.T) {
	v := seccheck.Check(`func f() string { return os.Getenv("HOME") }`)
	require.NotNil(t, v)
	require.Contains(t, v.Reason, "os")
}

func TestDunderAttributeAccess(t *testing.T) {
	v := seccheck.Check(`func f(x int) int { return x.__class__ }`)
	require.NotNil(t, v)
	require.Contains(t, v.Construct, "__class__")
}

func TestGoroutinesAreRejected(t *testing.T) {
	v := seccheck.Check(`func f() int {
	go f()
	return 1
}`)
	require.NotNil(t, v)
	require.Contains(t, v.Reason, "goroutine")
}

func TestDeferIsRejected(t *testing.T) {
	v := seccheck.Check(`func f() int {
	defer f()
	return 1
}`)
	require.NotNil(t, v)
}

func TestChannelOperationsAreRejected(t *testing.T) {
	v := seccheck.Check(`func f(c chan int) int { return <-c }`)
	require.NotNil(t, v)
}

func TestAttributeAccessIsRejectedStructurally(t *testing.T) {
	// not on the lexical package list, caught by the node allow-list
	v := seccheck.Check(`func f(x int) int { return strconv.Atoi }`)
	require.NotNil(t, v)
	require.Contains(t, v.Construct, "strconv")
}

func TestFuncLiteralsAreRejected(t *testing.T) {
	v := seccheck.Check(`func f() int {
	g := func() int { return 1 }
	return g()
}`)
	require.NotNil(t, v)
}

func TestUnparsableSourcePassesFilter(t *testing.T) {
	// syntax errors are not security violations; the definer reports them
	require.Nil(t, seccheck.Check(`func broken( {`))
}

func TestCheckRunsNoUserCode(t *testing.T) {
	// a clean check is repeatable and pure
	src := `func f(a int) int { return a }`
	require.Nil(t, seccheck.Check(src))
	require.Nil(t, seccheck.Check(src))
}
