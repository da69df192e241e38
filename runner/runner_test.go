package runner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/runner"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
)

func define(t *testing.T, src, name string) (*sandbox.Env, *sandbox.Func) {
	t.Helper()
	env := sandbox.NewEnv()
	require.Nil(t, sandbox.Define(env, src))
	fn, ok := env.Lookup(name)
	require.True(t, ok)
	return env, fn
}

func TestRunSuccess(t *testing.T) {
	env, fn := define(t, `func add(a, b int) int { return a + b }`, "add")
	out := runner.Run(env, fn, []sandbox.Value{int64(2), int64(3)}, time.Second)
	success, ok := out.(outcome.Success)
	require.True(t, ok, "got %T", out)
	require.Equal(t, int64(5), success.Value)
	require.Empty(t, success.Printed)
}

func TestRunCapturesPrintedOutput(t *testing.T) {
	env, fn := define(t, `func report(a int) int {
	print("got", a)
	return a
}`, "report")
	out := runner.Run(env, fn, []sandbox.Value{int64(7)}, time.Second)
	success, ok := out.(outcome.Success)
	require.True(t, ok, "got %T", out)
	require.Equal(t, []string{"got 7"}, success.Printed)
}

func TestRunClearsSinkBetweenAttempts(t *testing.T) {
	env, fn := define(t, `func report(a int) int {
	print(a)
	return a
}`, "report")
	runner.Run(env, fn, []sandbox.Value{int64(1)}, time.Second)
	out := runner.Run(env, fn, []sandbox.Value{int64(2)}, time.Second)
	success, ok := out.(outcome.Success)
	require.True(t, ok, "got %T", out)
	require.Equal(t, []string{"2"}, success.Printed)
}

func TestRunRuntimeFailure(t *testing.T) {
	env, fn := define(t, `func div(a, b int) int { return a / b }`, "div")
	out := runner.Run(env, fn, []sandbox.Value{int64(1), int64(0)}, time.Second)
	failure, ok := out.(outcome.RuntimeFailure)
	require.True(t, ok, "got %T", out)
	require.Equal(t, outcome.KindArith, failure.Kind)
}

func TestRunTimeoutReturnsPromptly(t *testing.T) {
	env, fn := define(t, `func spin(n int) int { for { } }`, "spin")

	deadline := 100 * time.Millisecond
	start := time.Now()
	out := runner.Run(env, fn, []sandbox.Value{int64(1)}, deadline)
	elapsed := time.Since(start)

	timeout, ok := out.(outcome.Timeout)
	require.True(t, ok, "got %T", out)
	require.Equal(t, deadline, timeout.Deadline)
	// control must come back near the deadline, not after the worker
	// decides to stop
	require.Less(t, elapsed, deadline+500*time.Millisecond)
}

func TestRunTimeoutOnBusyLoop(t *testing.T) {
	env, fn := define(t, `func busy(n int) int {
	x := 0
	for i := 0; i < 1000000000; i++ {
		x += i
	}
	return x
}`, "busy")
	out := runner.Run(env, fn, []sandbox.Value{int64(1)}, 50*time.Millisecond)
	_, ok := out.(outcome.Timeout)
	require.True(t, ok, "got %T", out)
}

func TestRunQuickCallWellWithinDeadline(t *testing.T) {
	env, fn := define(t, `func id(x int) int { return x }`, "id")
	out := runner.Run(env, fn, []sandbox.Value{int64(42)}, 5*time.Second)
	success, ok := out.(outcome.Success)
	require.True(t, ok, "got %T", out)
	require.Equal(t, int64(42), success.Value)
}
