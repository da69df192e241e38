// Package runner executes a single callable under a hard wall-clock
// deadline, isolating the caller from hangs and crashes in submitted code.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
)

// Run executes fn(args) on a dedicated goroutine and blocks for at most
// deadline. The environment's output sink is cleared at the start of the
// attempt so printed output is attributable to this attempt alone.
//
// If the worker finishes in time the outcome is Success or RuntimeFailure.
// If the deadline elapses the outcome is Timeout and control returns
// immediately; the worker is abandoned, not killed. The interpreter polls
// cancellation at loop back-edges and call boundaries, so an abandoned
// worker normally unwinds shortly after. A worker that somehow ignores
// cancellation is a known gap of in-process isolation; process-based
// isolation with a hard kill is the remedy when that gap matters.
//
// Nothing the worker does can crash the calling process: interpreter
// failures arrive as classified RuntimeFailures and stray panics are
// recovered into RuntimeFailure with kind Other.
func Run(env *sandbox.Env, fn *sandbox.Func, args []sandbox.Value, deadline time.Duration) outcome.Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	env.ClearPrinted()

	results := make(chan outcome.Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- outcome.RuntimeFailure{
					Kind:   outcome.KindOther,
					Detail: "internal execution fault",
				}
			}
		}()

		value, err := sandbox.Call(ctx, fn, args)
		if err != nil {
			var failure *sandbox.Failure
			if errors.As(err, &failure) {
				results <- outcome.RuntimeFailure{Kind: failure.Kind, Detail: failure.Detail}
				return
			}
			results <- outcome.RuntimeFailure{Kind: outcome.KindOther, Detail: err.Error()}
			return
		}
		results <- outcome.Success{Value: value, Printed: env.Printed()}
	}()

	select {
	case out := <-results:
		// a worker that unwound because the deadline expired reports the
		// timeout, not the unwinding itself
		if rf, ok := out.(outcome.RuntimeFailure); ok &&
			ctx.Err() != nil && rf.Detail == "execution canceled" {
			return outcome.Timeout{Deadline: deadline}
		}
		return out
	case <-ctx.Done():
		return outcome.Timeout{Deadline: deadline}
	}
}
