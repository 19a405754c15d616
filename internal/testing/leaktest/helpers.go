// Package leaktest wraps goleak for tests that need a leak check scoped to a
// block of code instead of the whole package.
package leaktest

import (
	"runtime"
	"testing"

	"go.uber.org/goleak"
)

// GoroutineChecker detects goroutines started after it was created that are still running
type GoroutineChecker struct {
	t      testing.TB
	before int
	opts   []goleak.Option
}

// NewGoroutineChecker snapshots the running goroutines. Extra options are passed to goleak.
func NewGoroutineChecker(t testing.TB, opts ...goleak.Option) *GoroutineChecker {
	t.Helper()

	return &GoroutineChecker{
		t:      t,
		before: runtime.NumGoroutine(),
		opts:   append([]goleak.Option{goleak.IgnoreCurrent()}, opts...),
	}
}

// Check fails the test if new goroutines outlive the checked block.
// tolerance allows that many stragglers, e.g. connection pool health checks.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	err := goleak.Find(g.opts...)
	if err == nil {
		return
	}
	if tolerance > 0 && runtime.NumGoroutine()-g.before <= tolerance {
		return
	}
	g.t.Errorf("goroutine leak (tolerance=%d): %v", tolerance, err)
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
