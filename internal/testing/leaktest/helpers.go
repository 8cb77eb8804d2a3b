// Package leaktest holds goroutine leak checks for packages that start
// background workers, such as live subscriptions and SSE streams.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = time.Second

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before  int
	t       testing.TB
	timeout time.Duration
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		t:       t,
		timeout: DefaultSettleTimeout,
	}
}

// WithTimeout overrides how long Check waits for goroutines to settle
func (g *GoroutineChecker) WithTimeout(timeout time.Duration) *GoroutineChecker {
	g.timeout = timeout
	return g
}

// Check polls until the goroutine count is within tolerance of the baseline
// or the settle timeout expires.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak is a convenience function for simple leak checks
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
