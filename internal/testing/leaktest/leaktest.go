// Package leaktest checks that background workers wind down when they are stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	pollInterval   = 10 * time.Millisecond
	defaultTimeout = 2 * time.Second
)

// GoroutineChecker remembers the goroutine count at construction
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), timeout: defaultTimeout}
}

// Check polls until at most tolerance extra goroutines remain, failing the test on timeout.
// Stopped workers exit asynchronously, so a single sample would be flaky.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	for {
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
			return
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to where it was
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
