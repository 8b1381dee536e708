package timer

import (
	"testing"
	"time"
)

const testTick = 10 * time.Millisecond

func testOptions() Options {
	return Options{TickInterval: testTick}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}
