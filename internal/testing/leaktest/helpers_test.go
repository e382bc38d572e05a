package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures failures so failing checks can be asserted on
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	stop := make(chan struct{})
	defer close(stop)

	checker := NewGoroutineChecker(rec)
	go func() { <-stop }()
	checker.Check(0)

	assert.True(t, rec.failed)
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	stop := make(chan struct{})
	defer close(stop)

	checker := NewGoroutineChecker(rec)
	go func() { <-stop }()
	checker.Check(1)

	assert.False(t, rec.failed)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		go time.Sleep(50 * time.Millisecond)
	})
}

func TestMemoryChecker_ReleasedAllocation(t *testing.T) {
	CheckNoMemoryLeak(t, 1.0, func() {
		buf := make([]byte, 4<<20)
		buf[0] = 1
	})
}

func TestWaitForGoroutines_Timeout(t *testing.T) {
	rec := &recordingTB{TB: t}
	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	WaitForGoroutines(rec, 0, 20*time.Millisecond)

	assert.True(t, rec.failed)
}
