package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestSettle_ReportsLeak(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	before := runtime.NumGoroutine()
	go func() {
		<-done
	}()

	n, ok := settle(before, 30*time.Millisecond)
	assert.False(t, ok)
	assert.Greater(t, n, before)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()
	go func() {
		time.Sleep(20 * time.Millisecond)
	}()
	WaitForGoroutines(t, before, time.Second)
}
