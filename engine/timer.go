package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer fires a callback repeatedly on its own goroutine, passing the
// wall-clock time elapsed since the previous fire (not the nominal period)
// so callers can integrate with true elapsed time.
//
// With skipMissed, a timer overdue by more than one full period
// fast-forwards instead of queueing a backlog of catch-up fires; the fire
// after a stall then reports the whole stall as its elapsed time. Without
// it, missed fires are executed back to back so the long-run average rate
// stays accurate.
type Timer struct {
	period     time.Duration
	skipMissed bool
	fn         func(elapsed time.Duration)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTimer creates a stopped timer; fn runs on the timer's goroutine
func NewTimer(period time.Duration, skipMissed bool, fn func(elapsed time.Duration)) *Timer {
	return &Timer{
		period:     period,
		skipMissed: skipMissed,
		fn:         fn,
		stopChan:   make(chan struct{}),
	}
}

// Start begins firing. A Timer is single-shot: once stopped it cannot be
// started again.
func (t *Timer) Start() {
	if t.running.CompareAndSwap(false, true) {
		t.wg.Add(1)
		go t.loop()
	}
}

// Stop halts the timer and waits for an in-flight fire to finish;
// the callback does not run again after Stop returns
func (t *Timer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()
	t.running.Store(false)
}

func (t *Timer) loop() {
	defer t.wg.Done()

	last := time.Now()
	deadline := last.Add(t.period)
	timer := time.NewTimer(t.period)
	defer timer.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		t.fn(now.Sub(last))
		last = now

		deadline = deadline.Add(t.period)
		if t.skipMissed && time.Since(deadline) > t.period {
			// Drop the backlog accumulated during a stall
			deadline = time.Now().Add(t.period)
		}

		sleep := time.Until(deadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
