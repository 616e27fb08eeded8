package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerFiresRepeatedly(t *testing.T) {
	var count atomic.Int32
	tm := NewTimer(10*time.Millisecond, false, func(time.Duration) {
		count.Add(1)
	})
	tm.Start()
	time.Sleep(200 * time.Millisecond)
	tm.Stop()

	got := count.Load()
	if got < 10 || got > 30 {
		t.Errorf("fire count = %d over 200ms at 10ms period, want roughly 20", got)
	}
}

func TestTimerReportsMeasuredElapsed(t *testing.T) {
	var mu sync.Mutex
	var elapsed []time.Duration
	start := time.Now()

	tm := NewTimer(10*time.Millisecond, false, func(d time.Duration) {
		mu.Lock()
		elapsed = append(elapsed, d)
		mu.Unlock()
	})
	tm.Start()
	time.Sleep(120 * time.Millisecond)
	tm.Stop()
	total := time.Since(start)

	mu.Lock()
	defer mu.Unlock()
	if len(elapsed) == 0 {
		t.Fatal("timer never fired")
	}
	var sum time.Duration
	for i, d := range elapsed {
		if d <= 0 {
			t.Errorf("fire %d reported non-positive elapsed %s", i, d)
		}
		sum += d
	}
	// Reported durations are wall clock, so they cannot exceed the span
	// of the test
	if sum > total+20*time.Millisecond {
		t.Errorf("elapsed sum %s exceeds test span %s", sum, total)
	}
}

func TestTimerStopIsFinal(t *testing.T) {
	var count atomic.Int32
	tm := NewTimer(5*time.Millisecond, false, func(time.Duration) {
		count.Add(1)
	})
	tm.Start()
	time.Sleep(30 * time.Millisecond)
	tm.Stop()
	tm.Stop() // idempotent

	snapshot := count.Load()
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != snapshot {
		t.Errorf("timer fired after Stop: %d -> %d", snapshot, got)
	}
}

// stallOnce makes the first callback invocation sleep, simulating a tick
// that blocks longer than several periods
type stallOnce struct {
	d    time.Duration
	once sync.Once
}

func (s *stallOnce) maybe() {
	s.once.Do(func() { time.Sleep(s.d) })
}

func TestTimerBacklogPreservedWithoutSkip(t *testing.T) {
	stall := &stallOnce{d: 150 * time.Millisecond}
	var count atomic.Int32
	var fastFires atomic.Int32

	tm := NewTimer(20*time.Millisecond, false, func(d time.Duration) {
		count.Add(1)
		if d < 2*time.Millisecond {
			fastFires.Add(1)
		}
		stall.maybe()
	})
	tm.Start()
	time.Sleep(600 * time.Millisecond)
	tm.Stop()

	// Long-run average rate must converge to elapsed/period despite the
	// stall: the missed fires execute back to back afterwards
	if got := count.Load(); got < 22 {
		t.Errorf("fire count = %d over 600ms at 20ms period, want >= 22", got)
	}
	if got := fastFires.Load(); got < 4 {
		t.Errorf("catch-up fires = %d, want >= 4 after a 150ms stall", got)
	}
}

func TestTimerSkipMissedFastForwards(t *testing.T) {
	stall := &stallOnce{d: 150 * time.Millisecond}
	var fastFires atomic.Int32
	var maxElapsed atomic.Int64

	tm := NewTimer(20*time.Millisecond, true, func(d time.Duration) {
		if d < 2*time.Millisecond {
			fastFires.Add(1)
		}
		for {
			prev := maxElapsed.Load()
			if int64(d) <= prev || maxElapsed.CompareAndSwap(prev, int64(d)) {
				break
			}
		}
		stall.maybe()
	})
	tm.Start()
	time.Sleep(600 * time.Millisecond)
	tm.Stop()

	// The stall produces at most one immediate fire, which reports the
	// whole stall as its elapsed time; no catch-up burst follows
	if got := fastFires.Load(); got > 1 {
		t.Errorf("catch-up fires = %d with skip enabled, want <= 1", got)
	}
	if got := time.Duration(maxElapsed.Load()); got < 140*time.Millisecond {
		t.Errorf("max reported elapsed = %s, want >= 140ms covering the stall", got)
	}
}

func TestTimerStartIsIdempotent(t *testing.T) {
	var count atomic.Int32
	tm := NewTimer(10*time.Millisecond, false, func(time.Duration) {
		count.Add(1)
	})
	tm.Start()
	tm.Start()
	time.Sleep(55 * time.Millisecond)
	tm.Stop()

	// A double Start must not double the rate
	if got := count.Load(); got > 10 {
		t.Errorf("fire count = %d over 55ms at 10ms period, want <= 10", got)
	}
}
