package engine

import (
	"sync"
	"time"
)

// Scheduler owns the two loop phases: a fixed-rate logic timer and a
// capped-rate render timer, each firing from its own goroutine. Its mutex
// is the buffer lock: tick handlers and the start/stop transitions acquire
// it around every grid and display mutation, so the two phases never
// interleave their effects even though each runs on its own schedule.
type Scheduler struct {
	mu     sync.Mutex
	logic  *Timer
	render *Timer
}

// NewScheduler creates the timer pair. The logic timer never skips missed
// intervals so simulation time cannot drift; render skip is configurable
// (smoothness versus exact frame accounting).
func NewScheduler(logicPeriod, renderPeriod time.Duration, skipMissedRenderFrames bool, onLogic, onRender func(elapsed time.Duration)) *Scheduler {
	return &Scheduler{
		logic:  NewTimer(logicPeriod, false, onLogic),
		render: NewTimer(renderPeriod, skipMissedRenderFrames, onRender),
	}
}

// Start begins both timers
func (s *Scheduler) Start() {
	s.logic.Start()
	s.render.Start()
}

// Stop halts both timers, waiting for in-flight ticks to finish
func (s *Scheduler) Stop() {
	s.logic.Stop()
	s.render.Stop()
}

// Lock acquires the buffer lock
func (s *Scheduler) Lock() {
	s.mu.Lock()
}

// Unlock releases the buffer lock
func (s *Scheduler) Unlock() {
	s.mu.Unlock()
}
