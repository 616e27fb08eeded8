package engine

import "time"

// Game objects declare capabilities by implementing any subset of these
// interfaces; hooks an object does not implement default to no-ops.

// Starter runs once when the loop starts, before any tick can fire
type Starter interface {
	Start(ctx *Context)
}

// Stopper runs once during teardown, after both timers have stopped
type Stopper interface {
	Stop(ctx *Context)
}

// Updater runs every render tick with the measured inter-frame duration;
// this is where objects draw into the grid
type Updater interface {
	Update(ctx *Context, elapsed time.Duration)
}

// FixedUpdater runs every logic tick with the measured inter-tick duration
type FixedUpdater interface {
	FixedUpdate(ctx *Context, elapsed time.Duration)
}

// Scene exclusively owns an insertion-ordered collection of game objects
// and broadcasts each lifecycle hook to its members in that order.
type Scene struct {
	objects []any
}

// NewScene creates a scene over the given objects
func NewScene(objects ...any) *Scene {
	return &Scene{objects: objects}
}

// Add appends an object; it receives hooks after all earlier members
func (s *Scene) Add(obj any) {
	s.objects = append(s.objects, obj)
}

// Start broadcasts the start hook
func (s *Scene) Start(ctx *Context) {
	for _, obj := range s.objects {
		if h, ok := obj.(Starter); ok {
			h.Start(ctx)
		}
	}
}

// Stop broadcasts the stop hook
func (s *Scene) Stop(ctx *Context) {
	for _, obj := range s.objects {
		if h, ok := obj.(Stopper); ok {
			h.Stop(ctx)
		}
	}
}

// Update broadcasts the render-phase hook
func (s *Scene) Update(ctx *Context, elapsed time.Duration) {
	for _, obj := range s.objects {
		if h, ok := obj.(Updater); ok {
			h.Update(ctx, elapsed)
		}
	}
}

// FixedUpdate broadcasts the logic-phase hook
func (s *Scene) FixedUpdate(ctx *Context, elapsed time.Duration) {
	for _, obj := range s.objects {
		if h, ok := obj.(FixedUpdater); ok {
			h.FixedUpdate(ctx, elapsed)
		}
	}
}
