package parameter

import "time"

// Display Defaults
const (
	// DefaultWidth and DefaultHeight match the classic 80x25 console
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Loop Timing
const (
	// DefaultLogicPeriod is the fixed simulation tick interval
	DefaultLogicPeriod = 50 * time.Millisecond

	// DefaultRenderPeriod caps the frame rate at 50 FPS
	DefaultRenderPeriod = 20 * time.Millisecond

	// FPSWindow is the wall-clock span over which frames are counted
	// before the FPS readout is recomputed
	FPSWindow = 250 * time.Millisecond
)

// Resize Reconciliation
const (
	// ReconcileTimeout bounds the size-read retry loop during a live resize
	ReconcileTimeout = 1000 * time.Millisecond

	// ResizeRetryDelay between size-read attempts while the host window
	// is mid-resize
	ResizeRetryDelay = 2 * time.Millisecond
)
