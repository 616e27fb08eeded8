package terminal

import "errors"

var (
	// ErrInvalidSize is returned when Init is given a negative dimension
	ErrInvalidSize = errors.New("terminal: invalid display size")

	// ErrUnsupported is returned when no usable display backend exists
	// on the host
	ErrUnsupported = errors.New("terminal: display not supported on this platform")

	// ErrDeviceUnavailable is returned when the OS refuses the output
	// handle during Init
	ErrDeviceUnavailable = errors.New("terminal: display device unavailable")

	// ErrNotInitialized guards buffer access and Flush before Init
	ErrNotInitialized = errors.New("terminal: console not initialized")

	// ErrResizeTimeout is returned when the size query keeps failing for
	// longer than the reconcile timeout
	ErrResizeTimeout = errors.New("terminal: timed out reading display size")
)
