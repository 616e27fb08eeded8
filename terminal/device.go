package terminal

// KeyCode identifies non-printable keys the demo layer cares about
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEscape
	KeyEnter
	KeyCtrlC
)

// Key is a decoded keyboard event
type Key struct {
	Code KeyCode
	Rune rune
}

// Device abstracts the physical display surface.
// Implementations must provide one bulk transfer of the whole cell array
// per Flush call; per-cell device writes are not an acceptable substitute.
type Device interface {
	// Init acquires the display surface
	Init() error

	// Fini releases the display surface. Safe to call multiple times
	Fini()

	// Size returns current display dimensions. May transiently fail
	// while the host window is being resized
	Size() (width, height int, err error)

	// SetSize asks the display to adopt the given dimensions. Hosts that
	// cannot resize keep their current size; callers must re-query Size
	SetSize(width, height int) error

	// Flush writes the cell array to the display in one operation,
	// covering the full rectangle (0,0)-(width-1,height-1).
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// PollKey returns the next pending key without blocking;
	// false when no input is available
	PollKey() (Key, bool)
}
