package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/termgrid/parameter"
)

// Console owns the off-screen buffer and the one bulk write per frame to
// the display device. It is not internally locked; the game loop serializes
// access through its buffer lock, and any other caller must do the same.
type Console struct {
	factory func() (Device, error)
	dev     Device
	buf     *Buffer
	logger  *log.Logger
}

// NewConsole creates a console backed by the host terminal.
// The device is acquired lazily in Init.
func NewConsole(logger *log.Logger) *Console {
	return &Console{
		factory: NewDevice,
		logger:  ensureLogger(logger),
	}
}

// NewConsoleWithDevice creates a console on an explicit device,
// used with simulation and test devices
func NewConsoleWithDevice(dev Device, logger *log.Logger) *Console {
	return &Console{
		factory: func() (Device, error) { return dev, nil },
		logger:  ensureLogger(logger),
	}
}

func ensureLogger(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Init acquires the display device, asks it to adopt the given dimensions,
// and allocates a fresh buffer matching the size the device reports.
// Calling Init again replaces the buffer; it never stacks state.
func (c *Console) Init(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if c.dev == nil {
		dev, err := c.factory()
		if err != nil {
			return err
		}
		if err := dev.Init(); err != nil {
			return err
		}
		c.dev = dev
	}
	if err := c.dev.SetSize(width, height); err != nil {
		c.logger.Debug("display refused resize", "width", width, "height", height, "error", err)
	}
	w, h, err := c.dev.Size()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	c.buf = NewBuffer(w, h)
	return nil
}

// Reset releases the display device and discards the buffer.
// Safe to call multiple times.
func (c *Console) Reset() {
	if c.dev != nil {
		c.dev.Fini()
		c.dev = nil
	}
	c.buf = nil
}

// Buffer returns the off-screen grid, or ErrNotInitialized before Init
func (c *Console) Buffer() (*Buffer, error) {
	if c.buf == nil {
		return nil, ErrNotInitialized
	}
	return c.buf, nil
}

// Size returns the current buffer dimensions
func (c *Console) Size() (int, int) {
	if c.buf == nil {
		return 0, 0
	}
	return c.buf.width, c.buf.height
}

// Flush performs the single bulk write of the whole buffer to the display.
// A device write failure drops the frame and is logged, not returned; the
// only error is ErrNotInitialized.
func (c *Console) Flush() error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	if err := c.dev.Flush(c.buf.cells, c.buf.width, c.buf.height); err != nil {
		c.logger.Warn("display write failed, frame dropped", "error", err)
	}
	return nil
}

// Reconcile polls the display size and adopts it into the buffer.
// Returns false immediately when the size is unchanged. Transient size-read
// failures are retried until timeout, then ErrResizeTimeout.
func (c *Console) Reconcile(timeout time.Duration) (bool, error) {
	if c.buf == nil {
		return false, ErrNotInitialized
	}
	deadline := time.Now().Add(timeout)
	for {
		w, h, err := c.dev.Size()
		if err == nil {
			if w == c.buf.width && h == c.buf.height {
				return false, nil
			}
			// Old contents are discarded; the render tick redraws
			// the full grid before the next flush anyway
			return true, c.Init(w, h)
		}
		if time.Now().After(deadline) {
			return false, fmt.Errorf("%w after %s: %v", ErrResizeTimeout, timeout, err)
		}
		time.Sleep(parameter.ResizeRetryDelay)
	}
}

// PollKey returns the next pending key without blocking
func (c *Console) PollKey() (Key, bool) {
	if c.dev == nil {
		return Key{}, false
	}
	return c.dev.PollKey()
}

// ===== GUARDED DRAWING API =====
// Thin wrappers over the buffer primitives that fail with
// ErrNotInitialized before Init instead of clipping silently

// WriteCell sets one cell if in bounds
func (c *Console) WriteCell(x, y int, ch rune, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.Set(x, y, ch, fg, bg)
	return nil
}

// DrawHLine writes count cells along +x starting at (left, top)
func (c *Console) DrawHLine(left, top int, ch rune, count int, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.HLine(left, top, ch, count, fg, bg)
	return nil
}

// DrawVLine writes count cells along +y starting at (left, top)
func (c *Console) DrawVLine(left, top int, ch rune, count int, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.VLine(left, top, ch, count, fg, bg)
	return nil
}

// FillRect writes a w×h block starting at (left, top)
func (c *Console) FillRect(left, top, w, h int, ch rune, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.Fill(left, top, w, h, ch, fg, bg)
	return nil
}

// WriteText writes a string left-to-right starting at (x, y)
func (c *Console) WriteText(x, y int, text string, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.Text(x, y, text, fg, bg)
	return nil
}

// DrawBox draws a bordered rectangle, optionally filled with spaces
func (c *Console) DrawBox(left, top, w, h int, filled bool, style BorderStyle, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.Box(left, top, w, h, filled, style, fg, bg)
	return nil
}

// Clear sets every cell to ch with the given colors
func (c *Console) Clear(ch rune, fg, bg Color) error {
	if c.buf == nil {
		return ErrNotInitialized
	}
	c.buf.Clear(ch, fg, bg)
	return nil
}
