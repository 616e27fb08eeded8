package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// tcellDevice implements Device on a tcell.Screen.
// SetContent writes go into tcell's internal cell buffer; the single
// Show call per Flush is the one bulk transfer to the terminal.
type tcellDevice struct {
	screen tcell.Screen
}

// NewDevice creates the host terminal device
func NewDevice() (Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &tcellDevice{screen: screen}, nil
}

// NewDeviceFromScreen wraps an existing tcell screen, used with
// simulation screens in tests
func NewDeviceFromScreen(screen tcell.Screen) Device {
	return &tcellDevice{screen: screen}
}

func (d *tcellDevice) Init() error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	d.screen.HideCursor()
	return nil
}

func (d *tcellDevice) Fini() {
	d.screen.Fini()
}

func (d *tcellDevice) Size() (int, int, error) {
	w, h := d.screen.Size()
	return w, h, nil
}

func (d *tcellDevice) SetSize(width, height int) error {
	// Honored by simulation screens and terminals that accept the
	// resize escape; others keep their size and Size() reports it
	d.screen.SetSize(width, height)
	return nil
}

func (d *tcellDevice) Flush(cells []Cell, width, height int) error {
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, cell := range row {
			style := tcell.StyleDefault.
				Foreground(cell.Fg.Tcell()).
				Background(cell.Bg.Tcell())
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

func (d *tcellDevice) PollKey() (Key, bool) {
	for d.screen.HasPendingEvent() {
		ev := d.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			// Resize events are handled by size reconciliation
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape:
			return Key{Code: KeyEscape}, true
		case tcell.KeyEnter:
			return Key{Code: KeyEnter}, true
		case tcell.KeyCtrlC:
			return Key{Code: KeyCtrlC}, true
		case tcell.KeyRune:
			return Key{Code: KeyRune, Rune: key.Rune()}, true
		}
	}
	return Key{}, false
}
