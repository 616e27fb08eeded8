package bounce

import (
	"time"

	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/terminal"
)

// Controls maps keyboard input to demo actions:
// q / Esc / Ctrl-C quit, f toggles the FPS overlay, m mutes sound.
type Controls struct {
	blip *Blip
}

// NewControls creates the input handler
func NewControls(blip *Blip) *Controls {
	return &Controls{blip: blip}
}

// Update drains pending keys once per rendered frame
func (c *Controls) Update(ctx *engine.Context, elapsed time.Duration) {
	for {
		key, ok := ctx.PollKey()
		if !ok {
			return
		}

		switch key.Code {
		case terminal.KeyEscape, terminal.KeyCtrlC:
			ctx.RequestStop()
		case terminal.KeyRune:
			switch key.Rune {
			case 'q', 'Q':
				ctx.RequestStop()
			case 'f', 'F':
				ctx.ToggleFPS()
			case 'm', 'M':
				if c.blip != nil {
					c.blip.ToggleMute()
				}
			}
		}
	}
}
