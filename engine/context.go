package engine

import "github.com/lixenwraith/termgrid/terminal"

// Context is handed to game objects in every lifecycle hook. Collaborators
// reach the screen, input, and the stop handle only through it; there is no
// process-wide game accessor.
type Context struct {
	game *Game
}

// Console returns the display console for drawing
func (c *Context) Console() *terminal.Console {
	return c.game.console
}

// Size returns the current grid dimensions
func (c *Context) Size() (width, height int) {
	return c.game.console.Size()
}

// PollKey returns the next pending key without blocking
func (c *Context) PollKey() (terminal.Key, bool) {
	return c.game.console.PollKey()
}

// RequestStop asks the loop to unwind at the end of the current tick
func (c *Context) RequestStop() {
	c.game.RequestStop()
}

// ToggleFPS flips the frame-rate overlay
func (c *Context) ToggleFPS() {
	c.game.showFPS.Store(!c.game.showFPS.Load())
}

// FPS returns the last measured frame rate
func (c *Context) FPS() int {
	return int(c.game.fps.Load())
}
