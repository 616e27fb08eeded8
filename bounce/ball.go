package bounce

import (
	"math"
	"time"

	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/parameter"
	"github.com/lixenwraith/termgrid/terminal"
)

// Ball is a single glyph bouncing inside a bordered court.
type Ball struct {
	x, y   float64
	vx, vy float64
	blip   *Blip
}

// NewBall creates a ball that plays blip on each wall hit
func NewBall(blip *Blip) *Ball {
	return &Ball{
		vx:   parameter.BallSpeedX,
		vy:   parameter.BallSpeedY,
		blip: blip,
	}
}

// Start centers the ball in the current court
func (b *Ball) Start(ctx *engine.Context) {
	w, h := ctx.Size()
	b.x = float64(w) / 2
	b.y = float64(h) / 2
}

// FixedUpdate advances the ball by one physics step
func (b *Ball) FixedUpdate(ctx *engine.Context, dt time.Duration) {
	w, h := ctx.Size()

	var bounced bool
	b.x, b.y, b.vx, b.vy, bounced = step(b.x, b.y, b.vx, b.vy, dt.Seconds(), w, h)
	if bounced && b.blip != nil {
		b.blip.Play()
	}
}

// Update draws the court border and the ball
func (b *Ball) Update(ctx *engine.Context, elapsed time.Duration) {
	con := ctx.Console()
	w, h := ctx.Size()

	con.DrawBox(0, 0, w, h, false, terminal.BorderDouble, terminal.ColorBrightCyan, terminal.DefaultBg)
	con.WriteCell(int(math.Round(b.x)), int(math.Round(b.y)), '●', terminal.ColorYellow, terminal.DefaultBg)
}

// step advances one physics tick inside the court interior.
// The border occupies the outermost cells, so the ball lives in
// [1, w-2] x [1, h-2]. Velocity reflects on contact; position is
// clamped so a large dt cannot tunnel through a wall.
func step(x, y, vx, vy, dt float64, w, h int) (nx, ny, nvx, nvy float64, bounced bool) {
	nx = x + vx*dt
	ny = y + vy*dt
	nvx, nvy = vx, vy

	minX, maxX := 1.0, float64(w-2)
	minY, maxY := 1.0, float64(h-2)

	// Degenerate court: pin to center, no bouncing
	if maxX < minX {
		nx = float64(w) / 2
		nvx = vx
	} else if nx < minX {
		nx = minX
		nvx = -vx
		bounced = true
	} else if nx > maxX {
		nx = maxX
		nvx = -vx
		bounced = true
	}

	if maxY < minY {
		ny = float64(h) / 2
		nvy = vy
	} else if ny < minY {
		ny = minY
		nvy = -vy
		bounced = true
	} else if ny > maxY {
		ny = maxY
		nvy = -vy
		bounced = true
	}

	return nx, ny, nvx, nvy, bounced
}
