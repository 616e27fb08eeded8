package engine

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/termgrid/parameter"
	"github.com/lixenwraith/termgrid/terminal"
)

// State is the loop lifecycle: Idle → Running → Stopping → Idle
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
)

// ErrAlreadyRunning is returned by Run when the loop is not idle
var ErrAlreadyRunning = errors.New("engine: loop already running")

// Options configures the game loop
type Options struct {
	Width                  int
	Height                 int
	LogicPeriod            time.Duration
	RenderPeriod           time.Duration
	SkipMissedRenderFrames bool
	ShowFPS                bool
	ReconcileTimeout       time.Duration
	Logger                 *log.Logger
}

func (o *Options) fillDefaults() {
	if o.Width == 0 {
		o.Width = parameter.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = parameter.DefaultHeight
	}
	if o.LogicPeriod <= 0 {
		o.LogicPeriod = parameter.DefaultLogicPeriod
	}
	if o.RenderPeriod <= 0 {
		o.RenderPeriod = parameter.DefaultRenderPeriod
	}
	if o.ReconcileTimeout <= 0 {
		o.ReconcileTimeout = parameter.ReconcileTimeout
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Game composes the console and the dual-rate scheduler into the blocking
// game loop. One Game drives one scene per run; Run may be called again
// after it returns.
type Game struct {
	opts    Options
	console *terminal.Console
	logger  *log.Logger

	state atomic.Int32

	// ctl guards stopChan between Run and RequestStop
	ctl      sync.Mutex
	stopChan chan struct{}

	sched *Scheduler
	scene *Scene
	ctx   *Context

	showFPS atomic.Bool
	fps     atomic.Int64

	// FPS window accounting, touched only by the render goroutine
	frameCount int
	fpsMark    time.Time
}

// NewGame creates a loop over the given console
func NewGame(console *terminal.Console, opts Options) *Game {
	opts.fillDefaults()
	g := &Game{
		opts:    opts,
		console: console,
		logger:  opts.Logger,
	}
	g.showFPS.Store(opts.ShowFPS)
	return g
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return State(g.state.Load())
}

// FPS returns the last measured frame rate
func (g *Game) FPS() int {
	return int(g.fps.Load())
}

// Run initializes the display, starts the scene and both timers, and
// blocks until RequestStop. Teardown always resets the display, even when
// the run fails or a panic escapes the loop body; the failure is returned
// rather than propagated so the terminal is never left in a raw state.
func (g *Game) Run(scene *Scene) (err error) {
	g.ctl.Lock()
	if !g.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		g.ctl.Unlock()
		return ErrAlreadyRunning
	}
	g.stopChan = make(chan struct{})
	g.ctl.Unlock()

	defer g.state.Store(int32(StateIdle))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine: run failed: %v", r)
		}
		g.console.Reset()
	}()

	if err := g.console.Init(g.opts.Width, g.opts.Height); err != nil {
		return err
	}

	g.scene = scene
	g.ctx = &Context{game: g}
	g.sched = NewScheduler(
		g.opts.LogicPeriod,
		g.opts.RenderPeriod,
		g.opts.SkipMissedRenderFrames,
		g.onLogicTick,
		g.onRenderTick,
	)
	g.frameCount = 0
	g.fpsMark = time.Now()

	// Scene start runs under the buffer lock before the timers exist,
	// so no tick can observe a partially started scene
	g.sched.Lock()
	scene.Start(g.ctx)
	g.sched.Unlock()
	g.sched.Start()

	<-g.stopChan
	g.state.Store(int32(StateStopping))

	g.sched.Stop()
	g.sched.Lock()
	scene.Stop(g.ctx)
	g.sched.Unlock()
	g.scene = nil
	return nil
}

// RequestStop unblocks Run and starts teardown. Idempotent, callable from
// any goroutine including tick handlers; a no-op outside a run. A tick in
// progress finishes before teardown proceeds.
func (g *Game) RequestStop() {
	g.ctl.Lock()
	defer g.ctl.Unlock()
	if State(g.state.Load()) != StateRunning || g.stopChan == nil {
		return
	}
	select {
	case <-g.stopChan:
	default:
		close(g.stopChan)
	}
}

// recoverTick turns a tick panic into a skipped tick
func (g *Game) recoverTick(phase string) {
	if r := recover(); r != nil {
		g.logger.Error("tick panicked, skipped", "phase", phase, "panic", r)
	}
}

func (g *Game) onLogicTick(elapsed time.Duration) {
	g.sched.Lock()
	defer g.sched.Unlock()
	defer g.recoverTick("logic")

	g.scene.FixedUpdate(g.ctx, elapsed)
}

func (g *Game) onRenderTick(elapsed time.Duration) {
	g.renderFrame(elapsed)
	g.accountFrame()
}

func (g *Game) renderFrame(elapsed time.Duration) {
	g.sched.Lock()
	defer g.sched.Unlock()
	defer g.recoverTick("render")

	if _, err := g.console.Reconcile(g.opts.ReconcileTimeout); err != nil {
		// Size read kept failing mid-resize; drop this frame and let the
		// next tick retry
		g.logger.Warn("size reconcile failed", "error", err)
		return
	}
	buf, err := g.console.Buffer()
	if err != nil {
		g.logger.Error("render tick without display", "error", err)
		return
	}

	buf.Clear(' ', terminal.DefaultFg, terminal.DefaultBg)
	g.scene.Update(g.ctx, elapsed)
	if g.showFPS.Load() {
		readout := fmt.Sprintf("FPS: %d", g.fps.Load())
		if err := g.console.WriteText(0, 0, readout, terminal.ColorYellow, terminal.DefaultBg); err != nil {
			g.logger.Error("fps overlay", "error", err)
		}
	}
	if err := g.console.Flush(); err != nil {
		g.logger.Error("flush failed", "error", err)
	}
}

// accountFrame runs outside the buffer lock; the measurement window never
// blocks the rendering critical section
func (g *Game) accountFrame() {
	g.frameCount++
	window := time.Since(g.fpsMark)
	if window < parameter.FPSWindow {
		return
	}
	fps := int64(g.frameCount) * 1000 / window.Milliseconds()
	g.fps.Store(fps)
	g.logger.Debug("fps", "value", fps, "frames", g.frameCount, "window_ms", window.Milliseconds())
	g.frameCount = 0
	g.fpsMark = time.Now()
}
