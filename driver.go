package tessella

import (
	"context"
	"math"
	"strconv"
	"time"
)

// State is the driver's lifecycle state.
type State int

const (
	// StateIdle means no frames are being scheduled.
	StateIdle State = iota
	// StateRunning means the frame loop is live.
	StateRunning
)

// String returns the state name for logs.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// DefaultRefreshInterval approximates a 60 Hz display loop.
const DefaultRefreshInterval = time.Second / 60

// Param is a discrete parameter-change event from the controller layer
// (control panel, MIDI bridge, whatever feeds the installation).
type Param struct {
	Name  string
	Value string
}

// Controller parameter names accepted by Driver.Apply.
const (
	ParamAnimationSpeed  = "animationSpeed"
	ParamWallpaperGroup  = "wallpaperGroup"
	ParamPatternType     = "patternType"
	ParamJitterAmount    = "jitterAmount"
	ParamRefreshInterval = "refreshInterval"
)

// Driver owns the frame loop. It schedules ticks while Running, hands
// each tick to its Renderer, and absorbs per-frame failures: a bad frame
// is logged and skipped, never fatal to the loop.
//
// Driver is single-writer like the Renderer it drives, with no internal
// locking. Callers driving Tick themselves make every call from one
// goroutine. Run blocks its caller, so while Run owns the loop the only
// mid-run control path is cancelling its context; call Apply and Stop
// before Run or after it returns, not concurrently with it.
type Driver struct {
	renderer *Renderer
	surface  Surface
	state    State
	interval time.Duration
	skipped  int
}

// NewDriver creates an idle driver for the renderer.
func NewDriver(r *Renderer) *Driver {
	return &Driver{
		renderer: r,
		interval: DefaultRefreshInterval,
	}
}

// State reports whether the driver is idle or running.
func (d *Driver) State() State { return d.state }

// Renderer returns the driven renderer.
func (d *Driver) Renderer() *Renderer { return d.renderer }

// SkippedFrames counts frames dropped to errors or panics.
func (d *Driver) SkippedFrames() int { return d.skipped }

// Start transitions Idle to Running and attaches the drawing surface.
// Starting an already-running driver only swaps the surface.
func (d *Driver) Start(s Surface) {
	d.surface = s
	if d.state == StateRunning {
		return
	}
	d.state = StateRunning
	Logger().Info("driver started",
		"group", d.renderer.Group(), "pattern", d.renderer.Pattern())
}

// Stop transitions Running to Idle. Cancellation is cooperative: an
// in-flight frame finishes, further ticks are not scheduled.
func (d *Driver) Stop() {
	if d.state == StateIdle {
		return
	}
	d.state = StateIdle
	Logger().Info("driver stopped", "skippedFrames", d.skipped)
}

// AttachSurface replaces the drawing surface, e.g. after a resize
// recreated the canvas. Safe while Running; takes effect next tick.
func (d *Driver) AttachSurface(s Surface) {
	d.surface = s
}

// Tick renders one frame for the given instant. Errors and panics are
// logged and counted as skipped frames; the caller's loop keeps going.
// The user-visible failure mode is a momentarily frozen frame, never a
// crash.
func (d *Driver) Tick(now time.Time) {
	if d.state != StateRunning {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			d.skipped++
			Logger().Warn("frame panicked, skipped", "panic", rec)
		}
	}()
	if err := d.renderer.RenderFrame(d.surface, now); err != nil {
		d.skipped++
		Logger().Warn("frame skipped", "err", err)
	}
}

// Run blocks, ticking at the refresh interval until the context is
// cancelled or the driver leaves the Running state. Start must have
// been called first. Cancelling the context is the way to end the loop
// from another goroutine; it stops the driver before returning.
func (d *Driver) Run(ctx context.Context) error {
	applied := d.interval
	ticker := time.NewTicker(applied)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			if d.state != StateRunning {
				return nil
			}
			d.Tick(now)
			if d.interval != applied {
				applied = d.interval
				ticker.Reset(applied)
			}
		}
	}
}

// Apply handles a controller parameter event. Invalid names or values
// are logged and rejected with an error; the previous value is always
// retained, so a misbehaving controller can never crash the driver.
func (d *Driver) Apply(p Param) error {
	switch p.Name {
	case ParamAnimationSpeed:
		speed, err := strconv.ParseFloat(p.Value, 64)
		// ParseFloat accepts "NaN" and "Inf"; a non-finite speed would
		// poison baseRotation for every later frame, so reject it here.
		if err != nil || !isFinite(speed) || speed <= 0 {
			return d.reject(p, err)
		}
		d.renderer.speed = speed

	case ParamWallpaperGroup:
		g, err := ParseGroup(p.Value)
		if err != nil {
			return d.reject(p, err)
		}
		if err := d.renderer.SetGroup(g); err != nil {
			return d.reject(p, err)
		}

	case ParamPatternType:
		pt, err := ParsePatternType(p.Value)
		if err != nil {
			return d.reject(p, err)
		}
		if err := d.renderer.SetPattern(pt); err != nil {
			return d.reject(p, err)
		}

	case ParamJitterAmount:
		jitter, err := strconv.ParseFloat(p.Value, 64)
		if err != nil || !isFinite(jitter) || jitter < 0 {
			return d.reject(p, err)
		}
		d.renderer.jitter = jitter

	case ParamRefreshInterval:
		ms, err := strconv.Atoi(p.Value)
		if err != nil || ms <= 0 {
			return d.reject(p, err)
		}
		d.interval = time.Duration(ms) * time.Millisecond

	default:
		return d.reject(p, nil)
	}

	Logger().Debug("parameter applied", "name", p.Name, "value", p.Value)
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (d *Driver) reject(p Param, cause error) error {
	Logger().Warn("parameter rejected, previous value retained",
		"name", p.Name, "value", p.Value, "err", cause)
	if cause != nil {
		return cause
	}
	return &ParamError{Param: p}
}

// ParamError reports a controller event the driver refused.
type ParamError struct {
	Param Param
}

func (e *ParamError) Error() string {
	return "tessella: invalid parameter " + e.Param.Name + "=" + e.Param.Value
}
