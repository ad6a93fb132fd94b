package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"shapes/hal"
	"shapes/internal/config"
	"shapes/internal/hud"
	"shapes/softgl"
	"shapes/xform"
)

var (
	// ErrSetup wraps failures before the first frame: surface, geometry upload,
	// program compile. Fatal.
	ErrSetup = errors.New("setup failed")

	// ErrRender wraps failures inside the loop: frame acquire, draw, present.
	// Fatal; there is no retry.
	ErrRender = errors.New("render failed")
)

// State is the driver's lifecycle state.
type State uint8

const (
	StateRunning State = iota
	StateShuttingDown
)

func (s State) String() string {
	if s == StateShuttingDown {
		return "shutting-down"
	}
	return "running"
}

// Stats counts what the loop has done.
type Stats struct {
	Frames uint64
	Wraps  uint64
}

// Options tunes a Driver.
type Options struct {
	// Interval is the time from one frame's present to the next deadline.
	// Zero means config.DefaultFrameInterval.
	Interval time.Duration

	// HUD draws the variant name, phase and frame counter over each frame.
	HUD bool

	// Now is the clock used for deadlines. Nil means time.Now.
	Now func() time.Time
}

// Driver is the frame loop. It owns the phase, the frame deadline and the
// surface; nothing else mutates them. It runs on a single goroutine.
type Driver struct {
	dev     *softgl.Device
	variant Variant
	opts    Options

	phase    Phase
	state    State
	deadline time.Time
	stats    Stats

	proj    *xform.Mat4
	surface hal.Surface
	geom    softgl.GeometryHandle
	prog    softgl.ProgramHandle
}

// NewDriver creates a driver drawing v through dev.
func NewDriver(dev *softgl.Device, v Variant, opts Options) *Driver {
	if opts.Interval <= 0 {
		opts.Interval = config.DefaultFrameInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		dev:     dev,
		variant: v,
		opts:    opts,
		proj:    v.Projection(),
		geom:    -1,
		prog:    -1,
	}
}

func (d *Driver) Phase() float64 { return d.phase.T() }
func (d *Driver) State() State   { return d.state }
func (d *Driver) Stats() Stats   { return d.stats }

// setup creates the surface and uploads everything the loop needs. It runs
// once; nothing is recreated per frame.
func (d *Driver) setup() error {
	v := d.variant
	if v.Geometry == nil {
		return fmt.Errorf("variant %q has no geometry", v.Name)
	}
	s, err := d.dev.CreateSurface(v.Title, v.Pos, v.Size)
	if err != nil {
		return err
	}
	d.surface = s

	if d.geom, err = d.dev.UploadGeometry(v.Geometry()); err != nil {
		return err
	}
	src, err := v.Rule.Source()
	if err != nil {
		return err
	}
	if d.prog, err = d.dev.CompileShader(src); err != nil {
		return err
	}
	return nil
}

// Run sets up and drives frames until a close request is observed. A
// cancelled ctx counts as a close request. The returned error wraps ErrSetup
// or ErrRender.
func (d *Driver) Run(ctx context.Context) (err error) {
	if err := d.setup(); err != nil {
		if d.surface != nil {
			d.surface.Close()
		}
		d.state = StateShuttingDown
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	defer func() {
		if cerr := d.surface.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log := Logger().With("variant", d.variant.Name)
	log.Info("render loop started", "rule", d.variant.Rule.String(), "scale", d.variant.Scale, "interval", d.opts.Interval)

	for d.state == StateRunning {
		if err := d.Tick(); err != nil {
			d.state = StateShuttingDown
			return fmt.Errorf("%w: frame %d: %w", ErrRender, d.stats.Frames+1, err)
		}
		d.deadline = d.opts.Now().Add(d.opts.Interval)
		d.wait(ctx)
	}

	log.Info("render loop stopped", "frames", d.stats.Frames, "wraps", d.stats.Wraps)
	return nil
}

// wait blocks until the deadline or a close request. Other events are ignored
// and the wait resumes against the same deadline.
func (d *Driver) wait(ctx context.Context) {
	for {
		switch ev := d.surface.WaitEvent(ctx, d.deadline); ev {
		case hal.EventNone:
			return
		case hal.EventCloseRequested:
			Logger().Debug("close requested", "frame", d.stats.Frames)
			d.state = StateShuttingDown
			return
		default:
			Logger().Debug("event ignored", "event", ev.String())
		}
	}
}

// Tick advances the phase, composes the transform and draws one frame.
func (d *Driver) Tick() error {
	if d.phase.Advance() {
		d.stats.Wraps++
	}
	set := xform.Compose(float32(d.phase.T()), d.variant.Scale, d.proj)

	f, err := d.dev.BeginFrame(d.surface)
	if err != nil {
		return err
	}
	f.Clear(d.variant.Clear)
	err = f.Draw(d.geom, d.prog, softgl.Uniforms{Transform: set, Color: d.variant.Color})
	if err != nil {
		return err
	}
	if d.opts.HUD {
		hud.Draw(d.surface.Framebuffer(), 6, 4, color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF},
			d.variant.Name+" "+d.variant.Rule.String(),
			fmt.Sprintf("t=%.2f frame=%d", d.phase.T(), d.stats.Frames+1),
		)
	}
	if err := f.Present(); err != nil {
		return err
	}
	d.stats.Frames++
	return nil
}
