// Package engine ties the framebuffer, the particle simulator and the theme
// palette into a single render context. All state lives on the Engine and
// is passed explicitly, so two engines can coexist and tests need no
// setup/teardown.
package engine

import (
	"math/rand"

	"github.com/pthm-cable/flurry/effects"
	"github.com/pthm-cable/flurry/fb"
	"github.com/pthm-cable/flurry/pixel"
	"github.com/pthm-cable/flurry/theme"
)

// UpscaleAuto selects the smallest integer multiple of the framebuffer that
// covers the viewport.
const UpscaleAuto = -1

// Options configures a new Engine.
type Options struct {
	Width  int // framebuffer width
	Height int // framebuffer height

	Format pixel.Format
	Theme  theme.Theme

	Effect      effects.Effect
	EffectSpeed float32

	BackgroundThick bool
	BorderEnable    bool
	BorderThick     bool
	Shadow          bool

	// UpscaleLevel: 0 = off, UpscaleAuto, or a fixed integer multiple.
	UpscaleLevel int

	Seed int64
}

// Engine owns the frame, background-cache and upscale buffers plus the
// simulator and resolved palette. Single-threaded: the host render loop is
// the only caller.
type Engine struct {
	format  pixel.Format
	theme   theme.Theme
	palette theme.Palette

	frame      *fb.Buffer
	background *fb.Buffer
	upscale    *fb.Buffer

	sim *effects.Simulator

	backgroundThick bool
	borderEnable    bool
	borderThick     bool
	shadow          bool
	upscaleLevel    int
}

// New builds an engine, seeds the particle pool and caches the background.
func New(opts Options) *Engine {
	rng := rand.New(rand.NewSource(opts.Seed))

	e := &Engine{
		format:          opts.Format,
		theme:           opts.Theme,
		palette:         opts.Theme.Resolve(opts.Format),
		frame:           fb.New(opts.Width, opts.Height),
		background:      fb.New(opts.Width, opts.Height),
		upscale:         &fb.Buffer{},
		sim:             effects.NewSimulator(rng),
		backgroundThick: opts.BackgroundThick,
		borderEnable:    opts.BorderEnable,
		borderThick:     opts.BorderThick,
		shadow:          opts.Shadow,
		upscaleLevel:    opts.UpscaleLevel,
	}
	if opts.EffectSpeed > 0 {
		e.sim.SpeedMultiplier = opts.EffectSpeed
	}

	e.sim.Init(opts.Effect, opts.Width, opts.Height)
	e.cacheBackground()
	return e
}

// Frame returns the current framebuffer.
func (e *Engine) Frame() *fb.Buffer {
	return e.frame
}

// Format returns the packed pixel encoding in effect.
func (e *Engine) Format() pixel.Format {
	return e.format
}

// Palette returns the resolved theme palette.
func (e *Engine) Palette() theme.Palette {
	return e.palette
}

// Effect returns the active particle effect.
func (e *Engine) Effect() effects.Effect {
	return e.sim.Effect()
}

// SetEffect switches the particle effect and reseeds the pool.
func (e *Engine) SetEffect(effect effects.Effect) {
	e.sim.Init(effect, e.frame.Width, e.frame.Height)
}

// CycleEffect advances to the next effect, wrapping past the last.
func (e *Engine) CycleEffect() {
	e.SetEffect(e.sim.Effect().Next())
}

// SetTheme swaps the palette and repaints the cached background.
func (e *Engine) SetTheme(t theme.Theme) {
	e.theme = t
	e.palette = t.Resolve(e.format)
	e.cacheBackground()
}

// SetSpeed updates the simulation speed multiplier.
func (e *Engine) SetSpeed(mult float32) {
	e.sim.SpeedMultiplier = mult
}

// Speed returns the simulation speed multiplier.
func (e *Engine) Speed() float32 {
	return e.sim.SpeedMultiplier
}

// SetBorder reconfigures the border and repaints the cached background.
func (e *Engine) SetBorder(enable, thick, shadow bool) {
	e.borderEnable = enable
	e.borderThick = thick
	e.shadow = shadow
	e.cacheBackground()
}

// SetBackgroundThick toggles the 2x2 background dither and repaints.
func (e *Engine) SetBackgroundThick(thick bool) {
	e.backgroundThick = thick
	e.cacheBackground()
}

// BorderEnabled reports whether the border is drawn.
func (e *Engine) BorderEnabled() bool {
	return e.borderEnable
}

// BackgroundThick reports whether the background dither is thick.
func (e *Engine) BackgroundThick() bool {
	return e.backgroundThick
}

// Resize reallocates the buffers for new framebuffer dimensions, reseeds the
// particle pool (coordinate ranges are tied to buffer size) and repaints the
// cached background.
func (e *Engine) Resize(w, h int) {
	if w == e.frame.Width && h == e.frame.Height {
		return
	}
	e.frame.Resize(w, h)
	e.background.Resize(w, h)
	e.sim.Init(e.sim.Effect(), w, h)
	e.cacheBackground()
}

// BeginFrame resets the frame to the cached background with one bulk copy.
func (e *Engine) BeginFrame() {
	e.frame.CopyFrom(e.background)
}

// Simulate runs the combined particle update+draw pass for one tick and
// redraws the border above the particles when enabled.
func (e *Engine) Simulate(deltaMs float32) {
	e.sim.Step(e.frame, deltaMs, e.palette.Particle)
	if e.borderEnable {
		e.renderBorder(e.frame)
	}
}

// RenderFrame produces one complete frame: background, particles, border.
func (e *Engine) RenderFrame(deltaMs float32) {
	e.BeginFrame()
	e.Simulate(deltaMs)
}

// Output returns the buffer to present for a viewport of the given size:
// either the frame itself, or a nearest-neighbour upscale of it when an
// upscale level is configured and the viewport is larger than the frame.
func (e *Engine) Output(viewportW, viewportH int) *fb.Buffer {
	if e.upscaleLevel == 0 {
		return e.frame
	}
	fbW := e.frame.Width
	fbH := e.frame.Height
	if viewportW <= fbW && viewportH <= fbH {
		return e.frame
	}

	var outW, outH int
	if e.upscaleLevel == UpscaleAuto {
		outW = (viewportW/fbW + 1) * fbW
		outH = (viewportH/fbH + 1) * fbH
	} else {
		outW = e.upscaleLevel * fbW
		outH = e.upscaleLevel * fbH
	}

	e.upscale.Resize(outW, outH)
	fb.ScaleNearest(e.upscale, e.frame)
	return e.upscale
}
