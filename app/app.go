// Package app wires the backdrop engine, presenter and telemetry into the
// interactive application loop.
package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/effects"
	"github.com/pthm-cable/flurry/engine"
	"github.com/pthm-cable/flurry/pixel"
	"github.com/pthm-cable/flurry/renderer"
	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/theme"
)

// headlessDeltaMs is the fixed tick used without a window; headless runs
// step as if vsynced at 60Hz.
const headlessDeltaMs = (1.0 / 60.0) * 1000.0

// Options configures application startup.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
	Backend   string // overrides config pixel backend when non-empty
	Effect    string // overrides config effect when non-empty
}

// App owns the engine and everything around it for one run.
type App struct {
	engine    *engine.Engine
	presenter *renderer.Presenter
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	themeNames []string
	themeIndex int

	frame          int64
	reportInterval int64
	logStats       bool
	paused         bool
	showHUD        bool

	screenW, screenH float32
}

// New builds the application from the loaded config and options.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	backend := cfg.Pixel.Backend
	if opts.Backend != "" {
		backend = opts.Backend
	}
	format := pixel.FormatForBackend(backend)

	themeName := cfg.Theme.Name
	if themeName == "" {
		themeName = theme.DefaultName
	}
	th, err := theme.ByName(themeName)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}

	effectName := cfg.Effect.Type
	if opts.Effect != "" {
		effectName = opts.Effect
	}
	effect, err := effects.ParseEffect(effectName)
	if err != nil {
		return nil, fmt.Errorf("selecting effect: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	a := &App{
		engine: engine.New(engine.Options{
			Width:           cfg.Framebuffer.Width,
			Height:          cfg.Framebuffer.Height,
			Format:          format,
			Theme:           th,
			Effect:          effect,
			EffectSpeed:     float32(cfg.Effect.Speed),
			BackgroundThick: cfg.Background.Thick,
			BorderEnable:    cfg.Border.Enable,
			BorderThick:     cfg.Border.Thick,
			Shadow:          cfg.Border.Shadow,
			UpscaleLevel:    cfg.Upscale.Level,
			Seed:            opts.Seed,
		}),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:         output,
		themeNames:     theme.Names(),
		reportInterval: int64(cfg.Telemetry.ReportInterval),
		logStats:       opts.LogStats,
		showHUD:        true,
		screenW:        float32(cfg.Screen.Width),
		screenH:        float32(cfg.Screen.Height),
	}

	for i, name := range a.themeNames {
		if name == themeName {
			a.themeIndex = i
			break
		}
	}

	if !opts.Headless {
		a.presenter = renderer.NewPresenter(format, int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	}

	slog.Info("engine ready",
		"format", format.String(),
		"effect", effect.String(),
		"theme", themeName,
		"fb_width", cfg.Framebuffer.Width,
		"fb_height", cfg.Framebuffer.Height,
	)

	return a, nil
}

// Frame returns the number of frames rendered so far.
func (a *App) Frame() int64 {
	return a.frame
}

// Update advances one interactive frame: input, simulation, texture upload.
func (a *App) Update() {
	a.handleInput()

	a.perf.StartFrame()

	deltaMs := rl.GetFrameTime() * 1000.0
	if deltaMs <= 0 {
		deltaMs = headlessDeltaMs
	}

	a.perf.StartPhase(telemetry.PhaseBackground)
	a.engine.BeginFrame()

	a.perf.StartPhase(telemetry.PhaseSimulate)
	if !a.paused {
		a.engine.Simulate(deltaMs)
	}

	a.perf.StartPhase(telemetry.PhaseConvert)
	out := a.engine.Output(int(a.screenW), int(a.screenH))

	a.perf.StartPhase(telemetry.PhasePresent)
	a.presenter.Update(out)

	a.perf.EndFrame()
	a.frame++
	a.report()
}

// Draw presents the current frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.presenter.Draw()

	if a.showHUD {
		a.drawHUD()
	}

	rl.EndDrawing()
}

// UpdateHeadless advances one frame without raylib, at a fixed 60Hz tick.
func (a *App) UpdateHeadless() {
	a.perf.StartFrame()

	a.perf.StartPhase(telemetry.PhaseBackground)
	a.engine.BeginFrame()

	a.perf.StartPhase(telemetry.PhaseSimulate)
	a.engine.Simulate(headlessDeltaMs)

	a.perf.EndFrame()
	a.frame++
	a.report()
}

// report logs and persists window aggregates at the configured interval.
func (a *App) report() {
	if a.frame%a.reportInterval != 0 {
		return
	}
	stats := a.perf.Stats()
	if a.logStats {
		slog.Info("frame stats", "perf", stats)
	}
	if err := a.output.WritePerf(stats.ToCSV(a.frame)); err != nil {
		slog.Error("failed to write perf csv", "error", err)
	}
}

func (a *App) drawHUD() {
	label := fmt.Sprintf("%s / %s  speed %.2fx", a.engine.Effect(), a.themeNames[a.themeIndex], a.engine.Speed())
	if a.paused {
		label += "  [paused]"
	}
	rl.DrawText(label, 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 10, 34, 20, rl.Gray)
}

// Unload releases resources and flushes outputs.
func (a *App) Unload() {
	if a.presenter != nil {
		a.presenter.Unload()
	}
	if err := a.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
