package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/theme"
)

// handleInput processes keyboard input.
func (a *App) handleInput() {
	// Window resize propagation
	a.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}

	// Effect cycling
	if rl.IsKeyPressed(rl.KeyRight) {
		a.engine.CycleEffect()
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.engine.SetEffect(a.engine.Effect().Prev())
	}

	// Theme cycling
	if rl.IsKeyPressed(rl.KeyUp) {
		a.cycleTheme(1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		a.cycleTheme(-1)
	}

	// Speed control
	if rl.IsKeyPressed(rl.KeyEqual) && a.engine.Speed() < 4.0 {
		a.engine.SetSpeed(a.engine.Speed() + 0.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) && a.engine.Speed() > 0.25 {
		a.engine.SetSpeed(a.engine.Speed() - 0.25)
	}

	// Background and border toggles
	if rl.IsKeyPressed(rl.KeyT) {
		a.engine.SetBackgroundThick(!a.engine.BackgroundThick())
	}
	if rl.IsKeyPressed(rl.KeyB) {
		a.engine.SetBorder(!a.engine.BorderEnabled(), false, true)
	}

	// HUD toggle
	if rl.IsKeyPressed(rl.KeyH) {
		a.showHUD = !a.showHUD
	}
}

// cycleTheme steps through the preset list and reresolves the palette.
func (a *App) cycleTheme(dir int) {
	n := len(a.themeNames)
	a.themeIndex = (a.themeIndex + dir + n) % n
	t, err := theme.ByName(a.themeNames[a.themeIndex])
	if err != nil {
		return
	}
	a.engine.SetTheme(t)
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenW && h == a.screenH {
		return
	}
	a.screenW = w
	a.screenH = h

	if a.presenter != nil {
		a.presenter.Resize(w, h)
	}
}
