// Backdrop effect preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/effectpreview
package main

import (
	"fmt"
	"image/color"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/effects"
	"github.com/pthm-cable/flurry/engine"
	"github.com/pthm-cable/flurry/pixel"
	"github.com/pthm-cable/flurry/theme"
)

const (
	windowWidth  = 1100
	windowHeight = 680
	previewW     = 768
	previewH     = 432
	panelWidth   = windowWidth - previewW - 30
)

const (
	fbWidth  = 426
	fbHeight = 240
)

var backends = []string{"", "ps2", "gx", "psp1", "d3d11"}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Backdrop Effect Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	themeNames := theme.Names()
	themeIndex := 0
	backendIndex := 0
	effect := effects.EffectSnow
	speed := float32(1.0)
	bgThick := false
	borderThick := false
	shadow := true

	buildEngine := func() *engine.Engine {
		th, _ := theme.ByName(themeNames[themeIndex])
		return engine.New(engine.Options{
			Width:           fbWidth,
			Height:          fbHeight,
			Format:          pixel.FormatForBackend(backends[backendIndex]),
			Theme:           th,
			Effect:          effect,
			EffectSpeed:     speed,
			BackgroundThick: bgThick,
			BorderEnable:    true,
			BorderThick:     borderThick,
			Shadow:          shadow,
			Seed:            rand.Int63(),
		})
	}
	eng := buildEngine()
	format := pixel.FormatForBackend(backends[backendIndex])

	// Texture streamed from the software framebuffer
	img := rl.GenImageColor(fbWidth, fbHeight, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(texture, rl.FilterPoint)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	pixels := make([]color.RGBA, fbWidth*fbHeight)
	paused := false

	for !rl.WindowShouldClose() {
		if !paused {
			eng.RenderFrame(rl.GetFrameTime() * 1000.0)
		}

		frame := eng.Frame()
		for i, texel := range frame.Pix {
			pixels[i] = format.ToRGBA(texel)
		}
		rl.UpdateTexture(texture, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: fbWidth, Height: fbHeight},
			rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Format: %s   FB: %dx%d   %d fps",
			format, fbWidth, fbHeight, rl.GetFPS()), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)

		rl.DrawText("Backdrop Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Speed slider
		rl.DrawText("Speed (tick delta multiplier)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.1", "4.0",
			speed, 0.1, 4.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", speed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newSpeed != speed {
			speed = newSpeed
			eng.SetSpeed(speed)
		}
		panelY += 40

		// Effect cycling
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			fmt.Sprintf("Effect: %s", eng.Effect())) {
			effect = eng.Effect().Next()
			eng.SetEffect(effect)
		}
		panelY += 40

		// Theme cycling
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			fmt.Sprintf("Theme: %s", themeNames[themeIndex])) {
			themeIndex = (themeIndex + 1) % len(themeNames)
			th, _ := theme.ByName(themeNames[themeIndex])
			eng.SetTheme(th)
		}
		panelY += 40

		// Backend cycling (rebuilds the engine: the format is fixed per engine)
		backendLabel := backends[backendIndex]
		if backendLabel == "" {
			backendLabel = "default"
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			fmt.Sprintf("Backend: %s", backendLabel)) {
			backendIndex = (backendIndex + 1) % len(backends)
			format = pixel.FormatForBackend(backends[backendIndex])
			eng = buildEngine()
		}
		panelY += 50

		// Toggles
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			toggleText(bgThick, "BG: thick", "BG: fine")) {
			bgThick = !bgThick
			eng.SetBackgroundThick(bgThick)
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			toggleText(borderThick, "Border: thick", "Border: fine")) {
			borderThick = !borderThick
			eng.SetBorder(true, borderThick, shadow)
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			toggleText(shadow, "Shadow: on", "Shadow: off")) {
			shadow = !shadow
			eng.SetBorder(true, borderThick, shadow)
		}
		panelY += 50

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30},
			toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30}, "Reseed") {
			eng = buildEngine()
		}

		rl.EndDrawing()
	}
}

func toggleText(state bool, ifTrue, ifFalse string) string {
	if state {
		return ifTrue
	}
	return ifFalse
}
