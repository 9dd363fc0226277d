// Package renderer presents the software framebuffer through raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/fb"
	"github.com/pthm-cable/flurry/pixel"
)

// Presenter streams a 16bpp buffer into a raylib texture and draws it
// stretched over the window with point sampling, so the dither pattern and
// particle edges stay crisp.
type Presenter struct {
	format pixel.Format

	texture    rl.Texture2D
	texW, texH int

	// Scratch RGBA conversion buffer, reused across frames.
	pixels []color.RGBA

	screenW, screenH float32
	initialized      bool
}

// NewPresenter creates a presenter decoding texels with the given format.
func NewPresenter(format pixel.Format, screenW, screenH int32) *Presenter {
	return &Presenter{
		format:  format,
		screenW: float32(screenW),
		screenH: float32(screenH),
	}
}

// Init allocates the GPU texture (must be called after the raylib window
// exists).
func (p *Presenter) Init(w, h int) {
	if p.initialized {
		return
	}

	p.texW = w
	p.texH = h

	img := rl.GenImageColor(w, h, rl.Black)
	p.texture = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(p.texture, rl.FilterPoint)
	rl.UnloadImage(img)

	p.pixels = make([]color.RGBA, w*h)
	p.initialized = true
}

// Resize updates window dimensions.
func (p *Presenter) Resize(w, h float32) {
	if w == p.screenW && h == p.screenH {
		return
	}
	p.screenW = w
	p.screenH = h
}

// Update decodes the packed framebuffer to RGBA and uploads it. The texture
// is recreated when the source dimensions change (window resize or upscale
// level change).
func (p *Presenter) Update(src *fb.Buffer) {
	if !p.initialized {
		p.Init(src.Width, src.Height)
	}
	if src.Width != p.texW || src.Height != p.texH {
		rl.UnloadTexture(p.texture)
		p.initialized = false
		p.Init(src.Width, src.Height)
	}

	for i, texel := range src.Pix {
		p.pixels[i] = p.format.ToRGBA(texel)
	}

	rl.UpdateTexture(p.texture, p.pixels)
}

// Draw renders the framebuffer texture stretched over the window.
func (p *Presenter) Draw() {
	if !p.initialized {
		return
	}

	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(p.texW), Height: float32(p.texH)}
	dstRect := rl.Rectangle{X: 0, Y: 0, Width: p.screenW, Height: p.screenH}

	rl.DrawTexturePro(p.texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (p *Presenter) Unload() {
	if !p.initialized {
		return
	}
	rl.UnloadTexture(p.texture)
	p.initialized = false
}
