package engine

import (
	"github.com/pthm-cable/flurry/fb"
	"github.com/pthm-cable/flurry/pixel"
)

// Thumbnail is a decoded image packed down to the framebuffer encoding,
// ready to composite into a frame.
type Thumbnail struct {
	buf *fb.Buffer
}

// Width returns the packed thumbnail width.
func (t *Thumbnail) Width() int { return t.buf.Width }

// Height returns the packed thumbnail height.
func (t *Thumbnail) Height() int { return t.buf.Height }

// ProcessThumbnail downscales src to fit within maxW x maxH (nearest
// neighbour, aspect preserved) and converts every texel to the engine's
// packed pixel format.
func (e *Engine) ProcessThumbnail(src *pixel.Image, maxW, maxH int) *Thumbnail {
	img := pixel.Downscale(src, maxW, maxH)

	buf := fb.New(img.Width, img.Height)
	for i, argb := range img.Pix {
		buf.Pix[i] = e.format.FromARGB(argb)
	}
	return &Thumbnail{buf: buf}
}

// ComposeThumbnail blits a processed thumbnail into the current frame with
// its top-left corner at (x, y), clipped against the frame.
func (e *Engine) ComposeThumbnail(t *Thumbnail, x, y int) {
	if t == nil {
		return
	}
	fb.Blit(e.frame, t.buf, x, y)
}
