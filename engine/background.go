package engine

import "github.com/pthm-cable/flurry/fb"

// cacheBackground repaints the background buffer: the full-screen checker
// pattern plus the border. RenderFrame starts every frame from this cache
// with a single bulk copy instead of re-rasterizing the pattern.
func (e *Engine) cacheBackground() {
	bg := e.background
	fb.FillRect(bg, 0, 0, bg.Width, bg.Height,
		e.palette.BgDark, e.palette.BgLight, e.backgroundThick)

	if e.borderEnable {
		e.renderBorder(bg)
	}
}

// renderBorder draws the four dithered border strips and, when enabled, the
// 1px drop-shadow lines along the inner and outer edges.
func (e *Engine) renderBorder(dst *fb.Buffer) {
	w := dst.Width
	h := dst.Height
	dark := e.palette.BorderDark
	light := e.palette.BorderLight

	fb.FillRect(dst, 5, 5, w-10, 5, dark, light, e.borderThick)
	fb.FillRect(dst, 5, h-10, w-10, 5, dark, light, e.borderThick)
	fb.FillRect(dst, 5, 5, 5, h-10, dark, light, e.borderThick)
	fb.FillRect(dst, w-10, 5, 5, h-10, dark, light, e.borderThick)

	if e.shadow {
		shadow := e.palette.Shadow
		fb.ColorRect(dst, 10, 10, 1, h-20, shadow)
		fb.ColorRect(dst, 10, 10, w-20, 1, shadow)
		fb.ColorRect(dst, w-5, 6, 1, h-10, shadow)
		fb.ColorRect(dst, 6, h-5, w-10, 1, shadow)
	}
}
