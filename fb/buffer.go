// Package fb implements the 16-bit software framebuffer and the rectangle
// fill primitives used to composite backdrops, borders and particles.
package fb

// Buffer is a rectangular grid of 16-bit texels, row-major with an implicit
// stride equal to Width. The channel layout of a texel is opaque here; the
// compositor only forwards colors already packed by the pixel package.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint16
}

// New allocates a zeroed buffer.
func New(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Pix: make([]uint16, w*h)}
}

// Resize reallocates the backing store when dimensions change. Contents are
// undefined afterwards; callers repaint the whole buffer on resize.
func (b *Buffer) Resize(w, h int) {
	if w == b.Width && h == b.Height && b.Pix != nil {
		return
	}
	b.Width = w
	b.Height = h
	b.Pix = make([]uint16, w*h)
}

// Clear sets every texel to color.
func (b *Buffer) Clear(color uint16) {
	if len(b.Pix) == 0 {
		return
	}
	b.Pix[0] = color
	// Exponential copy doubles the initialized prefix each pass.
	for filled := 1; filled < len(b.Pix); filled *= 2 {
		copy(b.Pix[filled:], b.Pix[:filled])
	}
}

// CopyFrom bulk-copies src into b. Both buffers must have identical
// dimensions; mismatched sizes are a silent no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src == nil || src.Width != b.Width || src.Height != b.Height {
		return
	}
	copy(b.Pix, src.Pix)
}

// Row returns the texels of row y. Callers must keep y in bounds.
func (b *Buffer) Row(y int) []uint16 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}
