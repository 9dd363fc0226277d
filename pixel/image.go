package pixel

// Image is a 32-bit ARGB raster, row-major with stride == Width. It is the
// interchange form for decoded thumbnails and wallpapers before they are
// packed down to the framebuffer encoding.
type Image struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewImage allocates a zeroed ARGB image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// Downscale resamples src to fit within maxW x maxH, preserving aspect
// ratio, using nearest-neighbour sampling with 16.16 fixed-point ratios.
// Returns src unchanged if it already fits.
func Downscale(src *Image, maxW, maxH int) *Image {
	if src.Width <= maxW && src.Height <= maxH {
		return src
	}

	displayAspect := float32(maxW) / float32(maxH)
	aspect := float32(src.Width) / float32(src.Height)

	var outW, outH int
	if aspect > displayAspect {
		outW = maxW
		outH = src.Height * maxW / src.Width
		// Guard against rounding errors.
		outH = max(outH, 1)
		outH = min(outH, maxH)
	} else {
		outH = maxH
		outW = src.Width * maxH / src.Height
		outW = max(outW, 1)
		outW = min(outW, maxW)
	}

	dst := NewImage(outW, outH)
	xRatio := uint32(src.Width<<16) / uint32(outW)
	yRatio := uint32(src.Height<<16) / uint32(outH)

	for yDst := 0; yDst < outH; yDst++ {
		ySrc := int(uint32(yDst) * yRatio >> 16)
		srcRow := src.Pix[ySrc*src.Width:]
		dstRow := dst.Pix[yDst*outW : (yDst+1)*outW]
		for xDst := range dstRow {
			xSrc := uint32(xDst) * xRatio >> 16
			dstRow[xDst] = srcRow[xSrc]
		}
	}

	return dst
}
