package fb

// ScaleNearest resamples src into dst with nearest-neighbour sampling. The
// ratios are 16.16 fixed point, so the inner loop is shift-and-index only.
// Used for the internal upscale pass before presentation; dst must already
// be sized to the desired output.
func ScaleNearest(dst, src *Buffer) {
	if dst.Width <= 0 || dst.Height <= 0 || src.Width <= 0 || src.Height <= 0 {
		return
	}

	xRatio := uint32(src.Width<<16) / uint32(dst.Width)
	yRatio := uint32(src.Height<<16) / uint32(dst.Height)

	for yDst := 0; yDst < dst.Height; yDst++ {
		ySrc := int(uint32(yDst) * yRatio >> 16)
		srcRow := src.Pix[ySrc*src.Width:]
		dstRow := dst.Pix[yDst*dst.Width : (yDst+1)*dst.Width]
		for xDst := range dstRow {
			xSrc := uint32(xDst) * xRatio >> 16
			dstRow[xDst] = srcRow[xSrc]
		}
	}
}

// Blit copies a source buffer into dst with its top-left corner at (x, y),
// clipped against dst. Rows are copied in bulk.
func Blit(dst, src *Buffer, x, y int) {
	xStart := clamp(x, 0, dst.Width)
	yStart := clamp(y, 0, dst.Height)
	xEnd := clamp(x+src.Width, 0, dst.Width)
	yEnd := clamp(y+src.Height, 0, dst.Height)

	if xEnd <= xStart {
		return
	}

	for yIndex := yStart; yIndex < yEnd; yIndex++ {
		srcRow := src.Pix[(yIndex-y)*src.Width+(xStart-x):]
		copy(dst.Pix[yIndex*dst.Width+xStart:yIndex*dst.Width+xEnd], srcRow)
	}
}
