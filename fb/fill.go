package fb

// FillRect fills a clamped rectangle with a checkerboard dither of dark and
// light, or a solid fill when the two colors are equal. In normal mode the
// dither period is 1 column x 2 rows; in thick mode it is 2 columns x 4 rows,
// which reads as 2x2 blocks. The rectangle is clamped against the buffer
// before any write; an empty result is a no-op.
//
// This is the primitive behind full-screen backgrounds, so it builds one or
// two scanline templates and replicates them down the destination with bulk
// row copies rather than writing texel by texel.
func FillRect(b *Buffer, x, y, w, h int, dark, light uint16, thick bool) {
	xStart := clamp(x, 0, b.Width)
	yStart := clamp(y, 0, b.Height)
	xEnd := clamp(x+w, 0, b.Width)
	yEnd := clamp(y+h, 0, b.Height)

	if xEnd <= xStart {
		return
	}

	span := xEnd - xStart

	if dark == light {
		// Solid fill: one template row, replicated.
		src := make([]uint16, span)
		for i := range src {
			src[i] = dark
		}
		for yIndex := yStart; yIndex < yEnd; yIndex++ {
			copy(b.Pix[yIndex*b.Width+xStart:], src)
		}
		return
	}

	even := make([]uint16, span)
	odd := make([]uint16, span)

	if thick {
		for i := range even {
			xIsEven := ((xStart+i)>>1)&1 == 0
			if xIsEven {
				even[i] = dark
				odd[i] = light
			} else {
				even[i] = light
				odd[i] = dark
			}
		}

		// Row templates cycle with period 4; the starting phase decides
		// which template each of the four row classes takes.
		var srcA, srcB, srcC, srcD []uint16
		switch yStart & 0x3 {
		case 0x1:
			srcA, srcB, srcC, srcD = even, odd, odd, even
		case 0x2:
			srcA, srcB, srcC, srcD = odd, odd, even, even
		case 0x3:
			srcA, srcB, srcC, srcD = odd, even, even, odd
		default:
			srcA, srcB, srcC, srcD = even, even, odd, odd
		}

		for yIndex := yStart; yIndex < yEnd; yIndex += 4 {
			copy(b.Pix[yIndex*b.Width+xStart:], srcA)
		}
		for yIndex := yStart + 1; yIndex < yEnd; yIndex += 4 {
			copy(b.Pix[yIndex*b.Width+xStart:], srcB)
		}
		for yIndex := yStart + 2; yIndex < yEnd; yIndex += 4 {
			copy(b.Pix[yIndex*b.Width+xStart:], srcC)
		}
		for yIndex := yStart + 3; yIndex < yEnd; yIndex += 4 {
			copy(b.Pix[yIndex*b.Width+xStart:], srcD)
		}
		return
	}

	for i := range even {
		xIsEven := (xStart+i)&1 == 0
		if xIsEven {
			even[i] = dark
			odd[i] = light
		} else {
			even[i] = light
			odd[i] = dark
		}
	}

	srcA, srcB := even, odd
	if yStart&1 != 0 {
		srcA, srcB = odd, even
	}

	for yIndex := yStart; yIndex < yEnd; yIndex += 2 {
		copy(b.Pix[yIndex*b.Width+xStart:], srcA)
	}
	for yIndex := yStart + 1; yIndex < yEnd; yIndex += 2 {
		copy(b.Pix[yIndex*b.Width+xStart:], srcB)
	}
}

// ColorRect fills a clamped rectangle with a single color. Used for thin
// shadow and divider lines, so it writes directly without templates.
func ColorRect(b *Buffer, x, y, w, h int, color uint16) {
	xStart := clamp(x, 0, b.Width)
	yStart := clamp(y, 0, b.Height)
	xEnd := clamp(x+w, 0, b.Width)
	yEnd := clamp(y+h, 0, b.Height)

	for yIndex := yStart; yIndex < yEnd; yIndex++ {
		row := b.Pix[yIndex*b.Width : yIndex*b.Width+xEnd]
		for xIndex := xStart; xIndex < xEnd; xIndex++ {
			row[xIndex] = color
		}
	}
}

// DrawParticle fills a rectangle whose origin may lie off-buffer in any
// direction, and reports whether the clamped visible rectangle was
// non-empty. The simulator uses the return value to detect particles that
// have left the screen and need respawning.
func DrawParticle(b *Buffer, x, y, w, h int, color uint16) bool {
	xStart := clamp(x, 0, b.Width)
	yStart := clamp(y, 0, b.Height)
	xEnd := clamp(x+w, 0, b.Width)
	yEnd := clamp(y+h, 0, b.Height)

	for yIndex := yStart; yIndex < yEnd; yIndex++ {
		row := b.Pix[yIndex*b.Width : yIndex*b.Width+xEnd]
		for xIndex := xStart; xIndex < xEnd; xIndex++ {
			row[xIndex] = color
		}
	}

	return xEnd > xStart && yEnd > yStart
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
