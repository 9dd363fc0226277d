package fb

import "testing"

const sentinel = 0xDEAD

// newSentinelBuffer returns a buffer pre-filled with a sentinel value so
// tests can verify exactly which texels an operation touched.
func newSentinelBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b := New(w, h)
	for i := range b.Pix {
		b.Pix[i] = sentinel
	}
	return b
}

// countChanged returns how many texels differ from the sentinel.
func countChanged(b *Buffer) int {
	n := 0
	for _, p := range b.Pix {
		if p != sentinel {
			n++
		}
	}
	return n
}

func TestFillRectSolid(t *testing.T) {
	b := newSentinelBuffer(t, 32, 24)
	FillRect(b, 4, 5, 10, 6, 0x1234, 0x1234, false)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			got := b.Pix[y*b.Width+x]
			inside := x >= 4 && x < 14 && y >= 5 && y < 11
			if inside && got != 0x1234 {
				t.Fatalf("texel (%d,%d) = %#04x, want fill color", x, y, got)
			}
			if !inside && got != sentinel {
				t.Fatalf("texel (%d,%d) = %#04x, modified outside rect", x, y, got)
			}
		}
	}
}

func TestFillRectClampsToBuffer(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"overflow right", 28, 0, 100, 4},
		{"overflow bottom", 0, 20, 4, 100},
		{"overflow both", 30, 22, 50, 50},
		{"fully outside", 40, 30, 5, 5},
		{"zero size", 4, 4, 0, 0},
		{"full cover overflow", 0, 0, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSentinelBuffer(t, 32, 24)
			// Must not panic or write out of bounds.
			FillRect(b, tt.x, tt.y, tt.w, tt.h, 1, 2, false)
			FillRect(b, tt.x, tt.y, tt.w, tt.h, 1, 2, true)

			visW := min(tt.x+tt.w, 32) - max(tt.x, 0)
			visH := min(tt.y+tt.h, 24) - max(tt.y, 0)
			want := 0
			if visW > 0 && visH > 0 {
				want = visW * visH
			}
			if got := countChanged(b); got != want {
				t.Errorf("changed %d texels, want %d", got, want)
			}
		})
	}
}

func TestFillRectCheckerboard(t *testing.T) {
	const dark, light = 0xAAAA, 0x5555

	b := newSentinelBuffer(t, 16, 16)
	FillRect(b, 0, 0, 16, 16, dark, light, false)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint16(light)
			if (x+y)&1 == 0 {
				want = dark
			}
			if got := b.Pix[y*16+x]; got != want {
				t.Fatalf("texel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

// The checker phase is anchored to absolute buffer coordinates, so a fill
// starting at an odd offset continues the same global pattern.
func TestFillRectCheckerboardOffsetPhase(t *testing.T) {
	const dark, light = 0xAAAA, 0x5555

	b := newSentinelBuffer(t, 16, 16)
	FillRect(b, 3, 5, 8, 7, dark, light, false)

	for y := 5; y < 12; y++ {
		for x := 3; x < 11; x++ {
			want := uint16(light)
			if (x+y)&1 == 0 {
				want = dark
			}
			if got := b.Pix[y*16+x]; got != want {
				t.Fatalf("texel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestFillRectThickCheckerboard(t *testing.T) {
	const dark, light = 0xAAAA, 0x5555

	b := newSentinelBuffer(t, 16, 16)
	FillRect(b, 0, 0, 16, 16, dark, light, true)

	// Thick mode tiles 2x2 blocks: block column (x>>1) and block row pair
	// (y>>1... with a 4-row period the color flips every two rows).
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			xBlockEven := (x>>1)&1 == 0
			yBlockEven := (y>>1)&1 == 0
			want := uint16(light)
			if xBlockEven == yBlockEven {
				want = dark
			}
			if got := b.Pix[y*16+x]; got != want {
				t.Fatalf("texel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

// Sampling across period boundaries: a thick fill must produce uniform 2x2
// blocks, i.e. texels (2i,2j), (2i+1,2j), (2i,2j+1), (2i+1,2j+1) all match.
func TestFillRectThickBlocksUniform(t *testing.T) {
	b := newSentinelBuffer(t, 32, 32)
	FillRect(b, 0, 0, 32, 32, 1, 2, true)

	for by := 0; by < 16; by++ {
		for bx := 0; bx < 16; bx++ {
			base := b.Pix[(by*2)*32+bx*2]
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					if got := b.Pix[(by*2+dy)*32+(bx*2+dx)]; got != base {
						t.Fatalf("block (%d,%d) not uniform at offset (%d,%d)", bx, by, dx, dy)
					}
				}
			}
		}
	}
}

func TestColorRect(t *testing.T) {
	b := newSentinelBuffer(t, 20, 20)

	// 1px divider line, the common use.
	ColorRect(b, 10, 10, 1, 8, 0xBEEF)
	if got := countChanged(b); got != 8 {
		t.Errorf("changed %d texels, want 8", got)
	}

	// Zero-size and fully clamped regions are silent no-ops.
	ColorRect(b, 5, 5, 0, 10, 0xBEEF)
	ColorRect(b, 25, 25, 10, 10, 0xBEEF)
	if got := countChanged(b); got != 8 {
		t.Errorf("changed %d texels after no-op fills, want 8", got)
	}
}

func TestDrawParticle(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		wantOn     bool
		wantTexels int
	}{
		{"fully inside", 5, 5, 3, 3, true, 9},
		{"clipped left", -2, 5, 4, 4, true, 8},
		{"clipped top", 5, -3, 4, 4, true, 4},
		{"clipped corner", 18, 18, 4, 4, true, 4},
		{"fully off left", -10, 5, 4, 4, false, 0},
		{"fully off bottom", 5, 30, 4, 4, false, 0},
		{"zero width", 5, 5, 0, 3, false, 0},
		{"zero height", 5, 5, 3, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSentinelBuffer(t, 20, 20)
			on := DrawParticle(b, tt.x, tt.y, tt.w, tt.h, 0xBEEF)
			if on != tt.wantOn {
				t.Errorf("on-screen = %v, want %v", on, tt.wantOn)
			}
			if got := countChanged(b); got != tt.wantTexels {
				t.Errorf("changed %d texels, want %d", got, tt.wantTexels)
			}
		})
	}
}

func TestBufferClear(t *testing.T) {
	b := New(33, 7) // odd size exercises the exponential copy tail
	b.Clear(0x700D)
	for i, p := range b.Pix {
		if p != 0x700D {
			t.Fatalf("texel %d = %#04x after Clear", i, p)
		}
	}
}

func TestBufferCopyFrom(t *testing.T) {
	src := New(8, 8)
	src.Clear(0x1111)
	dst := New(8, 8)
	dst.CopyFrom(src)
	if dst.Pix[63] != 0x1111 {
		t.Error("CopyFrom did not copy contents")
	}

	// Mismatched dimensions are a no-op.
	other := New(4, 4)
	other.Clear(0x2222)
	dst.CopyFrom(other)
	if dst.Pix[0] != 0x1111 {
		t.Error("CopyFrom with mismatched dimensions modified the buffer")
	}
}

func TestBufferResize(t *testing.T) {
	b := New(8, 8)
	pix := &b.Pix[0]
	b.Resize(8, 8)
	if &b.Pix[0] != pix {
		t.Error("Resize to the same dimensions reallocated")
	}
	b.Resize(16, 4)
	if b.Width != 16 || b.Height != 4 || len(b.Pix) != 64 {
		t.Errorf("Resize gave %dx%d with %d texels", b.Width, b.Height, len(b.Pix))
	}
}
