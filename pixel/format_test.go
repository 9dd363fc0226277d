package pixel

import "testing"

func TestFormatForBackend(t *testing.T) {
	tests := []struct {
		ident string
		want  Format
	}{
		{"", FormatRGBA4444},
		{"ps2", FormatABGR1555},
		{"gx", FormatRGB5A3},
		{"psp1", FormatABGR4444},
		{"d3d10", FormatBGRA4444},
		{"d3d11", FormatBGRA4444},
		{"d3d12", FormatBGRA4444},
		{"gl", FormatRGBA4444},
		{"vulkan", FormatRGBA4444},
	}

	for _, tt := range tests {
		t.Run("ident_"+tt.ident, func(t *testing.T) {
			if got := FormatForBackend(tt.ident); got != tt.want {
				t.Errorf("FormatForBackend(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestFromARGBExactPacking(t *testing.T) {
	const fullRed = 0xFFFF0000

	tests := []struct {
		name   string
		format Format
		in     uint32
		want   uint16
	}{
		{"rgba4444 full red", FormatRGBA4444, fullRed, 0xF00F},
		{"rgba4444 full white", FormatRGBA4444, 0xFFFFFFFF, 0xFFFF},
		{"abgr4444 full red", FormatABGR4444, fullRed, 0xF00F},
		{"bgra4444 full red", FormatBGRA4444, fullRed, 0x00FF},
		{"abgr1555 full red", FormatABGR1555, fullRed, 0x801F},
		{"rgb5a3 full red", FormatRGB5A3, fullRed, 0x7F00},
		{"black opaque rgba4444", FormatRGBA4444, 0xFF000000, 0x000F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.FromARGB(tt.in); got != tt.want {
				t.Errorf("FromARGB(%#08x) = %#04x, want %#04x", tt.in, got, tt.want)
			}
		})
	}
}

// Full-alpha colors must round-trip losslessly within each format's
// channel quantization.
func TestFullAlphaRoundTrip(t *testing.T) {
	formats := []Format{
		FormatRGBA4444, FormatABGR4444, FormatBGRA4444, FormatABGR1555, FormatRGB5A3,
	}
	colors := []uint32{
		0xFFFF0000, // red
		0xFF00FF00, // green
		0xFF0000FF, // blue
		0xFFFFFFFF, // white
		0xFF000000, // black
	}

	for _, f := range formats {
		for _, c := range colors {
			got := f.ToRGBA(f.FromARGB(c))

			wantR := uint8(c >> 16)
			wantG := uint8(c >> 8)
			wantB := uint8(c)

			if got.R != wantR || got.G != wantG || got.B != wantB {
				t.Errorf("%v: round trip of %#08x = RGB(%d,%d,%d), want (%d,%d,%d)",
					f, c, got.R, got.G, got.B, wantR, wantG, wantB)
			}
			// Full input alpha must decode as fully opaque in every format.
			if got.A != 0xFF {
				t.Errorf("%v: round trip of %#08x decoded alpha %d, want 255", f, c, got.A)
			}
		}
	}
}

func TestABGR1555AlphaPremultiply(t *testing.T) {
	// Half-transparent white darkens to ~50% grey; the alpha bit stays set.
	got := FormatABGR1555.FromARGB(0x80FFFFFF)
	if got&(1<<15) == 0 {
		t.Error("alpha bit not set")
	}
	r := got & 0x1F
	g := (got >> 5) & 0x1F
	b := (got >> 10) & 0x1F
	// 255 * 128/255 + 0.5 = 128 -> 128>>3 = 16
	if r != 16 || g != 16 || b != 16 {
		t.Errorf("premultiplied channels = (%d,%d,%d), want (16,16,16)", r, g, b)
	}
}

func TestRGB5A3ZeroAlpha(t *testing.T) {
	// The 3-bit alpha path divides by the stored alpha; alpha in [0,31]
	// stores as zero and must be treated as scale factor 1.0, not crash.
	got := FormatRGB5A3.FromARGB(0x00FFFFFF)
	r := (got >> 8) & 0xF
	g := (got >> 4) & 0xF
	b := got & 0xF
	a := (got >> 12) & 0x7
	if a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
	// Scale factor 1.0 leaves RGB at plain truncation.
	if r != 0xF || g != 0xF || b != 0xF {
		t.Errorf("RGB = (%d,%d,%d), want (15,15,15)", r, g, b)
	}
}

func TestRGB5A3FactorClamped(t *testing.T) {
	// alpha 0x30: a4=3, a3=1, factor = (3/15)/(1/7) = 1.4 > 1.
	// Full channels would scale past 255 and must clamp, not wrap.
	got := FormatRGB5A3.FromARGB(0x30FFFFFF)
	r := (got >> 8) & 0xF
	g := (got >> 4) & 0xF
	b := got & 0xF
	if r != 0xF || g != 0xF || b != 0xF {
		t.Errorf("RGB = (%d,%d,%d), want clamped (15,15,15)", r, g, b)
	}
	if a := (got >> 12) & 0x7; a != 1 {
		t.Errorf("alpha = %d, want 1", a)
	}
}

func TestRGB5A3DarkensForCoarseAlpha(t *testing.T) {
	// alpha 0xC0: a4=12, a3=6, factor = (12/15)/(6/7) = 0.9333.
	// RGB 0xFF scales to 238 -> high nibble 14.
	got := FormatRGB5A3.FromARGB(0xC0FFFFFF)
	r := (got >> 8) & 0xF
	if r != 14 {
		t.Errorf("scaled red nibble = %d, want 14", r)
	}
}
