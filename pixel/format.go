// Package pixel handles conversion between 32-bit ARGB colors and the
// 16-bit packed formats used by the framebuffer on each video backend.
package pixel

import "image/color"

// Format identifies one of the supported 16-bit packed pixel encodings.
// The encoding is fixed once per process, chosen from the active video
// backend identity.
type Format uint8

const (
	// FormatRGBA4444 is the default encoding (4 bits per channel, alpha low).
	FormatRGBA4444 Format = iota
	// FormatABGR1555 has a single alpha bit; translucency is premultiplied
	// into RGB at conversion time.
	FormatABGR1555
	// FormatRGB5A3 has a 3-bit alpha channel; RGB is corrected for the
	// precision lost relative to a 4-bit alpha.
	FormatRGB5A3
	// FormatABGR4444 swaps the channel nibble order for backends that
	// expect alpha in the high nibble, blue next.
	FormatABGR4444
	// FormatBGRA4444 places blue in the high nibble, alpha in the low.
	FormatBGRA4444
)

// String returns the encoding name.
func (f Format) String() string {
	switch f {
	case FormatABGR1555:
		return "abgr1555"
	case FormatRGB5A3:
		return "rgb5a3"
	case FormatABGR4444:
		return "abgr4444"
	case FormatBGRA4444:
		return "bgra4444"
	default:
		return "rgba4444"
	}
}

// FormatForBackend maps a video backend identifier to its framebuffer
// encoding. Unknown or empty identifiers fall back to RGBA4444. Callers
// select the format once at startup and hold it for the process lifetime.
func FormatForBackend(ident string) Format {
	switch ident {
	case "ps2":
		return FormatABGR1555
	case "gx":
		return FormatRGB5A3
	case "psp1":
		return FormatABGR4444
	case "d3d10", "d3d11", "d3d12":
		return FormatBGRA4444
	default:
		return FormatRGBA4444
	}
}

// FromARGB packs a 32-bit ARGB color into the 16-bit encoding. The
// conversion never fails; out-of-range intermediate values are clamped.
func (f Format) FromARGB(col uint32) uint16 {
	switch f {
	case FormatABGR1555:
		return argbToABGR1555(col)
	case FormatRGB5A3:
		return argbToRGB5A3(col)
	case FormatABGR4444:
		return argbToABGR4444(col)
	case FormatBGRA4444:
		return argbToBGRA4444(col)
	default:
		return argbToRGBA4444(col)
	}
}

func argbToABGR1555(col uint32) uint16 {
	a := (col >> 24) & 0xff
	r := (col >> 16) & 0xff
	g := (col >> 8) & 0xff
	b := col & 0xff
	if a < 0xff {
		// Only one alpha bit is available, so every color becomes fully
		// opaque. Darken RGB by the input alpha to keep translucent
		// backgrounds and borders from rendering abnormally bright.
		factor := float32(a) * (1.0 / 255.0)
		r = uint32(float32(r)*factor+0.5) & 0xff
		g = uint32(float32(g)*factor+0.5) & 0xff
		b = uint32(float32(b)*factor+0.5) & 0xff
	}
	r >>= 3
	g >>= 3
	b >>= 3
	// Alpha bit always set.
	return uint16((1 << 15) | (b << 10) | (g << 5) | r)
}

func argbToRGB5A3(col uint32) uint16 {
	a := (col >> 24) & 0xff
	r := (col >> 16) & 0xff
	g := (col >> 8) & 0xff
	b := col & 0xff
	a3 := a >> 5
	if a < 0xff {
		// The 3-bit alpha channel is one bit coarser than the 4-bit
		// channel every other encoding carries, making colors ~6-7% less
		// transparent than intended. Scale RGB by the ratio between the
		// hypothetical 4-bit alpha and the 3-bit alpha actually stored.
		a4 := a >> 4
		factor := float32(1.0)
		if a3 > 0 {
			// a3 == 0 would divide by zero; treat the factor as 1.
			factor = (float32(a4) * (1.0 / 15.0)) / (float32(a3) * (1.0 / 7.0))
		}
		r = uint32(float32(r)*factor + 0.5)
		g = uint32(float32(g)*factor + 0.5)
		b = uint32(float32(b)*factor + 0.5)
		// The factor can exceed 1 for arbitrary inputs, so clamp.
		r = min(r, 0xff)
		g = min(g, 0xff)
		b = min(b, 0xff)
	}
	r >>= 4
	g >>= 4
	b >>= 4
	return uint16((a3 << 12) | (r << 8) | (g << 4) | b)
}

func argbToABGR4444(col uint32) uint16 {
	a := ((col >> 24) & 0xff) >> 4
	r := ((col >> 16) & 0xff) >> 4
	g := ((col >> 8) & 0xff) >> 4
	b := (col & 0xff) >> 4
	return uint16((a << 12) | (b << 8) | (g << 4) | r)
}

func argbToBGRA4444(col uint32) uint16 {
	a := ((col >> 24) & 0xff) >> 4
	r := ((col >> 16) & 0xff) >> 4
	g := ((col >> 8) & 0xff) >> 4
	b := (col & 0xff) >> 4
	return uint16((b << 12) | (g << 8) | (r << 4) | a)
}

func argbToRGBA4444(col uint32) uint16 {
	a := ((col >> 24) & 0xff) >> 4
	r := ((col >> 16) & 0xff) >> 4
	g := ((col >> 8) & 0xff) >> 4
	b := (col & 0xff) >> 4
	return uint16((r << 12) | (g << 8) | (b << 4) | a)
}

// expand4 widens a 4-bit channel to 8 bits (replicating the nibble).
func expand4(v uint16) uint8 {
	return uint8((v << 4) | v)
}

// expand5 widens a 5-bit channel to 8 bits.
func expand5(v uint16) uint8 {
	return uint8((v << 3) | (v >> 2))
}

// expand3 widens a 3-bit channel to 8 bits.
func expand3(v uint16) uint8 {
	return uint8((v << 5) | (v << 2) | (v >> 1))
}

// ToRGBA decodes a packed texel back to 8-bit RGBA for presentation on a
// 32-bit display. The expansion replicates high bits into the low bits so
// full-scale channels decode to 255.
func (f Format) ToRGBA(p uint16) color.RGBA {
	switch f {
	case FormatABGR1555:
		a := uint8(0)
		if p&(1<<15) != 0 {
			a = 0xff
		}
		return color.RGBA{
			R: expand5(p & 0x1f),
			G: expand5((p >> 5) & 0x1f),
			B: expand5((p >> 10) & 0x1f),
			A: a,
		}
	case FormatRGB5A3:
		return color.RGBA{
			R: expand4((p >> 8) & 0xf),
			G: expand4((p >> 4) & 0xf),
			B: expand4(p & 0xf),
			A: expand3((p >> 12) & 0x7),
		}
	case FormatABGR4444:
		return color.RGBA{
			R: expand4(p & 0xf),
			G: expand4((p >> 4) & 0xf),
			B: expand4((p >> 8) & 0xf),
			A: expand4((p >> 12) & 0xf),
		}
	case FormatBGRA4444:
		return color.RGBA{
			R: expand4((p >> 4) & 0xf),
			G: expand4((p >> 8) & 0xf),
			B: expand4((p >> 12) & 0xf),
			A: expand4(p & 0xf),
		}
	default:
		return color.RGBA{
			R: expand4((p >> 12) & 0xf),
			G: expand4((p >> 8) & 0xf),
			B: expand4((p >> 4) & 0xf),
			A: expand4(p & 0xf),
		}
	}
}
