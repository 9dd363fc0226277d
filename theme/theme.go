// Package theme defines the preset color palettes for the backdrop engine.
// Colors are stored as 32-bit ARGB and resolved to the active framebuffer
// encoding once, when a theme or pixel format is selected.
package theme

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/flurry/pixel"
)

// Theme is a set of ARGB32 colors describing one preset look. Background
// and border colors carry partial alpha so suspended content shows through
// on backends that can represent translucency.
type Theme struct {
	Hover       uint32
	Normal      uint32
	Title       uint32
	BgDark      uint32
	BgLight     uint32
	BorderDark  uint32
	BorderLight uint32
	Shadow      uint32
	Particle    uint32
}

// Palette is a Theme resolved to packed 16-bit texels for one pixel format.
type Palette struct {
	Hover       uint16
	Normal      uint16
	Title       uint16
	BgDark      uint16
	BgLight     uint16
	BorderDark  uint16
	BorderLight uint16
	Shadow      uint16
	Particle    uint16
}

// Resolve packs every theme color with the given format.
func (t Theme) Resolve(f pixel.Format) Palette {
	return Palette{
		Hover:       f.FromARGB(t.Hover),
		Normal:      f.FromARGB(t.Normal),
		Title:       f.FromARGB(t.Title),
		BgDark:      f.FromARGB(t.BgDark),
		BgLight:     f.FromARGB(t.BgLight),
		BorderDark:  f.FromARGB(t.BorderDark),
		BorderLight: f.FromARGB(t.BorderLight),
		Shadow:      f.FromARGB(t.Shadow),
		Particle:    f.FromARGB(t.Particle),
	}
}

// Preset themes. Values match the classic fixed palettes users expect from
// bitmap menu frontends.
var presets = map[string]Theme{
	"classic_red": {
		Hover: 0xFFFF362B, Normal: 0xFFFFFFFF, Title: 0xFFFF362B,
		BgDark: 0xC0202020, BgLight: 0xC0404040,
		BorderDark: 0xC08C0000, BorderLight: 0xC0CC0E03,
		Shadow: 0xC0000000, Particle: 0xC09E8686,
	},
	"classic_orange": {
		Hover: 0xFFF87217, Normal: 0xFFFFFFFF, Title: 0xFFF87217,
		BgDark: 0xC0202020, BgLight: 0xC0404040,
		BorderDark: 0xC0962800, BorderLight: 0xC0E46C03,
		Shadow: 0xC0000000, Particle: 0xC09E9286,
	},
	"classic_green": {
		Hover: 0xFF64FF64, Normal: 0xFFFFFFFF, Title: 0xFF64FF64,
		BgDark: 0xC0202020, BgLight: 0xC0404040,
		BorderDark: 0xC0204020, BorderLight: 0xC0408040,
		Shadow: 0xC0000000, Particle: 0xC0879E87,
	},
	"classic_blue": {
		Hover: 0xFF48BEFF, Normal: 0xFFFFFFFF, Title: 0xFF48BEFF,
		BgDark: 0xC0202020, BgLight: 0xC0404040,
		BorderDark: 0xC0005BA6, BorderLight: 0xC02E94E2,
		Shadow: 0xC0000000, Particle: 0xC086949E,
	},
	"classic_grey": {
		Hover: 0xFFB6C1C7, Normal: 0xFFFFFFFF, Title: 0xFFB6C1C7,
		BgDark: 0xC0202020, BgLight: 0xC0404040,
		BorderDark: 0xC0505050, BorderLight: 0xC0798A99,
		Shadow: 0xC0000000, Particle: 0xC078828A,
	},
	"dark_purple": {
		Hover: 0xFFF2B5D6, Normal: 0xFFE8D0CC, Title: 0xFFC79FC2,
		BgDark: 0xC0562D56, BgLight: 0xC0663A66,
		BorderDark: 0xC0885783, BorderLight: 0xC0A675A1,
		Shadow: 0xC0140A14, Particle: 0xC09786A0,
	},
	"midnight_blue": {
		Hover: 0xFFB2D3ED, Normal: 0xFFD3DCDE, Title: 0xFF86A1BA,
		BgDark: 0xC024374A, BgLight: 0xC03C4D5E,
		BorderDark: 0xC046586A, BorderLight: 0xC06D7F91,
		Shadow: 0xC00A0F14, Particle: 0xC084849E,
	},
	"golden": {
		Hover: 0xFFFFE666, Normal: 0xFFFFFFDC, Title: 0xFFFFCC00,
		BgDark: 0xC0B88D0B, BgLight: 0xC0BF962B,
		BorderDark: 0xC0E1AD21, BorderLight: 0xC0FCC717,
		Shadow: 0xC0382B03, Particle: 0xC0F7D15E,
	},
	"electric_blue": {
		Hover: 0xFF7DF9FF, Normal: 0xFFDBE9F4, Title: 0xFF86CDE0,
		BgDark: 0xC02E69C6, BgLight: 0xC0007FFF,
		BorderDark: 0xC034A5D8, BorderLight: 0xC070C9FF,
		Shadow: 0xC012294D, Particle: 0xC080C7E6,
	},
	"lagoon": {
		Hover: 0xFFBCE1EB, Normal: 0xFFCFCFC4, Title: 0xFF86C7C7,
		BgDark: 0xC0495C6B, BgLight: 0xC0526778,
		BorderDark: 0xC058848F, BorderLight: 0xC060909C,
		Shadow: 0xC01C2329, Particle: 0xC09FB1C7,
	},
	"dracula": {
		Hover: 0xFFBD93F9, Normal: 0xFFF8F8F2, Title: 0xFFFF79C6,
		BgDark: 0xC02F3240, BgLight: 0xC02F3240,
		BorderDark: 0xC06272A4, BorderLight: 0xC06272A4,
		Shadow: 0xC00F0F0F, Particle: 0xC06272A4,
	},
	"gruvbox_dark": {
		Hover: 0xFFFE8019, Normal: 0xFFEBDBB2, Title: 0xFF83A598,
		BgDark: 0xC03D3D3D, BgLight: 0xC03D3D3D,
		BorderDark: 0xC099897A, BorderLight: 0xC099897A,
		Shadow: 0xC0000000, Particle: 0xC098971A,
	},
}

// DefaultName is the theme used when the config names none.
const DefaultName = "classic_grey"

// ByName looks up a preset theme.
func ByName(name string) (Theme, error) {
	t, ok := presets[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown preset %q", name)
	}
	return t, nil
}

// Names returns the preset names in sorted order, for cycling in the UI.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
