// Package effects implements the animated backdrop particle simulation.
// A fixed pool of particles is advanced once per displayed frame and drawn
// straight into the 16-bit framebuffer via the fb fill primitives.
package effects

import "fmt"

// Effect selects the active particle motion model.
type Effect uint8

const (
	// EffectNone disables the simulation; Step is a no-op.
	EffectNone Effect = iota
	// EffectSnow drifts 1x1 flakes with a random-walk velocity.
	EffectSnow
	// EffectSnowAlt is snow with a mixed flake-size pattern.
	EffectSnowAlt
	// EffectRain drops vertical streaks with weighted-random lengths.
	EffectRain
	// EffectVortex spirals particles inward around the buffer center.
	EffectVortex
	// EffectStarfield flies particles toward the viewer in pseudo-3D.
	EffectStarfield

	numEffects
)

// String returns the effect name used in config files and logs.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectSnow:
		return "snow"
	case EffectSnowAlt:
		return "snow_alt"
	case EffectRain:
		return "rain"
	case EffectVortex:
		return "vortex"
	case EffectStarfield:
		return "starfield"
	default:
		return fmt.Sprintf("effect(%d)", uint8(e))
	}
}

// Next cycles to the following effect, wrapping back to none.
func (e Effect) Next() Effect {
	return (e + 1) % numEffects
}

// Prev cycles to the preceding effect, wrapping around.
func (e Effect) Prev() Effect {
	return (e + numEffects - 1) % numEffects
}

// ParseEffect maps a config name to its Effect.
func ParseEffect(name string) (Effect, error) {
	switch name {
	case "", "none":
		return EffectNone, nil
	case "snow":
		return EffectSnow, nil
	case "snow_alt":
		return EffectSnowAlt, nil
	case "rain":
		return EffectRain, nil
	case "vortex":
		return EffectVortex, nil
	case "starfield":
		return EffectStarfield, nil
	default:
		return EffectNone, fmt.Errorf("effects: unknown effect %q", name)
	}
}
