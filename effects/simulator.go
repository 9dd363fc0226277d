package effects

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/flurry/fb"
)

// PoolSize is the fixed particle pool capacity. Slot order is stable across
// frames: the same index always represents the same flake, drop or star.
const PoolSize = 256

// ReferenceWidth is the framebuffer width the rain density is calibrated
// against; narrower buffers get proportionally fewer drops.
const ReferenceWidth = 426

// nominalFrameMs is the frame period the per-tick deltas are tuned for.
// Actual frame times are divided by this so the animation stays
// speed-consistent at other refresh rates.
const nominalFrameMs = (1.0 / 60.0) * 1000.0

// Each motion model reads its own named fields, but the four pools are all
// fixed arrays of four float32, so storage stays homogeneous and only the
// active effect's pool is touched.

type flake struct {
	x, y   float32
	vx, vy float32
}

type drop struct {
	x, y   float32
	length float32
	speed  float32
}

type spark struct {
	radius       float32
	theta        float32
	radialSpeed  float32
	angularSpeed float32
}

type star struct {
	x, y  float32
	depth float32
	speed float32
}

// rainLengthWeights skews drop lengths toward short drops; a drop's fall
// speed is derived from its length, so long fast drops stay rare.
var rainLengthWeights = [60]uint8{
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 6, 6, 6, 6, 6,
	7, 7, 7, 7,
	8, 8, 8,
	9, 9,
	10,
}

// Simulator owns the particle pool and advances it once per frame tick.
// It is single-threaded by construction: the host render loop is the only
// caller, and every method runs to completion synchronously.
type Simulator struct {
	rng    *rand.Rand
	effect Effect

	// Buffer dimensions the pool was seeded against. Coordinate ranges
	// depend on these, so the host must re-Init after a resize.
	width, height int

	// SpeedMultiplier scales all per-tick deltas. Values at or below zero
	// mean "unset" and run at 1x.
	SpeedMultiplier float32

	flakes [PoolSize]flake
	drops  [PoolSize]drop
	sparks [PoolSize]spark
	stars  [PoolSize]star
}

// NewSimulator creates a simulator drawing randomness from rng. Injecting
// the source keeps runs reproducible under a fixed seed.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng, SpeedMultiplier: 1.0}
}

// Effect returns the active effect.
func (s *Simulator) Effect() Effect {
	return s.effect
}

// Init selects an effect and reseeds every active particle from that
// effect's spawn distribution, sized against a w x h buffer. Must be called
// again whenever the buffer dimensions change.
func (s *Simulator) Init(effect Effect, w, h int) {
	s.effect = effect
	s.width = w
	s.height = h

	if w < 1 || h < 1 {
		return
	}

	switch effect {
	case EffectSnow, EffectSnowAlt:
		for i := range s.flakes {
			f := &s.flakes[i]
			f.x = float32(s.rng.Intn(w))
			f.y = float32(s.rng.Intn(h))
			f.vx = float32(s.rng.Intn(64)-16) * 0.1
			f.vy = float32(s.rng.Intn(64)-48) * 0.1
		}
	case EffectRain:
		for i := 0; i < dropCount(w); i++ {
			s.respawnDrop(&s.drops[i], w, s.rng.Intn(h))
		}
	case EffectVortex:
		for i := range s.sparks {
			s.respawnSpark(&s.sparks[i], maxRadius(w, h))
		}
	case EffectStarfield:
		for i := range s.stars {
			s.respawnStar(&s.stars[i], w, h)
		}
	}
}

// Step advances the simulation by one tick and draws every particle into
// dst. Update and draw run as a single combined pass over the pool; the
// respawn decision for several effects depends on the draw call's
// visibility result, and one iteration per frame is all the budget allows.
func (s *Simulator) Step(dst *fb.Buffer, deltaMs float32, color uint16) {
	if s.effect == EffectNone || dst == nil || dst.Width < 1 || dst.Height < 1 {
		return
	}

	speed := s.SpeedMultiplier
	if speed <= 0.0001 {
		speed = 1.0
	}
	// Account for non-standard frame times (high or low refresh rates,
	// or frame drops).
	speed *= deltaMs / nominalFrameMs

	switch s.effect {
	case EffectSnow, EffectSnowAlt:
		s.stepSnow(dst, speed, color)
	case EffectRain:
		s.stepRain(dst, speed, color)
	case EffectVortex:
		s.stepVortex(dst, speed, color)
	case EffectStarfield:
		s.stepStarfield(dst, speed, color)
	}
}

func (s *Simulator) stepSnow(dst *fb.Buffer, speed float32, color uint16) {
	w := float32(dst.Width)
	h := float32(dst.Height)
	alt := s.effect == EffectSnowAlt

	for i := range s.flakes {
		f := &s.flakes[i]

		// Random-walk the velocity, clamped so flakes keep a gentle
		// leftward-drifting fall.
		f.vx += float32(s.rng.Intn(16)-9) * 0.01
		f.vy += float32(s.rng.Intn(16)-7) * 0.01

		f.vx = clampf(f.vx, -0.4, 0.1)
		f.vy = clampf(f.vy, -0.1, 0.4)

		// Position wraps toroidally.
		f.x = float32(math.Mod(float64(f.x+speed*f.vx), float64(w)))
		f.y = float32(math.Mod(float64(f.y+speed*f.vy), float64(h)))

		size := 1
		if alt {
			// Size keyed off the slot index gives a stable 96/128/32
			// split of 1x1, 2x2 and 3x3 flakes with no extra randomness.
			if i&0x2 == 0 {
				size = 2
			} else if i&0x7 == 0x7 {
				size = 3
			}
		}

		onScreen := fb.DrawParticle(dst, int(f.x), int(f.y), size, size, color)

		// Mod of a negative value is negative; fold back into range once
		// the flake has left the visible buffer.
		if !onScreen {
			if f.x < 0 {
				f.x += w
			}
			if f.y < 0 {
				f.y += h
			}
		}
	}
}

func (s *Simulator) stepRain(dst *fb.Buffer, speed float32, color uint16) {
	numDrops := dropCount(dst.Width)

	for i := 0; i < numDrops; i++ {
		d := &s.drops[i]

		onScreen := fb.DrawParticle(dst, int(d.x), int(d.y), 2, int(d.length), color)

		d.y += d.speed * speed

		// Fallen off the bottom: respawn at the top with fresh length
		// and speed.
		if !onScreen {
			s.respawnDrop(d, dst.Width, 0)
		}
	}
}

func (s *Simulator) stepVortex(dst *fb.Buffer, speed float32, color uint16) {
	maxR := maxRadius(dst.Width, dst.Height)
	xCentre := dst.Width >> 1
	yCentre := dst.Height >> 1
	h := float32(dst.Height)

	for i := range s.sparks {
		p := &s.sparks[i]

		sin, cos := math.Sincos(float64(p.theta))
		x := int(float64(p.radius)*cos) + xCentre
		y := int(float64(p.radius)*sin) + yCentre

		size := 1 + int((1.0-(maxR-p.radius)/maxR)*3.5+0.5)

		fb.DrawParticle(dst, x, y, size, size, color)

		// Both speeds ramp up as the particle closes on the centre, so
		// the spiral visibly accelerates inward.
		rSpeed := p.radialSpeed * speed
		thetaSpeed := p.angularSpeed * speed
		if p.radius > 0 && p.radius < h {
			base := (h - p.radius) / h
			rSpeed *= 1.0 + base*8.0
			thetaSpeed *= 1.0 + base*base*6.0
		}
		p.radius -= rSpeed
		p.theta += thetaSpeed

		if p.radius < 0 {
			s.respawnSpark(p, maxR)
		}
	}
}

func (s *Simulator) stepStarfield(dst *fb.Buffer, speed float32, color uint16) {
	focalLength := float32(dst.Width) * 2.0
	xCentre := dst.Width >> 1
	yCentre := dst.Height >> 1

	for i := range s.stars {
		p := &s.stars[i]

		// Pseudo-3D projection toward the buffer centre.
		x := int((p.x-float32(xCentre))*(focalLength/p.depth)) + xCentre
		y := int((p.y-float32(yCentre))*(focalLength/p.depth)) + yCentre

		size := int(focalLength / (2.0 * p.depth))

		onScreen := fb.DrawParticle(dst, x, y, size, size, color)

		p.depth -= p.speed * speed

		// Respawn once the star leaves the screen, reaches the viewer,
		// or grows past 16px (large fills get expensive fast).
		if !onScreen || p.depth <= 0 || size > 16 {
			s.respawnStar(p, dst.Width, dst.Height)
		}
	}
}

func (s *Simulator) respawnDrop(d *drop, w, y int) {
	// Sampling within the left third and multiplying by 3 spreads drops
	// across the full width while keeping them column-aligned.
	third := max(w/3, 1)
	d.x = float32(s.rng.Intn(third)) * 3.0
	d.y = float32(y)
	d.length = float32(rainLengthWeights[s.rng.Intn(len(rainLengthWeights))])
	// Longer drops fall faster.
	d.speed = (d.length / 12.0) * (0.5 + float32(s.rng.Intn(150))/200.0)
}

func (s *Simulator) respawnSpark(p *spark, maxR float32) {
	const oneDegree = math.Pi / 360.0
	// Respawning at a random radius rather than the rim turns out to look
	// better, so the spawn and respawn distributions are identical.
	p.radius = 1.0 + s.rng.Float32()*maxR
	p.theta = s.rng.Float32() * 2.0 * math.Pi
	p.radialSpeed = float32(s.rng.Intn(100)+1) * 0.001
	p.angularSpeed = (float32(s.rng.Intn(50)+1)/200.0 + 0.1) * oneDegree
}

func (s *Simulator) respawnStar(p *star, w, h int) {
	p.x = float32(s.rng.Intn(w))
	p.y = float32(s.rng.Intn(h))
	p.depth = float32(w)
	p.speed = 1.0 + float32(s.rng.Intn(20))*0.01
}

// dropCount returns the active rain subset: 85% of the pool scaled by the
// buffer width relative to the reference width, capped at the pool size.
// Slots past the count keep stale state and are ignored.
func dropCount(w int) int {
	n := int(0.85 * (float32(w) / float32(ReferenceWidth)) * float32(PoolSize))
	return min(n, PoolSize)
}

func maxRadius(w, h int) float32 {
	return float32(math.Sqrt(float64(w*w+h*h))) / 2.0
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
