package dodge

import "math"

// Star is a purely decorative background element. Each star falls at its
// own speed, wraps to the top with a new random x after passing the field
// bottom, and twinkles via a phase accumulator. Stars never participate in
// collision or scoring.
type Star struct {
	X, Y  float64
	Speed float64
	Phase float64
}

// starPhaseStep is how far the brightness phase advances per tick.
const starPhaseStep = 0.15

// initStars populates the star field from the seeded RNG.
func (g *Game) initStars() {
	n := g.cfg.Stars.Count
	g.stars = make([]Star, 0, n)
	for i := 0; i < n; i++ {
		g.stars = append(g.stars, Star{
			X:     g.rng.Float64() * g.cfg.Field.Width,
			Y:     g.rng.Float64() * g.cfg.Field.Height,
			Speed: g.starSpeed(),
			Phase: g.rng.Float64() * 2 * math.Pi,
		})
	}
}

// starSpeed draws a fall speed from the configured range.
func (g *Game) starSpeed() float64 {
	span := g.cfg.Stars.MaxSpeed - g.cfg.Stars.MinSpeed
	return g.cfg.Stars.MinSpeed + g.rng.Float64()*span
}

// updateStars advances every star one tick.
func (g *Game) updateStars() {
	for i := range g.stars {
		s := &g.stars[i]
		s.Y += s.Speed
		s.Phase += starPhaseStep
		if s.Y > g.cfg.Field.Height {
			s.Y = 0
			s.X = g.rng.Float64() * g.cfg.Field.Width
			s.Speed = g.starSpeed()
		}
	}
}

// Brightness returns the star's current brightness in [0, 1].
func (s Star) Brightness() float64 {
	return 0.5 + 0.5*math.Sin(s.Phase)
}
