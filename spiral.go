package wordcloud

import "math"

// Spiral is an Archimedean-spiral generator used as the per-word search
// trajectory during placement. Theta advances by a full radian per step for
// the first five revolutions, then by a tenth of a radian, so the search
// covers the canvas quickly at first and finely thereafter.
type Spiral struct {
	b     float64
	theta float64
}

// NewSpiral returns a Spiral with growth parameter b.
func NewSpiral(b float64) *Spiral {
	return &Spiral{b: b}
}

// Advance steps theta forward.
func (s *Spiral) Advance() {
	s.theta = s.nextTheta()
}

// Position returns the spiral's current displacement from its origin.
func (s *Spiral) Position() Point[float32] {
	return s.positionAt(s.theta)
}

// PeekNext returns the displacement Advance would move to next, without
// mutating the spiral's state.
func (s *Spiral) PeekNext() Point[float32] {
	return s.positionAt(s.nextTheta())
}

func (s *Spiral) nextTheta() float64 {
	revolutions := s.theta / (2 * math.Pi)
	if revolutions < 5.0 {
		return s.theta + 1.0
	}
	return s.theta + 0.1
}

func (s *Spiral) positionAt(theta float64) Point[float32] {
	r := s.b * theta
	return Point[float32]{
		X: float32(r * math.Cos(theta)),
		Y: float32(r * math.Sin(theta)),
	}
}

// Reset restarts the spiral at theta = 0.
func (s *Spiral) Reset() {
	s.theta = 0
}
