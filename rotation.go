package wordcloud

import "github.com/wordcloud-go/wordcloud/utils"

// Rotation is a discrete quarter-turn selector applied to a Word at shape
// time. Only the four 90-degree steps are supported.
type Rotation int

const (
	RotationZero Rotation = iota
	RotationNinety
	RotationOneEighty
	RotationTwoSeventy
)

// Degrees returns the rotation's angle in degrees, for SVG transform output.
func (r Rotation) Degrees() int {
	switch r {
	case RotationZero:
		return 0
	case RotationNinety:
		return 90
	case RotationOneEighty:
		return 180
	case RotationTwoSeventy:
		return 270
	default:
		return 0
	}
}

// RotatePoint applies the forward rotation to p.
func (r Rotation) RotatePoint(p Point[float32]) Point[float32] {
	switch r {
	case RotationZero:
		return p
	case RotationNinety:
		return Point[float32]{X: -p.Y, Y: p.X}
	case RotationOneEighty:
		return Point[float32]{X: -p.X, Y: -p.Y}
	case RotationTwoSeventy:
		return Point[float32]{X: p.Y, Y: -p.X}
	default:
		return p
	}
}

// RotatePointBack applies the inverse rotation to p.
func (r Rotation) RotatePointBack(p Point[float32]) Point[float32] {
	switch r {
	case RotationZero:
		return p
	case RotationNinety:
		return Point[float32]{X: p.Y, Y: -p.X}
	case RotationOneEighty:
		return Point[float32]{X: -p.X, Y: -p.Y}
	case RotationTwoSeventy:
		return Point[float32]{X: -p.Y, Y: p.X}
	default:
		return p
	}
}

// RotateRect rotates the corners of rect and re-normalizes the result.
func (r Rotation) RotateRect(rect Rect[float32]) Rect[float32] {
	rMin, rMax := r.RotatePoint(rect.Min), r.RotatePoint(rect.Max)
	return Rect[float32]{
		Min: Point[float32]{X: utils.Min(rMin.X, rMax.X), Y: utils.Min(rMin.Y, rMax.Y)},
		Max: Point[float32]{X: utils.Max(rMin.X, rMax.X), Y: utils.Max(rMin.Y, rMax.Y)},
	}
}

// RandomRotation picks Zero or TwoSeventy with equal probability, mirroring
// the decay step's rebuild-with-random-rotation behavior in the original.
func RandomRotation(flip bool) Rotation {
	if flip {
		return RotationTwoSeventy
	}
	return RotationZero
}
