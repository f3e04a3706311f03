package wordcloud

import "github.com/wordcloud-go/wordcloud/utils"

// Rect is an axis-aligned rectangle, Min the top-left corner and Max the
// bottom-right corner. A normalized Rect has Min <= Max component-wise.
type Rect[T Numeric] struct {
	Min, Max Point[T]
}

// Width returns Max.X - Min.X.
func (r Rect[T]) Width() T {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y.
func (r Rect[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

// Add translates r by the given point.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub translates r by the negation of the given point.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// Overlaps reports whether r and other share at least one point.
func (r Rect[T]) Overlaps(other Rect[T]) bool {
	return !(r.Max.X < other.Min.X || r.Max.Y < other.Min.Y ||
		r.Min.X > other.Max.X || r.Min.Y > other.Max.Y)
}

// Contains reports whether other lies entirely within r.
func (r Rect[T]) Contains(other Rect[T]) bool {
	return r.Min.X <= other.Min.X && r.Min.Y <= other.Min.Y &&
		r.Max.X >= other.Max.X && r.Max.Y >= other.Max.Y
}

// IntersectsSegment reports whether the line segment from s to e crosses r.
// Mirrors the original's Rect::intersects: cheap separating-axis rejection,
// not a precise segment-clip test.
func (r Rect[T]) IntersectsSegment(s, e Point[T]) bool {
	if (s.X <= r.Min.X && e.X <= r.Min.X) ||
		(s.Y <= r.Min.Y && e.Y <= r.Min.Y) ||
		(s.X >= r.Max.X && e.X >= r.Max.X) ||
		(s.Y >= r.Max.Y && e.Y >= r.Max.Y) {
		return false
	}
	return true
}

// IsNormal reports whether Min <= Max component-wise.
func (r Rect[T]) IsNormal() bool {
	return r.Min.FullLE(r.Max)
}

// Normalize reorders Min/Max so that Min <= Max component-wise.
func (r Rect[T]) Normalize() Rect[T] {
	minX, maxX := r.Min.X, r.Max.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := r.Min.Y, r.Max.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect[T]{Min: Point[T]{X: minX, Y: minY}, Max: Point[T]{X: maxX, Y: maxY}}
}

// Extend grows r by thickness on every side (a Minkowski sum with a square).
// r is normalized first.
func (r Rect[T]) Extend(thickness T) Rect[T] {
	n := r.Normalize()
	return Rect[T]{
		Min: Point[T]{X: n.Min.X - thickness, Y: n.Min.Y - thickness},
		Max: Point[T]{X: n.Max.X + thickness, Y: n.Max.Y + thickness},
	}
}

// CombineRects unions r and other only when they are co-aligned (share a
// full edge) or one contains the other; otherwise it returns false. This is
// the strict reading of Rect::union adopted per the spec's Open Question:
// axis-touching-but-not-aligned rectangles are never combined.
func (r Rect[T]) CombineRects(other Rect[T]) (Rect[T], bool) {
	if r.Contains(other) {
		return r, true
	}
	if other.Contains(r) {
		return other, true
	}

	sameRows := r.Min.Y == other.Min.Y && r.Max.Y == other.Max.Y
	sameCols := r.Min.X == other.Min.X && r.Max.X == other.Max.X

	if sameRows && (r.Max.X == other.Min.X || other.Max.X == r.Min.X) {
		return Rect[T]{
			Min: Point[T]{X: utils.Min(r.Min.X, other.Min.X), Y: r.Min.Y},
			Max: Point[T]{X: utils.Max(r.Max.X, other.Max.X), Y: r.Max.Y},
		}, true
	}
	if sameCols && (r.Max.Y == other.Min.Y || other.Max.Y == r.Min.Y) {
		return Rect[T]{
			Min: Point[T]{X: r.Min.X, Y: utils.Min(r.Min.Y, other.Min.Y)},
			Max: Point[T]{X: r.Max.X, Y: utils.Max(r.Max.Y, other.Max.Y)},
		}, true
	}

	return Rect[T]{}, false
}
