package wordcloud

import "golang.org/x/exp/constraints"

// Numeric is the set of types a Point or Rect may be instantiated over.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Point is an (x, y) coordinate pair. Canvas-space points use float32, with
// y growing downward.
type Point[T Numeric] struct {
	X, Y T
}

// Add returns the component-wise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Eq reports whether p and q are component-wise equal.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.X == q.X && p.Y == q.Y
}

// FullLE reports whether p is component-wise less than or equal to q.
func (p Point[T]) FullLE(q Point[T]) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// FullGE reports whether p is component-wise greater than or equal to q.
func (p Point[T]) FullGE(q Point[T]) bool {
	return p.X >= q.X && p.Y >= q.Y
}

// SubLY mirrors other about p's y coordinate: the x component of other is
// kept, the y component is reflected through p.Y. Used with p as the
// origin to flip glyph outlines (which arrive y-up from the shaper) into
// the canvas's y-down frame.
func (p Point[T]) SubLY(other Point[T]) Point[T] {
	return Point[T]{X: other.X, Y: p.Y - other.Y}
}
