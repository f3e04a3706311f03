package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_RecalculateBoundingBoxTracksOffset(t *testing.T) {
	w := newSquareWord("ab", 10, RotationZero, nil)

	// two glyphs: [0,10]x[0,10] and [12,22]x[0,10], so the combined box
	// spans the first glyph's left edge to the second's right edge.
	assert.Equal(t, float32(0), w.BoundingBox.Min.X)
	assert.Equal(t, float32(22), w.BoundingBox.Max.X)
	assert.Equal(t, float32(0), w.BoundingBox.Min.Y)
	assert.Equal(t, float32(10), w.BoundingBox.Max.Y)

	w.MoveWord(Point[float32]{X: 100, Y: 200})
	assert.Equal(t, float32(100), w.BoundingBox.Min.X)
	assert.Equal(t, float32(122), w.BoundingBox.Max.X)
	assert.Equal(t, float32(200), w.BoundingBox.Min.Y)
	assert.Equal(t, float32(210), w.BoundingBox.Max.Y)
}

func TestWord_WordIntersect_OverlappingSquaresCollide(t *testing.T) {
	a := newSquareWord("a", 20, RotationZero, nil)
	b := newSquareWord("a", 20, RotationZero, nil)
	b.MoveWord(Point[float32]{X: 10, Y: 10})

	assert.True(t, a.WordIntersect(b))
	assert.True(t, b.WordIntersect(a))
}

func TestWord_WordIntersect_FarApartSquaresDoNotCollide(t *testing.T) {
	a := newSquareWord("a", 20, RotationZero, nil)
	b := newSquareWord("a", 20, RotationZero, nil)
	b.MoveWord(Point[float32]{X: 1000, Y: 1000})

	assert.False(t, a.WordIntersect(b))
	assert.False(t, b.WordIntersect(a))
}

func TestWord_WordIntersect_SmallGapDoesNotCollide(t *testing.T) {
	a := newSquareWord("a", 20, RotationZero, nil)
	b := newSquareWord("a", 20, RotationZero, nil)
	// b sits 3px past a's right edge: within the coarse 5px bounding-box
	// gate, but the glyph outlines themselves never touch.
	b.MoveWord(Point[float32]{X: 23, Y: 0})

	assert.False(t, a.WordIntersect(b))
}

func TestWord_WordIntersect_ContainedWordCollidesByRayParity(t *testing.T) {
	// a big single square, and a tiny word placed entirely inside it: the
	// bounding-box overlap gate passes and the tiny word's center sits
	// inside the big square's outline, so the odd-crossing ray test
	// should report a collision even though no glyph edges touch.
	big := newSquareWord("a", 100, RotationZero, nil)
	tiny := newSquareWord("a", 2, RotationZero, nil)
	tiny.MoveWord(Point[float32]{X: 50, Y: 50})

	assert.True(t, tiny.WordIntersect(big))
}

func TestWord_DProducesNonEmptyPath(t *testing.T) {
	w := newSquareWord("hi", 10, RotationZero, nil)
	d := w.D()
	assert.Contains(t, d, "M ")
	assert.Contains(t, d, "Z")
}

func TestWord_RotationAffectsBoundingBox(t *testing.T) {
	upright := newSquareWord("ab", 10, RotationZero, nil)
	rotated := newSquareWord("ab", 10, RotationNinety, nil)

	// a 90-degree turn swaps the word's long axis from x to y.
	assert.Greater(t, upright.BoundingBox.Width(), upright.BoundingBox.Height())
	assert.Greater(t, rotated.BoundingBox.Height(), rotated.BoundingBox.Width())
}
