package wordcloud

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeededTreeDepth_CoversLargerDimension(t *testing.T) {
	// 400px at Cell=4 is 100 cells; the smallest power of two >= 100 is 128 = 2^7.
	assert.Equal(t, 7, NeededTreeDepth(400, 100))
	assert.Equal(t, 7, NeededTreeDepth(100, 400))
	assert.Equal(t, 0, NeededTreeDepth(1, 1))
}

// halfBlackImage returns a w x h image split down the middle: black on the
// left, white on the right, producing one clean vertical edge for the
// Sobel filter to find.
func halfBlackImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if x < w/2 {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSobelEdgeProducer_FindsVerticalEdge(t *testing.T) {
	img := halfBlackImage(64, 64)
	producer := NewSobelEdgeProducer(img, 10)

	points, err := producer.ForbiddenPixels(image.Rect(0, 0, 64, 64))

	assert.NoError(t, err)
	assert.NotEmpty(t, points)
	for _, p := range points {
		assert.InDelta(t, 32, p.X, 3, "edge pixels should cluster around the black/white boundary")
	}
}

func TestBuildForbiddenTree_CombinesAdjacentCells(t *testing.T) {
	img := halfBlackImage(64, 64)
	producer := NewSobelEdgeProducer(img, 10)
	depth := NeededTreeDepth(64, 64)

	tree, err := BuildForbiddenTree(producer, image.Rect(0, 0, 64, 64), depth)

	assert.NoError(t, err)
	entries := tree.All()
	assert.NotEmpty(t, entries)

	// in the 16x16 cell space the edge lies in columns 7 and 8, one
	// forbidden pixel per column per row (32 in all); each row's pair of
	// adjacent cells coalesces, so the tree holds fewer entries than
	// pixels, and every area keeps a positive size inside the cell grid.
	assert.Less(t, len(entries), 32)
	for _, e := range entries {
		assert.Greater(t, e.Area.W, uint64(0))
		assert.Greater(t, e.Area.H, uint64(0))
		assert.LessOrEqual(t, e.Area.MaxX(), uint64(16))
		assert.LessOrEqual(t, e.Area.MaxY(), uint64(16))
	}
}

func TestBuildForbiddenTree_EmptyProducerYieldsEmptyTree(t *testing.T) {
	producer := NewSobelEdgeProducer(image.NewNRGBA(image.Rect(0, 0, 8, 8)), 1000)
	depth := NeededTreeDepth(8, 8)

	tree, err := BuildForbiddenTree(producer, image.Rect(0, 0, 8, 8), depth)

	assert.NoError(t, err)
	assert.Equal(t, 0, tree.Len())
}
