package wordcloud

import (
	"image"

	"github.com/wordcloud-go/wordcloud/quadtree"
)

// ForbiddenTree indexes the canvas regions, in Cell-sized units, that a
// background image forbids word placement over.
type ForbiddenTree = quadtree.Tree[struct{}]

// BuildForbiddenTree downscales canvasBounds by Cell, asks producer for the
// forbidden pixels in that space, and coalesces adjacent single-cell
// insertions into larger rectangles as it goes, mirroring the original's
// add_background loop (query-then-combine-then-replace).
func BuildForbiddenTree(producer ForbiddenRegionProducer, canvasBounds image.Rectangle, depth int) (*ForbiddenTree, error) {
	cellBounds := image.Rect(
		0, 0,
		(canvasBounds.Dx()+Cell-1)/Cell,
		(canvasBounds.Dy()+Cell-1)/Cell,
	)

	points, err := producer.ForbiddenPixels(cellBounds)
	if err != nil {
		return nil, err
	}

	tree := quadtree.New[struct{}](depth)

	for _, pt := range points {
		x := maxInt(pt.X-1, 0)
		y := maxInt(pt.Y-1, 0)

		searchArea := quadtree.Area{X: uint64(x), Y: uint64(y), W: 4, H: 4}
		insertArea := quadtree.Area{X: uint64(pt.X), Y: uint64(pt.Y), W: 1, H: 1}

		combined := false
		for _, found := range tree.Query(searchArea) {
			if merged, ok := combineAreas(insertArea, found.Area); ok {
				tree.Delete(found.Handle)
				tree.Insert(merged, struct{}{})
				combined = true
				break
			}
		}
		if !combined {
			tree.Insert(insertArea, struct{}{})
		}
	}

	return tree, nil
}

// combineAreas unions a and b when they are co-aligned (share a full edge)
// or one contains the other, matching Rect.CombineRects' strict reading.
func combineAreas(a, b quadtree.Area) (quadtree.Area, bool) {
	ar := Rect[uint64]{Min: Point[uint64]{X: a.X, Y: a.Y}, Max: Point[uint64]{X: a.MaxX(), Y: a.MaxY()}}
	br := Rect[uint64]{Min: Point[uint64]{X: b.X, Y: b.Y}, Max: Point[uint64]{X: b.MaxX(), Y: b.MaxY()}}

	combined, ok := ar.CombineRects(br)
	if !ok {
		return quadtree.Area{}, false
	}
	return quadtree.Area{
		X: combined.Min.X,
		Y: combined.Min.Y,
		W: combined.Max.X - combined.Min.X,
		H: combined.Max.Y - combined.Min.Y,
	}, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// NeededTreeDepth returns the quadtree depth needed to cover dimensions at
// Cell-sized resolution, per spec §4.3's formula: the smallest depth whose
// 2^depth grid (of Cell-sized cells) covers the larger canvas dimension.
func NeededTreeDepth(width, height int) int {
	largest := width
	if height > largest {
		largest = height
	}
	cells := (largest + Cell - 1) / Cell
	depth := 0
	for (1 << uint(depth)) < cells {
		depth++
	}
	return depth
}
