package wordcloud

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Cell is the side length, in canvas pixels, of one quadtree cell used by
// both the placed-word tree and the forbidden-region tree. Downscaling by
// Cell before edge detection makes both trees two levels shallower than a
// per-pixel tree over the same canvas, mirroring the original's
// QUADTREE_DIVISOR constant.
const Cell = 4

// ForbiddenRegionProducer yields the set of canvas pixels a background
// image forbids word placement over. bounds is the rectangle to sample the
// image into; BuildForbiddenTree passes the canvas in Cell-sized units, and
// the returned points are in that same space.
type ForbiddenRegionProducer interface {
	ForbiddenPixels(bounds image.Rectangle) ([]image.Point, error)
}

// SobelEdgeProducer finds forbidden pixels by running a Sobel edge filter
// over a background image resized to the requested bounds, adapted from
// the teacher's own Grayscale and SobelFilter (grayscale.go, sobel.go),
// replacing caire's Canny-equivalent step. The spec excludes edge-detection
// strategy itself from its scope, so only the default producer needs to
// exist; callers may supply any other ForbiddenRegionProducer instead.
type SobelEdgeProducer struct {
	Image     image.Image
	Threshold float64
}

// NewSobelEdgeProducer returns a producer over img, using threshold as the
// Sobel gradient-magnitude cutoff below which a pixel is not an edge.
func NewSobelEdgeProducer(img image.Image, threshold float64) *SobelEdgeProducer {
	return &SobelEdgeProducer{Image: img, Threshold: threshold}
}

// ForbiddenPixels resizes the source image to bounds with nearest-neighbor
// sampling (matching the original's FilterType::Nearest), grayscales it,
// runs the Sobel filter, and returns every pixel whose edge magnitude
// exceeded the threshold.
func (p *SobelEdgeProducer) ForbiddenPixels(bounds image.Rectangle) ([]image.Point, error) {
	resized := image.NewNRGBA(bounds)
	draw.NearestNeighbor.Scale(resized, bounds, p.Image, p.Image.Bounds(), draw.Src, nil)

	gray := grayscaleImage(resized)
	edges := sobelFilter(gray, p.Threshold)

	var points []image.Point
	b := edges.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := edges.At(x, y).RGBA()
			if r != 0 || g != 0 || bl != 0 {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points, nil
}

// grayscaleImage converts src to grayscale, adapted from the teacher's
// Processor.Grayscale.
func grayscaleImage(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			lum := float32(r)*0.299 + float32(g)*0.587 + float32(bl)*0.114
			dst.Set(x, y, color.Gray{Y: uint8(lum / 256)})
		}
	}
	return dst
}

type kernel [][]int32

var (
	sobelKernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelKernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobelFilter detects image edges, adapted from the teacher's SobelFilter
// (sobel.go) to operate on an *image.NRGBA directly rather than the raw
// pixel buffer the teacher's seam-carving pipeline exposed.
func sobelFilter(img *image.NRGBA, threshold float64) *image.NRGBA {
	bounds := img.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(bounds)

	// Samples outside the image repeat the nearest border pixel, so the
	// image's own border is not reported as an edge.
	at := func(x, y int) int32 {
		if x < 0 {
			x = 0
		} else if x >= dx {
			x = dx - 1
		}
		if y < 0 {
			y = 0
		} else if y >= dy {
			y = dy - 1
		}
		r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return int32(r >> 8)
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			var sumX, sumY int32
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := at(x+kx, y+ky)
					sumX += v * sobelKernelX[ky+1][kx+1]
					sumY += v * sobelKernelY[ky+1][kx+1]
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if magnitude > 255 {
				magnitude = 255
			}
			var m uint8
			if magnitude > threshold {
				m = uint8(magnitude)
			}
			dst.SetNRGBA(bounds.Min.X+x, bounds.Min.Y+y, color.NRGBA{R: m, G: m, B: m, A: 255})
		}
	}
	return dst
}
