package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/wordcloud-go/wordcloud/utils"
)

// Dimensions is the output canvas size, in pixels.
type Dimensions struct {
	Width, Height int
}

// DecodeImageFile opens and decodes an image file, adapted from the
// teacher's decodeImg (image.go): same content-type sniff via
// utils.DetectFileContentType before handing off to the standard decoders.
func DecodeImageFile(path string) (image.Image, error) {
	ctype, err := utils.DetectFileContentType(path)
	if err != nil {
		return nil, err
	}
	if ct, ok := ctype.(string); !ok || !isImageContentType(ct) {
		return nil, fmt.Errorf("wordcloud: background file is not an image")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordcloud: could not open background image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("wordcloud: could not decode background image: %w", err)
	}
	return img, nil
}

func isImageContentType(ct string) bool {
	for _, prefix := range []string{"image/"} {
		if len(ct) >= len(prefix) && ct[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// AverageColorForRect returns the mean color of img over rect, or fallback
// if rect has no area or lies entirely outside img.
func AverageColorForRect(img image.Image, rect image.Rectangle, fallback color.RGBA) color.RGBA {
	bounds := img.Bounds().Intersect(rect)
	if bounds.Empty() {
		return fallback
	}

	var sumR, sumG, sumB, sumA uint64
	count := uint64(0)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
			sumA += uint64(a >> 8)
			count++
		}
	}
	if count == 0 {
		return fallback
	}

	return color.RGBA{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
		A: uint8(sumA / count),
	}
}

// ColorToRGBString formats c as an SVG "rgb(r,g,b)" fill value.
func ColorToRGBString(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// backgroundColorForWord maps a Word's canvas-space bounding box into the
// background image's pixel space and averages the color underneath it,
// mirroring the original's get_color_for_word multiplier (the background
// image may be a different resolution than the canvas).
func backgroundColorForWord(img image.Image, dims Dimensions, bbox Rect[float32]) color.RGBA {
	smaller := dims.Width
	if dims.Height < smaller {
		smaller = dims.Height
	}
	if smaller == 0 {
		return color.RGBA{}
	}

	multiplier := float64(img.Bounds().Dx()) / float64(smaller)

	rect := image.Rect(
		int(float64(bbox.Min.X)*multiplier),
		int(float64(bbox.Min.Y)*multiplier),
		int(float64(bbox.Max.X)*multiplier),
		int(float64(bbox.Max.Y)*multiplier),
	)
	return AverageColorForRect(img, rect, color.RGBA{})
}
