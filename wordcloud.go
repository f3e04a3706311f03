package wordcloud

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"time"
)

// ErrMissingFontSet is returned by WordCloudBuilder.Build when no font set
// was provided.
var ErrMissingFontSet = errors.New("wordcloud: font set is required")

// ErrMissingDimensions is returned by WordCloudBuilder.Build when the
// canvas has zero width or height.
var ErrMissingDimensions = errors.New("wordcloud: dimensions are required")

// WordCloud lays words out on a fixed-size canvas and renders the result
// to SVG, grounded on the teacher's Processor: a configuration struct
// assembled through a builder, exposing a single entry-point operation
// (there: Process, here: WriteContent) plus export methods.
type WordCloud struct {
	dims    Dimensions
	fonts   *FontSet
	bgImage image.Image
	seed    int64
	debug   bool

	engine *Engine
}

// WordCloudBuilder assembles a WordCloud through fluent configuration
// calls, matching spec §6's required builder surface.
type WordCloudBuilder struct {
	dims    Dimensions
	fonts   *FontSet
	bgImage image.Image
	seed    int64
	seedSet bool
	debug   bool
	workers int
}

// NewBuilder returns an empty WordCloudBuilder.
func NewBuilder() *WordCloudBuilder {
	return &WordCloudBuilder{}
}

// Dimensions sets the output canvas size, in pixels.
func (b *WordCloudBuilder) Dimensions(width, height int) *WordCloudBuilder {
	b.dims = Dimensions{Width: width, Height: height}
	return b
}

// FontSet sets the fonts available for shaping.
func (b *WordCloudBuilder) FontSet(fonts *FontSet) *WordCloudBuilder {
	b.fonts = fonts
	return b
}

// Image sets an optional background image; its edges become forbidden
// placement regions and its colors tint placed words.
func (b *WordCloudBuilder) Image(img image.Image) *WordCloudBuilder {
	b.bgImage = img
	return b
}

// Seed fixes the base PRNG seed so a run is reproducible. Omitting this
// call seeds from the current time instead.
func (b *WordCloudBuilder) Seed(seed int64) *WordCloudBuilder {
	b.seed = seed
	b.seedSet = true
	return b
}

// Debug stores the debug flag on the WordCloud. ExportDebugToFolder does
// not consult it: it writes its overlay files whenever it is called.
func (b *WordCloudBuilder) Debug(debug bool) *WordCloudBuilder {
	b.debug = debug
	return b
}

// Workers overrides the number of concurrent placement workers used once
// the first 20 words have been placed sequentially. Zero (the default)
// uses runtime.NumCPU(), falling back to 4.
func (b *WordCloudBuilder) Workers(n int) *WordCloudBuilder {
	b.workers = n
	return b
}

// Build validates the configuration and constructs a WordCloud, building
// the forbidden-region tree from the background image (if any).
func (b *WordCloudBuilder) Build() (*WordCloud, error) {
	if b.fonts == nil || len(b.fonts.Fonts()) == 0 {
		return nil, ErrMissingFontSet
	}
	if b.dims.Width <= 0 || b.dims.Height <= 0 {
		return nil, ErrMissingDimensions
	}

	seed := b.seed
	if !b.seedSet {
		seed = time.Now().UnixNano()
	}

	var forbidden *ForbiddenTree
	if b.bgImage != nil {
		depth := NeededTreeDepth(b.dims.Width, b.dims.Height)
		bounds := image.Rect(0, 0, b.dims.Width, b.dims.Height)
		producer := NewSobelEdgeProducer(b.bgImage, 10)
		tree, err := BuildForbiddenTree(producer, bounds, depth)
		if err != nil {
			return nil, fmt.Errorf("wordcloud: building forbidden region: %w", err)
		}
		forbidden = tree
	}

	engine := NewEngine(b.dims, b.fonts, forbidden)
	engine.Workers = b.workers

	wc := &WordCloud{
		dims:    b.dims,
		fonts:   b.fonts,
		bgImage: b.bgImage,
		seed:    seed,
		debug:   b.debug,
		engine:  engine,
	}
	return wc, nil
}

// WriteContent shapes and places the top maxWordCount words from content by
// descending count, deriving each word's font size from spec §6's log2
// scale formula. Words whose script has no supporting font, or whose text
// shapes to zero glyphs, are logged and skipped rather than aborting the
// whole run.
func (wc *WordCloud) WriteContent(content RankedWords, maxWordCount int) {
	if maxWordCount <= 0 || maxWordCount > len(content) {
		maxWordCount = len(content)
	}
	top := content[:maxWordCount]
	if len(top) == 0 {
		return
	}

	maxCount := top[0].Count
	for _, w := range top {
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	canvasWidth := float64(wc.dims.Width)
	log2Max := math.Log2(float64(maxCount))

	words := make([]*Word, 0, len(top))
	for _, rw := range top {
		scale := scaleFor(rw.Count, maxCount, log2Max, canvasWidth, len(rw.Text))
		word, err := BuildWord(rw.Text, wc.fonts, float32(scale), Point[float32]{}, RotationZero)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordcloud: skipping %q: %v\n", rw.Text, err)
			continue
		}
		words = append(words, word)
	}

	wc.engine.PlaceAll(words, wc.seed)
}

// scaleFor derives a word's target font size per spec §6: the upper bound
// on size for a string of this length on this canvas, scaled by the
// logarithm of its relative frequency, floored at 10.
func scaleFor(count, maxCount int, log2Max, canvasWidth float64, textLen int) float64 {
	if textLen == 0 {
		return 10
	}
	upperBound := canvasWidth * 0.8 / float64(textLen)
	var ratio float64
	if log2Max > 0 {
		ratio = math.Log2(float64(count)) / log2Max
	} else {
		ratio = 1
	}
	scale := ratio * upperBound
	if scale < 10 {
		scale = 10
	}
	return scale
}
