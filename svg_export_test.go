package wordcloud

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestWordCloud(dims Dimensions) *WordCloud {
	return &WordCloud{
		dims:   dims,
		engine: NewEngine(dims, nil, nil),
	}
}

func TestExportRendered_EmitsOnePathPerPlacedWord(t *testing.T) {
	wc := newTestWordCloud(Dimensions{Width: 200, Height: 200})
	w := newSquareWord("hi", 20, RotationZero, nil)
	w.MoveWord(Point[float32]{X: 10, Y: 10})
	wc.engine.placed.Insert(cellArea(w.BoundingBox), w)

	out, err := wc.ExportRendered()

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Contains(t, out, `stoke="none"`)
}

func TestExportText_EmbedsFontFaceAndGroupsByFont(t *testing.T) {
	wc := newTestWordCloud(Dimensions{Width: 200, Height: 200})

	fontA := newFixtureFont("Sans")
	wordA1 := newSquareWord("foo", 20, RotationZero, fontA)
	wordA2 := newSquareWord("bar", 20, RotationZero, fontA)
	wordA1.MoveWord(Point[float32]{X: 10, Y: 10})
	wordA2.MoveWord(Point[float32]{X: 50, Y: 50})

	wc.engine.placed.Insert(cellArea(wordA1.BoundingBox), wordA1)
	wc.engine.placed.Insert(cellArea(wordA2.BoundingBox), wordA2)

	out, err := wc.ExportText()

	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "@font-face"), "words sharing a font collapse into one font-face block")
	assert.Equal(t, 1, strings.Count(out, `font-family="Sans"`))
	assert.Equal(t, 2, strings.Count(out, "<text"))

	wantB64 := base64.StdEncoding.EncodeToString(fontA.Raw())
	assert.Contains(t, out, wantB64)
}

func TestExportText_RotatedWordCarriesTransformOrigin(t *testing.T) {
	wc := newTestWordCloud(Dimensions{Width: 200, Height: 200})
	font := newFixtureFont("Serif")
	w := newSquareWord("spin", 20, RotationNinety, font)
	w.MoveWord(Point[float32]{X: 30, Y: 40})

	wc.engine.placed.Insert(cellArea(w.BoundingBox), w)

	out, err := wc.ExportText()

	assert.NoError(t, err)
	assert.Contains(t, out, "transform: rotate(90deg)")
	assert.Contains(t, out, "transform-origin: 30px 40px")
}

func TestExportText_UprightWordHasNoTransform(t *testing.T) {
	wc := newTestWordCloud(Dimensions{Width: 200, Height: 200})
	font := newFixtureFont("Serif")
	w := newSquareWord("steady", 20, RotationZero, font)

	wc.engine.placed.Insert(cellArea(w.BoundingBox), w)

	out, err := wc.ExportText()

	assert.NoError(t, err)
	assert.NotContains(t, out, "transform:")
}

func TestEscapeText_EscapesAngleBracketsAndAmpersand(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt;", escapeText("a & b <c>"))
}

func TestEscapeAttr_EscapesQuotesAndAmpersand(t *testing.T) {
	assert.Equal(t, "a &amp; b &quot;c&quot;", escapeAttr(`a & b "c"`))
}
