package wordcloud

import (
	"errors"
	"fmt"
)

// collisionMargin is the pixel margin by which a Word's bounding box is
// extended for the initial overlap gate against another Word's bounding
// box, before any per-glyph scan runs.
const collisionMargin float32 = 5.0

// glyphScanMargin is the smaller margin applied to w's bounding box during
// the final per-glyph segment scan, distinct from the wider gate above.
const glyphScanMargin float32 = 2.0

// containmentRayMargin extends the vertical probe rays used by the
// point-in-polygon containment check beyond the containing word's bounding
// box, so the rays are guaranteed to start outside it.
const containmentRayMargin float32 = 10.0

// Word is one laid-out piece of text: its shaped glyphs, combined bounding
// box, and placement offset on the canvas.
type Word struct {
	Text        string
	Glyphs      []*Letter
	Offset      Point[float32]
	BoundingBox Rect[float32]
	Scale       float32
	Rotation    Rotation
	UsedFont    *Font
}

// ErrEmptyWord is returned by BuildWord when text shapes to zero glyphs.
var ErrEmptyWord = errors.New("wordcloud: word has no glyphs")

// ErrScriptUnsupported is returned by BuildWord when no font in the set
// declares coverage of text's guessed script.
var ErrScriptUnsupported = errors.New("wordcloud: no font found which supports script")

// BuildWord shapes text through the font set, picking a font by the script
// of its first rune, and assembles a Word ready for placement. Every
// glyph's outline is converted into canvas-frame draw commands: sfnt
// outlines arrive y-up with advance-relative positioning, so each glyph is
// mirrored about y and pixel-bounding boxes are renormalized before the
// Word's own bounding box is derived.
func BuildWord(text string, fontSet *FontSet, fontSize float32, start Point[float32], rotation Rotation) (*Word, error) {
	script := GuessScript(text)
	font, ok := fontSet.Pick(script)
	if !ok {
		return nil, fmt.Errorf("%w %q: %q", ErrScriptUnsupported, script, text)
	}

	runes := []rune(text)
	shaped, err := font.Shape(runes, fontSize)
	if err != nil {
		return nil, err
	}

	glyphs := make([]*Letter, 0, len(shaped))
	var advance float32
	for _, g := range shaped {
		bbox := Rect[float32]{
			Min: Point[float32]{X: g.Bounds.Min.X + advance, Y: g.Bounds.Min.Y},
			Max: Point[float32]{X: g.Bounds.Max.X + advance, Y: g.Bounds.Max.Y},
		}

		letter := NewLetter(g.Rune, Point[float32]{X: advance, Y: 0}, rotation)
		letter.PixelBBox = bbox

		for _, cmd := range g.Commands {
			switch cmd.Op {
			case GlyphOpMoveTo:
				letter.MoveTo(cmd.Args[0])
			case GlyphOpLineTo:
				letter.LineTo(cmd.Args[0])
			case GlyphOpQuadTo:
				letter.QuadTo(cmd.Args[0], cmd.Args[1])
			case GlyphOpCubeTo:
				letter.CurveTo(cmd.Args[0], cmd.Args[1], cmd.Args[2])
			}
		}

		advance += g.Advance
		glyphs = append(glyphs, letter)
	}

	if len(glyphs) == 0 {
		return nil, ErrEmptyWord
	}

	for _, g := range glyphs {
		g.mirrorY()
		g.Simplify()
	}

	w := &Word{
		Text:     text,
		Glyphs:   glyphs,
		Offset:   start,
		Scale:    fontSize,
		Rotation: rotation,
		UsedFont: font,
	}
	w.recalculateBoundingBox()
	return w, nil
}

// recalculateBoundingBox derives BoundingBox from the first and last
// glyph's horizontal extent and every glyph's vertical extent, rotates the
// result, and translates it by Offset.
func (w *Word) recalculateBoundingBox() {
	first, last := w.Glyphs[0], w.Glyphs[len(w.Glyphs)-1]

	maxY := float32(0)
	minY := float32(3.4e38) // float32 max, mirrors the original's f32::MAX seed
	for _, g := range w.Glyphs {
		if g.PixelBBox.Max.Y > maxY {
			maxY = g.PixelBBox.Max.Y
		}
		if g.PixelBBox.Min.Y < minY {
			minY = g.PixelBBox.Min.Y
		}
	}

	base := Rect[float32]{
		Min: Point[float32]{X: first.PixelBBox.Min.X, Y: minY},
		Max: Point[float32]{X: last.PixelBBox.Max.X, Y: maxY},
	}

	rotated := w.Rotation.RotateRect(base)
	w.BoundingBox = rotated.Add(w.Offset)
}

// MoveWord relocates the word to newPosition without reshaping its glyphs.
func (w *Word) MoveWord(newPosition Point[float32]) {
	w.Offset = newPosition
	w.recalculateBoundingBox()
}

// collidables returns every glyph's collision segments in canvas-absolute
// coordinates.
func (w *Word) collidables() []Line {
	var lines []Line
	for _, g := range w.Glyphs {
		lines = append(lines, g.AbsoluteCollidables(w.Rotation, w.Offset)...)
	}
	return lines
}

// D returns the concatenated SVG path "d" attribute for every glyph in the
// word.
func (w *Word) D() string {
	var d string
	for _, g := range w.Glyphs {
		d += g.D(w.Offset)
	}
	return d
}

// WordIntersect reports whether w collides with other. Nothing collides
// unless w's bounding box, extended by collisionMargin, overlaps other's
// bounding box. Past that gate, w collides when it sits inside other's
// text (detected by an odd-crossing ray cast through other's glyph
// outlines), or when one of other's glyph segments crosses w's bounding
// box extended by glyphScanMargin.
func (w *Word) WordIntersect(other *Word) bool {
	if !w.BoundingBox.Extend(collisionMargin).Overlaps(other.BoundingBox) {
		return false
	}

	if other.BoundingBox.Contains(w.BoundingBox) {
		mid := Point[float32]{
			X: w.BoundingBox.Min.X + w.BoundingBox.Width()/2,
			Y: w.BoundingBox.Min.Y + w.BoundingBox.Height()/2,
		}
		highLine := Line{Start: mid, End: Point[float32]{X: mid.X, Y: other.BoundingBox.Min.Y - containmentRayMargin}}
		lowLine := Line{Start: mid, End: Point[float32]{X: mid.X, Y: other.BoundingBox.Max.Y + containmentRayMargin}}

		colHigh, colLow := 0, 0
		for _, c := range other.collidables() {
			if collideLineLine(c, highLine) {
				colHigh++
			}
			if collideLineLine(c, lowLine) {
				colLow++
			}
		}
		if colHigh%2 == 1 || colLow%2 == 1 {
			return true
		}
	}

	for _, g := range other.Glyphs {
		bbox := g.RelativeBoundingBox(other.Rotation).Add(other.Offset)
		if !w.BoundingBox.Overlaps(bbox) {
			continue
		}
		extended := w.BoundingBox.Extend(glyphScanMargin)
		for _, l := range g.AbsoluteCollidables(other.Rotation, other.Offset) {
			if extended.IntersectsSegment(l.Start, l.End) {
				return true
			}
		}
	}

	return false
}
