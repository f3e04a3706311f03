package wordcloud

// Test fixtures shared across this package's white-box tests. Real font
// shaping needs a parsed sfnt.Font, and no font binary lives anywhere in
// this module's dependency surface, so these fixtures build Words and
// Fonts directly from their exported/internal fields instead of going
// through LoadFont/BuildWord. Every fixture word is a row of size x size
// squares, one per rune, advancing by size*1.2 along x: real enough
// geometry to exercise bounding boxes and collision segments without
// needing an actual glyph outline.

// newFixtureFont returns a Font usable for SVG export and FontSet lookups.
// Its sf field stays nil, so Shape always fails on it; fixture words are
// built directly by newSquareWord instead of through BuildWord.
func newFixtureFont(name string) *Font {
	return &Font{
		Name:     name,
		fontType: FontTypeTTF,
		raw:      []byte("fixture-font:" + name),
		scripts:  map[string]bool{"Common": true},
	}
}

// newSquareWord builds a Word whose glyphs are synthetic squares, without
// shaping through any font.
func newSquareWord(text string, size float32, rotation Rotation, font *Font) *Word {
	runes := []rune(text)
	glyphs := make([]*Letter, 0, len(runes))

	var advance float32
	step := size * 1.2
	for _, r := range runes {
		letter := NewLetter(r, Point[float32]{X: advance, Y: 0}, rotation)
		letter.MoveTo(Point[float32]{X: 0, Y: 0})
		letter.LineTo(Point[float32]{X: size, Y: 0})
		letter.LineTo(Point[float32]{X: size, Y: size})
		letter.LineTo(Point[float32]{X: 0, Y: size})
		letter.Close()
		letter.PixelBBox = Rect[float32]{
			Min: Point[float32]{X: advance, Y: 0},
			Max: Point[float32]{X: advance + size, Y: size},
		}
		letter.Simplify()

		glyphs = append(glyphs, letter)
		advance += step
	}

	w := &Word{
		Text:     text,
		Glyphs:   glyphs,
		Scale:    size,
		Rotation: rotation,
		UsedFont: font,
	}
	w.MoveWord(Point[float32]{})
	return w
}
