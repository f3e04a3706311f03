package wordcloud

import (
	"bytes"
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontType identifies a font container format, used only to pick the
// correct @font-face embed MIME tag in text-mode SVG export.
type FontType int

const (
	FontTypeOTF FontType = iota
	FontTypeTTF
	FontTypeWOFF
	FontTypeWOFF2
)

// EmbedTag returns the MIME type used in an @font-face data: URI.
func (t FontType) EmbedTag() string {
	switch t {
	case FontTypeOTF:
		return "application/font-otf"
	case FontTypeTTF:
		return "application/font-ttf"
	case FontTypeWOFF:
		return "application/font-woff"
	case FontTypeWOFF2:
		return "application/font-woff2"
	default:
		return "application/octet-stream"
	}
}

var (
	// ErrFontLoadFailed is returned when font bytes could not be parsed by
	// golang.org/x/image/font/sfnt.
	ErrFontLoadFailed = errors.New("wordcloud: font load failed")

	// ErrUnsupportedContainer is returned for a recognized-but-unsupported
	// magic byte sequence (WOFF/WOFF2: no decoder is available without
	// vendoring a dedicated conversion library).
	ErrUnsupportedContainer = errors.New("wordcloud: unsupported font container")
)

// Font wraps a parsed sfnt.Font together with the data needed to embed it
// in text-mode SVG output and the set of Unicode scripts it can shape.
type Font struct {
	Name string

	sf       *sfnt.Font
	fontType FontType
	raw      []byte
	scripts  map[string]bool
	buf      sfnt.Buffer
}

// LoadFont parses font bytes, detecting the container by magic number. WOFF
// and WOFF2 are recognized so a FontSet can still carry them (and name them
// in export metadata), but Shape on such a font fails with
// ErrUnsupportedContainer: no WOFF/WOFF2-to-TTF decoder exists anywhere in
// this module's dependency surface, and this module does not invent one.
func LoadFont(name string, data []byte) (*Font, error) {
	if len(data) < 4 {
		return nil, ErrFontLoadFailed
	}

	var ftype FontType
	switch {
	case bytes.Equal(data[0:4], []byte{0x00, 0x01, 0x00, 0x00}):
		ftype = FontTypeTTF
	case bytes.Equal(data[0:4], []byte("OTTO")):
		ftype = FontTypeOTF
	case bytes.Equal(data[0:4], []byte("true")):
		ftype = FontTypeTTF
	case bytes.Equal(data[0:4], []byte("wOFF")):
		ftype = FontTypeWOFF
	case bytes.Equal(data[0:4], []byte("wOF2")):
		ftype = FontTypeWOFF2
	default:
		return nil, ErrFontLoadFailed
	}

	f := &Font{
		Name:     name,
		fontType: ftype,
		raw:      data,
		scripts:  map[string]bool{"Common": true},
	}

	if ftype == FontTypeWOFF || ftype == FontTypeWOFF2 {
		return f, nil
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoadFailed, err)
	}
	f.sf = sf
	f.identifyScripts()
	return f, nil
}

// identifyScripts walks the Basic Multilingual Plane and records, for every
// rune the font's charmap resolves to a real glyph, which Unicode script
// that rune belongs to. No third-party script-detection crate exists in
// the corpus, and the standard library's unicode.Scripts is already
// authoritative, so no substitute library is wired for this concern.
func (f *Font) identifyScripts() {
	for r := rune(0x20); r < 0xFFFF; r++ {
		idx, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil || idx == 0 {
			continue
		}
		f.scripts[scriptNameForRune(r)] = true
	}
}

// SupportsScript reports whether this font declares coverage of the named
// Unicode script (or the Common fallback).
func (f *Font) SupportsScript(script string) bool {
	return f.scripts[script] || f.scripts["Common"]
}

// FontType reports the container format this font was parsed from.
func (f *Font) FontType() FontType { return f.fontType }

// Raw returns the original font bytes, for text-mode @font-face embedding.
func (f *Font) Raw() []byte { return f.raw }

// GlyphOp names a glyph outline instruction, translated from sfnt.Segment's
// Op so that callers outside this file never import golang.org/x/image/font/sfnt
// directly.
type GlyphOp int

const (
	GlyphOpMoveTo GlyphOp = iota
	GlyphOpLineTo
	GlyphOpQuadTo
	GlyphOpCubeTo
)

// GlyphCommand is one outline instruction, with up to three argument points
// depending on Op (1 for MoveTo/LineTo, 2 for QuadTo, 3 for CubeTo).
type GlyphCommand struct {
	Op   GlyphOp
	Args [3]Point[float32]
}

// Glyph carries one shaped glyph's outline and advance, in pixel units at
// the requested size, with y increasing upward (sfnt's native convention;
// the caller mirrors into canvas space).
type Glyph struct {
	Rune     rune
	Commands []GlyphCommand
	Advance  float32
	Bounds   Rect[float32]
}

// Shape renders text through this font at the given pixel size, returning
// one Glyph per rune with outlines in canvas-scale font units.
func (f *Font) Shape(text []rune, size float32) ([]Glyph, error) {
	if f.sf == nil {
		return nil, fmt.Errorf("%w: %s has no decoder", ErrUnsupportedContainer, f.Name)
	}

	scale := fixed.Int26_6(0.5 + (float64(size) * 72 * 64 / 72))
	glyphs := make([]Glyph, 0, len(text))

	// A per-call buffer: placement workers may shape through the same Font
	// concurrently, and an sfnt.Buffer must not be shared between them.
	var buf sfnt.Buffer
	for _, r := range text {
		idx, err := f.sf.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph index for %q: %v", ErrFontLoadFailed, r, err)
		}

		advance, err := f.sf.GlyphAdvance(&buf, idx, scale, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph advance for %q: %v", ErrFontLoadFailed, r, err)
		}

		segs, err := f.sf.LoadGlyph(&buf, idx, scale, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: load glyph for %q: %v", ErrFontLoadFailed, r, err)
		}

		bounds := segs.Bounds()
		cmds := make([]GlyphCommand, len(segs))
		for i, seg := range segs {
			var cmd GlyphCommand
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				cmd.Op = GlyphOpMoveTo
				cmd.Args[0] = fixedPoint(seg.Args[0])
			case sfnt.SegmentOpLineTo:
				cmd.Op = GlyphOpLineTo
				cmd.Args[0] = fixedPoint(seg.Args[0])
			case sfnt.SegmentOpQuadTo:
				cmd.Op = GlyphOpQuadTo
				cmd.Args[0] = fixedPoint(seg.Args[0])
				cmd.Args[1] = fixedPoint(seg.Args[1])
			case sfnt.SegmentOpCubeTo:
				cmd.Op = GlyphOpCubeTo
				cmd.Args[0] = fixedPoint(seg.Args[0])
				cmd.Args[1] = fixedPoint(seg.Args[1])
				cmd.Args[2] = fixedPoint(seg.Args[2])
			}
			cmds[i] = cmd
		}

		glyphs = append(glyphs, Glyph{
			Rune:     r,
			Commands: cmds,
			Advance:  fixedToFloat(advance),
			Bounds: Rect[float32]{
				Min: Point[float32]{X: fixedToFloat(bounds.Min.X), Y: fixedToFloat(bounds.Min.Y)},
				Max: Point[float32]{X: fixedToFloat(bounds.Max.X), Y: fixedToFloat(bounds.Max.Y)},
			},
		})
	}

	return glyphs, nil
}

func fixedPoint(p fixed.Point26_6) Point[float32] {
	return Point[float32]{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// FontSet selects a Font for a given script, falling back to its first
// member when none declares explicit coverage.
type FontSet struct {
	fonts []*Font
}

// FontSetBuilder accumulates Fonts by name, skipping duplicates, mirroring
// the original's push/extend/build chain.
type FontSetBuilder struct {
	fonts []*Font
	seen  map[string]bool
}

// NewFontSetBuilder returns an empty FontSetBuilder.
func NewFontSetBuilder() *FontSetBuilder {
	return &FontSetBuilder{seen: map[string]bool{}}
}

// Push adds font to the set under construction, silently skipping a
// duplicate name.
func (b *FontSetBuilder) Push(font *Font) *FontSetBuilder {
	if b.seen[font.Name] {
		return b
	}
	b.seen[font.Name] = true
	b.fonts = append(b.fonts, font)
	return b
}

// Extend adds every font in fonts, in order.
func (b *FontSetBuilder) Extend(fonts []*Font) *FontSetBuilder {
	for _, f := range fonts {
		b.Push(f)
	}
	return b
}

// Build finalizes the FontSet. It returns an error rather than panicking
// when empty, since this module exposes Build through a public API.
func (b *FontSetBuilder) Build() (*FontSet, error) {
	if len(b.fonts) == 0 {
		return nil, errors.New("wordcloud: at least one font is required")
	}
	return &FontSet{fonts: b.fonts}, nil
}

// Pick selects the first Font whose own coverage includes script, falling
// back to the first Font that declares the "Common" script. Every loaded
// font declares "Common", so ok is false only for a set with no fonts.
func (fs *FontSet) Pick(script string) (*Font, bool) {
	for _, f := range fs.fonts {
		if f.scripts[script] {
			return f, true
		}
	}
	for _, f := range fs.fonts {
		if f.SupportsScript(script) {
			return f, true
		}
	}
	return nil, false
}

// Fonts returns every Font in the set, in insertion order.
func (fs *FontSet) Fonts() []*Font {
	return fs.fonts
}

// GuessScript returns the Unicode script name of the first rune of s, or
// "Common" for an empty string.
func GuessScript(s string) string {
	for _, r := range s {
		return scriptNameForRune(r)
	}
	return "Common"
}

func scriptNameForRune(r rune) string {
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return name
		}
	}
	return "Common"
}
