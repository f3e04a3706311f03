package wordcloud

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"os"
	"strings"
)

// colorForWord samples the background image under word's bounding box, or
// returns transparent black if no background image was set, mirroring
// get_color_for_word.
func (wc *WordCloud) colorForWord(word *Word) color.RGBA {
	if wc.bgImage == nil {
		return color.RGBA{}
	}
	return backgroundColorForWord(wc.bgImage, wc.dims, word.BoundingBox)
}

func (wc *WordCloud) svgHeader() string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		wc.dims.Width, wc.dims.Height, wc.dims.Width, wc.dims.Height,
	)
}

// ExportRendered renders every placed word as an SVG <path>, tracing its
// glyph outlines (the draw program, curves included). Bigger output than ExportText, but
// renders identically regardless of whether the viewer has the font
// installed.
func (wc *WordCloud) ExportRendered() (string, error) {
	var b strings.Builder
	b.WriteString(wc.svgHeader())

	for _, word := range wc.engine.Placed() {
		col := wc.colorForWord(word)
		fmt.Fprintf(&b, `<path d="%s" fill="%s" stoke="none"/>`,
			escapeAttr(word.D()), ColorToRGBString(col))
	}

	b.WriteString("</svg>")
	return b.String(), nil
}

// ExportRenderedToFile writes ExportRendered's output to filename.
func (wc *WordCloud) ExportRenderedToFile(filename string) error {
	s, err := wc.ExportRendered()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(s), 0644)
}

// ExportText renders every placed word as an SVG <text> element, grouped
// by font under a <g> with an accompanying base64-embedded @font-face
// <style>. Preferred over ExportRendered in most cases: much smaller
// output, and text stays selectable.
func (wc *WordCloud) ExportText() (string, error) {
	var b strings.Builder
	b.WriteString(wc.svgHeader())

	groups, order := groupByFont(wc.engine.Placed())
	for _, font := range order {
		enc := base64.StdEncoding.EncodeToString(font.Raw())
		fmt.Fprintf(&b, `<style>@font-face{font-family:"%s";src:url("data:%s;charset=utf-8;base64,%s");}</style>`,
			font.Name, font.FontType().EmbedTag(), enc)

		fmt.Fprintf(&b, `<g font-family="%s">`, font.Name)
		for _, word := range groups[font] {
			col := wc.colorForWord(word)
			style := ""
			if word.Rotation != RotationZero {
				style = fmt.Sprintf(` style="transform: rotate(%ddeg); transform-origin: %gpx %gpx"`,
					word.Rotation.Degrees(), word.Offset.X, word.Offset.Y)
			}
			fmt.Fprintf(&b, `<text x="%g" y="%g" fill="%s" font-size="%g"%s>%s</text>`,
				word.Offset.X, word.Offset.Y, ColorToRGBString(col), word.Scale, style, escapeText(word.Text))
		}
		b.WriteString("</g>")
	}

	b.WriteString("</svg>")
	return b.String(), nil
}

// ExportTextToFile writes ExportText's output to filename.
func (wc *WordCloud) ExportTextToFile(filename string) error {
	s, err := wc.ExportText()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(s), 0644)
}

// groupByFont partitions words by the font they were shaped with,
// preserving first-seen font order so output is deterministic across runs
// with the same input.
func groupByFont(words []*Word) (map[*Font][]*Word, []*Font) {
	groups := map[*Font][]*Word{}
	var order []*Font
	for _, w := range words {
		if _, seen := groups[w.UsedFont]; !seen {
			order = append(order, w.UsedFont)
		}
		groups[w.UsedFont] = append(groups[w.UsedFont], w)
	}
	return groups, order
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
