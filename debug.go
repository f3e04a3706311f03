package wordcloud

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var debugPalette = []string{
	"black", "gray", "silver", "maroon", "red", "purple", "fuchsia", "green",
	"lime", "olive", "yellow", "navy", "blue", "teal", "aqua",
}

// ExportDebugToFolder writes up to three SVG overlay files into dir
// (created if missing): background_collision.svg and
// result_on_background.svg (only when a background image was set) and
// collidables.svg, mirroring export_debug_to_folder. Intended for
// debugging placement behavior, not production output.
func (wc *WordCloud) ExportDebugToFolder(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("wordcloud: creating debug folder: %w", err)
	}

	if wc.engine.Forbidden != nil {
		if err := os.WriteFile(filepath.Join(dir, "background_collision.svg"), []byte(wc.debugBackgroundCollision()), 0644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "result_on_background.svg"), []byte(wc.debugResultOnBackground()), 0644); err != nil {
			return err
		}
	}

	return os.WriteFile(filepath.Join(dir, "collidables.svg"), []byte(wc.debugCollidables()), 0644)
}

// debugBackgroundCollision draws every forbidden-tree cell as a randomly
// colored rectangle, so gaps in edge detection are visually obvious.
func (wc *WordCloud) debugBackgroundCollision() string {
	var b strings.Builder
	b.WriteString(wc.svgHeader())

	for _, entry := range wc.engine.Forbidden.All() {
		col := debugPalette[rand.Intn(len(debugPalette))]
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" stroke="black" stroke-width="1px" fill="%s"/>`,
			entry.Area.X*Cell, entry.Area.Y*Cell, entry.Area.W*Cell, entry.Area.H*Cell, col)
	}

	b.WriteString("</svg>")
	return b.String()
}

// debugResultOnBackground overlays every forbidden-tree cell (no fill
// attribute, so SVG's default black fill) with every placed word's rendered path, so
// collisions between placement and the background's edges are visible at
// a glance.
func (wc *WordCloud) debugResultOnBackground() string {
	var b strings.Builder
	b.WriteString(wc.svgHeader())

	for _, entry := range wc.engine.Forbidden.All() {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d"/>`,
			entry.Area.X*Cell, entry.Area.Y*Cell, entry.Area.W*Cell, entry.Area.H*Cell)
	}

	for _, word := range wc.engine.Placed() {
		fmt.Fprintf(&b, `<path d="%s" fill="gray" stoke="none"/>`, escapeAttr(word.D()))
	}

	b.WriteString("</svg>")
	return b.String()
}

// debugCollidables draws every glyph's collision segments (black) and
// relative bounding box (green outline), plus each word's overall bounding
// box (red outline), matching debug_collidables exactly.
func (wc *WordCloud) debugCollidables() string {
	var b strings.Builder
	b.WriteString(wc.svgHeader())

	for _, word := range wc.engine.Placed() {
		for _, glyph := range word.Glyphs {
			for _, line := range glyph.AbsoluteCollidables(word.Rotation, word.Offset) {
				fmt.Fprintf(&b, `<path stroke="black" stroke-width="1" d="M %g %g L %g %g Z"/>`,
					line.Start.X, line.Start.Y, line.End.X, line.End.Y)
			}

			r := glyph.RelativeBoundingBox(word.Rotation).Add(word.Offset)
			fmt.Fprintf(&b, `<rect stroke="green" stroke-width="1" fill="none" x="%g" y="%g" width="%g" height="%g"/>`,
				r.Min.X, r.Min.Y, r.Width(), r.Height())
		}

		fmt.Fprintf(&b, `<rect stroke="red" stroke-width="1" fill="none" x="%g" y="%g" width="%g" height="%g"/>`,
			word.BoundingBox.Min.X, word.BoundingBox.Min.Y, word.BoundingBox.Width(), word.BoundingBox.Height())
	}

	b.WriteString("</svg>")
	return b.String()
}
