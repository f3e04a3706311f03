package wordcloud

import (
	"fmt"
	"strings"
)

// SVGCommand is a single drawing instruction in a glyph's draw program, in
// canvas-frame coordinates (before translation by a Word's offset).
// Flattening dispatches over it with an exhaustive type switch across the
// five concrete shapes; path emission calls its appendTo and
// lengthEstimate methods.
type SVGCommand interface {
	appendTo(offset Point[float32], b *strings.Builder)
	lengthEstimate() int
}

// MoveCmd lifts the pen to Position without drawing.
type MoveCmd struct {
	Position Point[float32]
}

// LineCmd draws a straight segment from Start to End.
type LineCmd struct {
	Start, End Point[float32]
}

// QuadCurveCmd draws a quadratic Bézier from the current pen position
// (Start) through control point Ctrl to End.
type QuadCurveCmd struct {
	Start, Ctrl, End Point[float32]
}

// CubicCurveCmd draws a cubic Bézier from Start through Ctrl1, Ctrl2 to End.
type CubicCurveCmd struct {
	Start, Ctrl1, Ctrl2, End Point[float32]
}

// CloseCmd closes the current subpath (draw-program token only; the
// closing segment itself is emitted as a preceding LineCmd).
type CloseCmd struct{}

func fmtFloat(f float32) string {
	return fmt.Sprintf("%.2f", f)
}

func (c MoveCmd) appendTo(offset Point[float32], b *strings.Builder) {
	b.WriteString("M ")
	b.WriteString(fmtFloat(c.Position.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.Position.Y + offset.Y))
}

func (c MoveCmd) lengthEstimate() int { return 3 + 7 + 7 }

func (c LineCmd) appendTo(offset Point[float32], b *strings.Builder) {
	b.WriteString("L ")
	b.WriteString(fmtFloat(c.End.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.End.Y + offset.Y))
}

func (c LineCmd) lengthEstimate() int { return 3 + 7 + 7 }

func (c QuadCurveCmd) appendTo(offset Point[float32], b *strings.Builder) {
	b.WriteString("Q ")
	b.WriteString(fmtFloat(c.Ctrl.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.Ctrl.Y + offset.Y))
	b.WriteByte(',')
	b.WriteString(fmtFloat(c.End.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.End.Y + offset.Y))
}

func (c QuadCurveCmd) lengthEstimate() int { return 3 + 7 + 7 + 3 + 7 + 7 }

func (c CubicCurveCmd) appendTo(offset Point[float32], b *strings.Builder) {
	b.WriteString("C ")
	b.WriteString(fmtFloat(c.Ctrl1.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.Ctrl1.Y + offset.Y))
	b.WriteByte(',')
	b.WriteString(fmtFloat(c.Ctrl2.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.Ctrl2.Y + offset.Y))
	b.WriteByte(',')
	b.WriteString(fmtFloat(c.End.X + offset.X))
	b.WriteByte(' ')
	b.WriteString(fmtFloat(c.End.Y + offset.Y))
}

func (c CubicCurveCmd) lengthEstimate() int { return 3 + 7 + 7 + 3 + 7 + 7 + 3 + 7 + 7 }

func (c CloseCmd) appendTo(_ Point[float32], b *strings.Builder) { b.WriteByte('Z') }
func (c CloseCmd) lengthEstimate() int                           { return 1 }

// pathD concatenates cmds into an SVG path "d" attribute value, translated
// by offset.
func pathD(cmds []SVGCommand, offset Point[float32]) string {
	total := 0
	for _, c := range cmds {
		total += c.lengthEstimate()
	}
	var b strings.Builder
	b.Grow(total)
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.appendTo(offset, &b)
	}
	return b.String()
}

// flattenCommands reduces a glyph's draw program to a list of line segments
// approximating its outline, for use as collision primitives. Move commands
// contribute no segment; Close commands are assumed to already have an
// explicit closing LineCmd emitted ahead of them by the caller.
func flattenCommands(cmds []SVGCommand) []Line {
	var lines []Line
	for _, c := range cmds {
		switch v := c.(type) {
		case MoveCmd:
			// no segment
		case LineCmd:
			lines = append(lines, Line{Start: v.Start, End: v.End})
		case QuadCurveCmd:
			lines = append(lines, flattenQuad(v)...)
		case CubicCurveCmd:
			lines = append(lines, flattenCubic(v)...)
		case CloseCmd:
			// no segment: the closing line is emitted separately as a LineCmd
		}
	}
	return lines
}

// flattenQuad samples a quadratic Bézier at n=1 interior point (3 samples
// total including the endpoints), per spec §4.1's de Casteljau formula
// B(t) = (1-t)^2*s + 2(1-t)t*c + t^2*e.
func flattenQuad(q QuadCurveCmd) []Line {
	const nInterior = 1
	pts := make([]Point[float32], 0, nInterior+1)
	for i := 1; i <= nInterior; i++ {
		t := float32(i) / float32(nInterior+1)
		pts = append(pts, quadPointAt(q, t))
	}
	pts = append(pts, q.End)

	lines := make([]Line, 0, len(pts))
	last := q.Start
	for _, p := range pts {
		lines = append(lines, Line{Start: last, End: p})
		last = p
	}
	return lines
}

func quadPointAt(q QuadCurveCmd, t float32) Point[float32] {
	mt := 1 - t
	x := mt*mt*q.Start.X + 2*mt*t*q.Ctrl.X + t*t*q.End.X
	y := mt*mt*q.Start.Y + 2*mt*t*q.Ctrl.Y + t*t*q.End.Y
	return Point[float32]{X: x, Y: y}
}

// flattenCubic samples a cubic Bézier at n=2 interior points, per spec
// §4.1's de Casteljau reformulation (p5..p9 construction).
func flattenCubic(c CubicCurveCmd) []Line {
	const nInterior = 2
	pts := make([]Point[float32], 0, nInterior+1)
	for i := 1; i <= nInterior; i++ {
		t := float32(i) / float32(nInterior+1)
		pts = append(pts, cubicPointAt(c, t))
	}
	pts = append(pts, c.End)

	lines := make([]Line, 0, len(pts))
	last := c.Start
	for _, p := range pts {
		lines = append(lines, Line{Start: last, End: p})
		last = p
	}
	return lines
}

func cubicPointAt(c CubicCurveCmd, t float32) Point[float32] {
	p5 := lerp(c.Start, c.Ctrl1, t)
	p6 := lerp(c.Ctrl1, c.Ctrl2, t)
	p7 := lerp(c.Ctrl2, c.End, t)
	p8 := lerp(p5, p6, t)
	p9 := lerp(p6, p7, t)
	return lerp(p8, p9, t)
}

func lerp(a, b Point[float32], t float32) Point[float32] {
	return Point[float32]{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
	}
}
