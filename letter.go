package wordcloud

// Letter is a single shaped glyph's draw program and derived geometry,
// positioned relative to its Word's origin. All coordinates are canvas-frame
// (y growing downward) by the time Simplify has run.
type Letter struct {
	Char rune

	// PixelBBox is the glyph's ink bounding box, relative to the Word's
	// origin, after the mirror pass and normalization.
	PixelBBox Rect[float32]

	// Offset is the glyph's pen-advance origin within the Word, i.e. where
	// this glyph's (0,0) sits relative to the Word's origin.
	Offset Point[float32]

	// Rotation is the quarter-turn applied to every point this glyph emits.
	Rotation Rotation

	Commands    []SVGCommand
	Collidables []Line

	cursor     Point[float32]
	moveCursor Point[float32]
}

// NewLetter returns an empty Letter for ch, positioned at offset within its
// Word, drawn under the given rotation.
func NewLetter(ch rune, offset Point[float32], rotation Rotation) *Letter {
	return &Letter{Char: ch, Offset: offset, Rotation: rotation}
}

// MoveTo lifts the pen to p without drawing, rotating p first.
func (l *Letter) MoveTo(p Point[float32]) {
	rp := l.Rotation.RotatePoint(p)
	l.Commands = append(l.Commands, MoveCmd{Position: rp})
	l.cursor = rp
	l.moveCursor = rp
}

// LineTo draws a straight segment from the current pen position to p.
func (l *Letter) LineTo(p Point[float32]) {
	rp := l.Rotation.RotatePoint(p)
	l.Commands = append(l.Commands, LineCmd{Start: l.cursor, End: rp})
	l.cursor = rp
}

// QuadTo draws a quadratic Bézier through ctrl to p.
func (l *Letter) QuadTo(ctrl, p Point[float32]) {
	rc, rp := l.Rotation.RotatePoint(ctrl), l.Rotation.RotatePoint(p)
	l.Commands = append(l.Commands, QuadCurveCmd{Start: l.cursor, Ctrl: rc, End: rp})
	l.cursor = rp
}

// CurveTo draws a cubic Bézier through ctrl1, ctrl2 to p.
func (l *Letter) CurveTo(ctrl1, ctrl2, p Point[float32]) {
	rc1, rc2, rp := l.Rotation.RotatePoint(ctrl1), l.Rotation.RotatePoint(ctrl2), l.Rotation.RotatePoint(p)
	l.Commands = append(l.Commands, CubicCurveCmd{Start: l.cursor, Ctrl1: rc1, Ctrl2: rc2, End: rp})
	l.cursor = rp
}

// Close closes the current subpath, emitting an explicit closing line back
// to the last MoveTo position before the CloseCmd token.
func (l *Letter) Close() {
	if !l.cursor.Eq(l.moveCursor) {
		l.Commands = append(l.Commands, LineCmd{Start: l.cursor, End: l.moveCursor})
	}
	l.Commands = append(l.Commands, CloseCmd{})
	l.cursor = l.moveCursor
}

// mirrorY flips every point this glyph has emitted about y = 0, working in
// the glyph's unrotated frame and re-applying the rotation afterward. Font
// outlines arrive with y increasing upward; the canvas grows y downward, so
// every command and the pixel bounding box are mirrored once, here, right
// after shaping and before Simplify populates collision segments.
func (l *Letter) mirrorY() {
	origin := Point[float32]{}
	mirrorPoint := func(p Point[float32]) Point[float32] {
		local := l.Rotation.RotatePointBack(p)
		return l.Rotation.RotatePoint(origin.SubLY(local))
	}

	for i, c := range l.Commands {
		switch v := c.(type) {
		case MoveCmd:
			l.Commands[i] = MoveCmd{Position: mirrorPoint(v.Position)}
		case LineCmd:
			l.Commands[i] = LineCmd{Start: mirrorPoint(v.Start), End: mirrorPoint(v.End)}
		case QuadCurveCmd:
			l.Commands[i] = QuadCurveCmd{
				Start: mirrorPoint(v.Start),
				Ctrl:  mirrorPoint(v.Ctrl),
				End:   mirrorPoint(v.End),
			}
		case CubicCurveCmd:
			l.Commands[i] = CubicCurveCmd{
				Start: mirrorPoint(v.Start),
				Ctrl1: mirrorPoint(v.Ctrl1),
				Ctrl2: mirrorPoint(v.Ctrl2),
				End:   mirrorPoint(v.End),
			}
		case CloseCmd:
			// no points to mirror
		}
	}

	l.PixelBBox = Rect[float32]{
		Min: origin.SubLY(l.PixelBBox.Min),
		Max: origin.SubLY(l.PixelBBox.Max),
	}.Normalize()
}

// Simplify flattens this glyph's draw program into collision segments. It
// must run after mirrorY, once the commands are in their final frame.
func (l *Letter) Simplify() {
	l.Collidables = flattenCommands(l.Commands)
}

// RelativeBoundingBox returns the glyph's ink bounding box within its
// owning Word, rotated under the given rotation. PixelBBox already embeds
// the horizontal advance in X (baked in at shaping time); only the
// vertical Offset is added before rotating, since the outline bounds never
// carry a vertical shift of their own.
func (l *Letter) RelativeBoundingBox(rotation Rotation) Rect[float32] {
	bbox := l.PixelBBox.Add(Point[float32]{Y: l.Offset.Y})
	return rotation.RotateRect(bbox)
}

// AbsoluteCollidables returns this glyph's collision segments translated
// into canvas-absolute coordinates: each draw-program segment is already
// rotated, so it only needs the rotated Offset and the Word's own
// wordOffset added.
func (l *Letter) AbsoluteCollidables(rotation Rotation, wordOffset Point[float32]) []Line {
	v := rotation.RotatePoint(l.Offset).Add(wordOffset)
	out := make([]Line, len(l.Collidables))
	for i, ln := range l.Collidables {
		out[i] = Line{Start: ln.Start.Add(v), End: ln.End.Add(v)}
	}
	return out
}

// D returns this glyph's SVG path "d" attribute value, translated by its
// own rotated Offset plus globalOffset (typically the owning Word's canvas
// offset).
func (l *Letter) D(globalOffset Point[float32]) string {
	off := l.Rotation.RotatePoint(l.Offset).Add(globalOffset)
	return pathD(l.Commands, off)
}
