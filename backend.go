package svgscene

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// Backend consumes a directive stream during playback.
//
// Implementations turn directives into actual work: a scene recorder
// appends encoded draw commands, a rasterizer paints pixels, a test
// double records calls. Directives arrive in paint order and layer
// push/pop calls are always balanced.
//
// SetTransform is modal: it establishes the transform for every
// subsequent geometry-carrying call until the next SetTransform.
// Playback always emits a SetTransform before the first drawing call.
type Backend interface {
	// Begin starts consuming a stream with the given logical size.
	Begin(width, height float64) error

	// End finishes the stream. It is called exactly once per
	// successful Begin, after the last directive.
	End() error

	// SetTransform replaces the current transform.
	SetTransform(m geom.Affine)

	// PushLayer begins an isolation layer. Content drawn until the
	// matching PopLayer is composited as a unit using params.
	PushLayer(params LayerParams)

	// PopLayer ends the innermost layer.
	PopLayer()

	// FillPath fills a path with a brush under the current transform.
	FillPath(path *geom.Path, brush Brush, rule svgdom.FillRule)

	// StrokePath strokes a path with a brush under the current
	// transform. Style width is always positive.
	StrokePath(path *geom.Path, brush Brush, style StrokeStyle)

	// DrawImage draws a decoded image into a rectangle under the
	// current transform.
	DrawImage(img *Pixmap, rect geom.Rect, sampling svgdom.Sampling)

	// DrawGlyphRun draws positioned glyphs from a single face at a
	// single size, painted with a brush.
	DrawGlyphRun(face *font.Face, size float64, glyphs []svgdom.Glyph, brush Brush)
}
