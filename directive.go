package svgscene

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// Op identifies the type of a directive.
type Op uint8

const (
	// State directives
	OpSetTransform Op = iota // Set the current transform
	OpPushLayer              // Open an isolated compositing layer
	OpPopLayer               // Close the innermost layer

	// Drawing directives
	OpFillPath     // Fill a path
	OpStrokePath   // Stroke a path
	OpDrawImage    // Draw a decoded raster image
	OpDrawGlyphRun // Draw a shaped glyph run
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpSetTransform: "SetTransform",
	OpPushLayer:    "PushLayer",
	OpPopLayer:     "PopLayer",
	OpFillPath:     "FillPath",
	OpStrokePath:   "StrokePath",
	OpDrawImage:    "DrawImage",
	OpDrawGlyphRun: "DrawGlyphRun",
}

// String returns the string representation of an Op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// Directive is the interface implemented by all directive types.
// Directives represent individual drawing or layer-control operations
// replayed in order to a backend.
type Directive interface {
	// Op returns the Op for this directive.
	Op() Op
}

// SetTransform establishes the current transform. It is modal: all
// subsequent geometry (paths, clip outlines, image rectangles, glyph
// positions) is interpreted under it until the next SetTransform.
type SetTransform struct {
	Transform geom.Affine
}

// Op implements Directive.
func (SetTransform) Op() Op { return OpSetTransform }

// PushLayer opens an isolated compositing layer. The subtree's
// directives render into the layer; on the matching PopLayer the layer
// composites onto the backdrop with Alpha and Blend, restricted by
// Clip and modulated by Mask. Clip geometry is interpreted under the
// transform current at the push.
type PushLayer struct {
	Clip  *ClipSpec
	Mask  *MaskSpec
	Alpha float64
	Blend svgdom.BlendMode
}

// Op implements Directive.
func (PushLayer) Op() Op { return OpPushLayer }

// PopLayer closes the innermost open layer. Streams produced by this
// package always balance PushLayer and PopLayer.
type PopLayer struct{}

// Op implements Directive.
func (PopLayer) Op() Op { return OpPopLayer }

// FillPath fills a path with a brush under the current transform.
type FillPath struct {
	Path  *geom.Path
	Brush Brush
	Rule  svgdom.FillRule
}

// Op implements Directive.
func (FillPath) Op() Op { return OpFillPath }

// StrokePath strokes a path outline with a brush under the current
// transform.
type StrokePath struct {
	Path  *geom.Path
	Brush Brush
	Style StrokeStyle
}

// Op implements Directive.
func (StrokePath) Op() Op { return OpStrokePath }

// StrokeStyle carries the resolved stroke parameters of a StrokePath.
// Width is always positive: zero-width strokes are suppressed at
// compile time.
type StrokeStyle struct {
	Width      float64
	Cap        svgdom.LineCap
	Join       svgdom.LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// DrawImage draws decoded pixels into a placement rectangle under the
// current transform.
type DrawImage struct {
	Image    *Pixmap
	Rect     geom.Rect
	Sampling svgdom.Sampling
}

// Op implements Directive.
func (DrawImage) Op() Op { return OpDrawImage }

// DrawGlyphRun draws one shaped glyph run under the current transform.
// Glyph positions are relative to the run origin; the backend indexes
// the face with the glyph IDs.
type DrawGlyphRun struct {
	Face   *font.Face
	Size   float64
	Glyphs []svgdom.Glyph
	Brush  Brush
}

// Op implements Directive.
func (DrawGlyphRun) Op() Op { return OpDrawGlyphRun }
