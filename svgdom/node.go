package svgdom

import (
	"github.com/gogpu/svgscene/geom"
)

// Document is the root of a resolved vector document.
type Document struct {
	// Width and Height give the viewport size in user units.
	Width  float64
	Height float64

	// ViewBox is the document's viewBox rectangle in user units.
	// An empty rectangle means no viewBox clip applies.
	ViewBox geom.Rect

	// Root holds the document content. Never nil for a valid document.
	Root *Group
}

// Node is one element of the document tree.
// This is a sealed interface - only types in this package implement it.
type Node interface {
	// nodeMarker is an unexported method that seals this interface.
	nodeMarker()
}

// Group is a container node. Compositing properties (opacity, blend
// mode, clip, mask) live on groups; the parser wraps other elements in
// groups when such properties apply to them.
type Group struct {
	Transform geom.Affine
	Opacity   float64 // 0..1, 1 means fully opaque
	Blend     BlendMode
	Clip      *ClipPath
	Mask      *Mask
	Visible   bool
	Children  []Node
}

func (*Group) nodeMarker() {}

// NewGroup returns a visible group with identity transform, full
// opacity, and normal blending.
func NewGroup() *Group {
	return &Group{
		Transform: geom.Identity(),
		Opacity:   1,
		Blend:     BlendNormal,
		Visible:   true,
	}
}

// AppendChild adds a child node, returning the group for chaining.
func (g *Group) AppendChild(n Node) *Group {
	g.Children = append(g.Children, n)
	return g
}

// Path is a filled/stroked shape node.
type Path struct {
	Transform geom.Affine
	Visible   bool
	Data      *geom.Path
	Fill      *Fill
	Stroke    *Stroke
	Order     PaintOrder
}

func (*Path) nodeMarker() {}

// NewPath returns a visible path node over the given geometry with
// identity transform and no paints.
func NewPath(data *geom.Path) *Path {
	return &Path{
		Transform: geom.Identity(),
		Visible:   true,
		Data:      data,
	}
}

// PaintOrder selects the order fill and stroke are painted for a path.
type PaintOrder uint8

const (
	// PaintOrderFillAndStroke paints the fill first, stroke on top.
	// This is the conventional order.
	PaintOrderFillAndStroke PaintOrder = iota
	// PaintOrderStrokeAndFill paints the stroke first, fill on top.
	PaintOrderStrokeAndFill
)

// Image is an embedded raster image node. Data holds the still-encoded
// bytes; decoding happens in the compiler through its decoder
// capability.
type Image struct {
	Transform geom.Affine
	Visible   bool
	Format    ImageFormat
	Data      []byte

	// Rect is the placement rectangle in user units, already resolved
	// by the parser (including any preserveAspectRatio math).
	Rect geom.Rect

	Sampling Sampling
}

func (*Image) nodeMarker() {}

// NewImage returns a visible image node with identity transform and
// smooth sampling.
func NewImage(format ImageFormat, data []byte, rect geom.Rect) *Image {
	return &Image{
		Transform: geom.Identity(),
		Visible:   true,
		Format:    format,
		Data:      data,
		Rect:      rect,
	}
}

// Text is a text node carrying already-shaped glyph runs. Shaping and
// layout happen outside the compiler (see the textshape package).
type Text struct {
	Transform geom.Affine
	Visible   bool
	Runs      []GlyphRun
}

func (*Text) nodeMarker() {}

// NewText returns a visible text node with identity transform.
func NewText(runs ...GlyphRun) *Text {
	return &Text{
		Transform: geom.Identity(),
		Visible:   true,
		Runs:      runs,
	}
}

// NestedDocument embeds one document inside another, the way a vector
// file references a child file. The parser computes the
// viewBox-to-viewport mapping once at resolution time.
type NestedDocument struct {
	Transform geom.Affine
	Visible   bool
	Document  *Document

	// ViewBoxTransform maps the nested document's viewBox coordinates
	// onto its viewport in the parent's user space. It composes with
	// (never replaces) the inherited transform chain.
	ViewBoxTransform geom.Affine
}

func (*NestedDocument) nodeMarker() {}

// NewNestedDocument returns a visible nested-document node.
func NewNestedDocument(doc *Document, viewBoxTransform geom.Affine) *NestedDocument {
	return &NestedDocument{
		Transform:        geom.Identity(),
		Visible:          true,
		Document:         doc,
		ViewBoxTransform: viewBoxTransform,
	}
}

// ImageFormat identifies the encoding of an Image node's data.
type ImageFormat uint8

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatGIF
	FormatWEBP
	FormatBMP
	FormatTIFF
)

// imageFormatNames maps formats to their conventional names.
var imageFormatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatGIF:  "gif",
	FormatWEBP: "webp",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the conventional lowercase name of the format.
func (f ImageFormat) String() string {
	if int(f) < len(imageFormatNames) {
		return imageFormatNames[f]
	}
	return "unknown"
}

// Sampling selects the filtering used when an image is scaled.
type Sampling uint8

const (
	// SamplingSmooth uses bilinear filtering.
	SamplingSmooth Sampling = iota
	// SamplingPixelated uses nearest-neighbor filtering.
	SamplingPixelated
)
