package svgscene

import (
	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// Brush represents what a fill or stroke directive paints with.
// This is a sealed interface - only types in this package implement it.
//
// Unlike svgdom paints, brushes are backend-ready: bounding-box units
// are resolved into the brush transform, gradient stops are clamped,
// sorted, and carry folded opacity, and pattern content is compiled
// into a tile sub-stream.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color svgdom.Color
}

func (SolidBrush) brushMarker() {}

// GradientStop is one resolved gradient color stop. Stop opacity and
// paint opacity are already folded into the color's alpha.
type GradientStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  svgdom.Color
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// LinearGradientBrush is a resolved linear gradient.
// Colors transition linearly from Start to End in gradient space;
// Transform maps gradient space to the current user space (it carries
// any bounding-box rescale and gradient transform).
type LinearGradientBrush struct {
	Start     geom.Point
	End       geom.Point
	Stops     []GradientStop
	Extend    ExtendMode
	Transform geom.Affine
}

func (*LinearGradientBrush) brushMarker() {}

// RadialGradientBrush is a resolved radial gradient.
// Colors radiate from Focal out to the circle of Radius around Center
// in gradient space; Transform maps gradient space to the current user
// space.
type RadialGradientBrush struct {
	Center    geom.Point
	Focal     geom.Point
	Radius    float64
	Stops     []GradientStop
	Extend    ExtendMode
	Transform geom.Affine
}

func (*RadialGradientBrush) brushMarker() {}

// PatternBrush paints by tiling a compiled sub-scene.
type PatternBrush struct {
	// Stream holds the tile content as an ordinary directive stream.
	// Backends replay it into a tile and repeat that tile.
	Stream *Stream

	// Tile is the tile rectangle in pattern space.
	Tile geom.Rect

	// Transform positions the tile grid in the current user space.
	Transform geom.Affine
}

func (*PatternBrush) brushMarker() {}
