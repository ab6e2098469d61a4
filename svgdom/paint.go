package svgdom

import (
	"math"

	"github.com/gogpu/svgscene/geom"
)

// Color is a straight-alpha 8-bit RGBA color. The zero value is fully
// transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Transparent is fully transparent black.
var Transparent = Color{}

// WithAlphaFactor returns the color with its alpha multiplied by f.
// f is clamped to [0, 1] and the product rounds to the nearest 8-bit
// value.
func (c Color) WithAlphaFactor(f float64) Color {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}

// Paint describes what a fill or stroke is painted with.
// This is a sealed interface - only types in this package implement it.
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()
}

func (Color) paintMarker() {}

// Units selects the coordinate space gradient and pattern geometry is
// expressed in.
type Units uint8

const (
	// UnitsUserSpace interprets coordinates in the user space active
	// where the paint is applied.
	UnitsUserSpace Units = iota
	// UnitsObjectBoundingBox interprets coordinates as fractions of
	// the painted node's local bounding box.
	UnitsObjectBoundingBox
)

// Spread defines how a gradient continues beyond its defined range.
type Spread uint8

const (
	// SpreadPad extends the edge stop colors (default).
	SpreadPad Spread = iota
	// SpreadReflect mirrors the gradient back and forth.
	SpreadReflect
	// SpreadRepeat tiles the gradient.
	SpreadRepeat
)

// Stop is a single gradient color stop.
type Stop struct {
	Offset  float64 // position along the gradient, 0.0 to 1.0
	Color   Color
	Opacity float64 // stop-opacity, 0.0 to 1.0
}

// LinearGradient paints a linear color transition from Start to End.
type LinearGradient struct {
	Start, End geom.Point
	Stops      []Stop
	Units      Units
	Spread     Spread
	Transform  geom.Affine
}

func (*LinearGradient) paintMarker() {}

// NewLinearGradient creates a user-space linear gradient with pad
// spread and no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start:     geom.Pt(x0, y0),
		End:       geom.Pt(x1, y1),
		Transform: geom.Identity(),
	}
}

// AddStop appends a color stop.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddStop(offset float64, c Color, opacity float64) *LinearGradient {
	g.Stops = append(g.Stops, Stop{Offset: offset, Color: c, Opacity: opacity})
	return g
}

// RadialGradient paints colors radiating from Focal out to the circle
// of the given Radius around Center.
type RadialGradient struct {
	Center, Focal geom.Point
	Radius        float64
	Stops         []Stop
	Units         Units
	Spread        Spread
	Transform     geom.Affine
}

func (*RadialGradient) paintMarker() {}

// NewRadialGradient creates a user-space radial gradient with the
// focal point at the center, pad spread, and no stops.
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	center := geom.Pt(cx, cy)
	return &RadialGradient{
		Center:    center,
		Focal:     center,
		Radius:    radius,
		Transform: geom.Identity(),
	}
}

// AddStop appends a color stop.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddStop(offset float64, c Color, opacity float64) *RadialGradient {
	g.Stops = append(g.Stops, Stop{Offset: offset, Color: c, Opacity: opacity})
	return g
}

// Pattern paints by tiling the rendering of a referenced subtree.
type Pattern struct {
	// Root is the pattern content. The compiler renders it into a
	// tile sub-scene under the same cycle guard as the main traversal.
	Root *Group

	// Tile is the pattern tile rectangle.
	Tile geom.Rect

	// Transform positions the tile grid in the painted space.
	Transform geom.Affine

	Units Units
}

func (*Pattern) paintMarker() {}

// NewPattern creates a user-space pattern tiling the given content
// over the tile rectangle.
func NewPattern(root *Group, tile geom.Rect) *Pattern {
	return &Pattern{
		Root:      root,
		Tile:      tile,
		Transform: geom.Identity(),
	}
}
