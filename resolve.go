package svgscene

import (
	"fmt"
	"sort"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// resolveBrush lowers a document paint to a backend brush: opacity is
// folded into solid colors and gradient stops, bounding-box units are
// folded into the brush transform, and pattern content is compiled
// into a tile stream. A false result means the paint op must be
// skipped.
func (c *compiler) resolveBrush(paint svgdom.Paint, opacity float64, bbox geom.Rect, node string) (Brush, bool) {
	switch p := paint.(type) {
	case svgdom.Color:
		return SolidBrush{Color: p.WithAlphaFactor(opacity)}, true
	case *svgdom.LinearGradient:
		return c.resolveLinear(p, opacity, bbox), true
	case *svgdom.RadialGradient:
		return c.resolveRadial(p, opacity, bbox), true
	case *svgdom.Pattern:
		return c.resolvePattern(p, bbox, node)
	case nil:
		c.resource(node, fmt.Errorf("%w: paint", ErrMissingReference))
		return nil, false
	}
	// Unreachable: Paint is sealed.
	return nil, false
}

func (c *compiler) resolveLinear(g *svgdom.LinearGradient, opacity float64, bbox geom.Rect) Brush {
	stops := normalizeStops(g.Stops, opacity)
	if brush, done := degenerateStops(stops); done {
		return brush
	}
	transform, ok := paintTransform(g.Units, g.Transform, bbox)
	if !ok || g.Start == g.End {
		return SolidBrush{Color: stops[len(stops)-1].Color}
	}
	return &LinearGradientBrush{
		Start:     g.Start,
		End:       g.End,
		Stops:     stops,
		Extend:    spreadToExtend(g.Spread),
		Transform: transform,
	}
}

func (c *compiler) resolveRadial(g *svgdom.RadialGradient, opacity float64, bbox geom.Rect) Brush {
	stops := normalizeStops(g.Stops, opacity)
	if brush, done := degenerateStops(stops); done {
		return brush
	}
	transform, ok := paintTransform(g.Units, g.Transform, bbox)
	if !ok || !(g.Radius > 0) {
		return SolidBrush{Color: stops[len(stops)-1].Color}
	}
	return &RadialGradientBrush{
		Center:    g.Center,
		Focal:     g.Focal,
		Radius:    g.Radius,
		Stops:     stops,
		Extend:    spreadToExtend(g.Spread),
		Transform: transform,
	}
}

func (c *compiler) resolvePattern(p *svgdom.Pattern, bbox geom.Rect, node string) (Brush, bool) {
	if p.Root == nil {
		c.resource(node, fmt.Errorf("%w: pattern content", ErrMissingReference))
		return nil, false
	}
	if p.Tile.IsEmpty() {
		// A zero-area tile disables the paint.
		return nil, false
	}
	transform, ok := paintTransform(p.Units, p.Transform, bbox)
	if !ok {
		// Bounding-box placement with no box to place against.
		return nil, false
	}

	before := len(c.diags)
	tile := c.compileSubtree(p.Root, p.Tile.Width(), p.Tile.Height(), node+"/pattern")
	if tile.Len() == 0 {
		if len(c.diags) == before {
			c.resource(node, fmt.Errorf("%w: pattern content is empty", ErrMissingReference))
		}
		return nil, false
	}

	return &PatternBrush{
		Stream:    tile,
		Tile:      p.Tile,
		Transform: transform,
	}, true
}

// normalizeStops converts raw gradient stops to resolved form: offsets
// clamped to [0, 1] and sorted ascending (stable, preserving document
// order of equal offsets), stop opacity and the paint's opacity folded
// into each color's alpha.
func normalizeStops(stops []svgdom.Stop, opacity float64) []GradientStop {
	out := make([]GradientStop, len(stops))
	for i, s := range stops {
		off := s.Offset
		if off < 0 {
			off = 0
		} else if off > 1 {
			off = 1
		}
		out[i] = GradientStop{
			Offset: off,
			Color:  s.Color.WithAlphaFactor(clampAlpha(s.Opacity) * opacity),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// degenerateStops handles gradients that cannot show a transition:
// no stops paint nothing, a single stop paints its solid color.
func degenerateStops(stops []GradientStop) (Brush, bool) {
	switch len(stops) {
	case 0:
		return SolidBrush{Color: svgdom.Transparent}, true
	case 1:
		return SolidBrush{Color: stops[0].Color}, true
	}
	return nil, false
}

// paintTransform builds the paint-space to user-space transform,
// resolving bounding-box units against the painted node's bounds.
// ok is false when bounding-box units meet an empty bbox.
func paintTransform(units svgdom.Units, transform geom.Affine, bbox geom.Rect) (geom.Affine, bool) {
	if units != svgdom.UnitsObjectBoundingBox {
		return transform, true
	}
	if bbox.IsEmpty() {
		return geom.Identity(), false
	}
	return bboxUnitsTransform(bbox).Multiply(transform), true
}

// bboxUnitsTransform maps the unit square onto a bounding box.
func bboxUnitsTransform(bbox geom.Rect) geom.Affine {
	return geom.Translate(bbox.MinX, bbox.MinY).Multiply(geom.Scale(bbox.Width(), bbox.Height()))
}

// spreadToExtend maps document gradient spread to the brush extend
// mode.
func spreadToExtend(s svgdom.Spread) ExtendMode {
	switch s {
	case svgdom.SpreadReflect:
		return ExtendReflect
	case svgdom.SpreadRepeat:
		return ExtendRepeat
	default:
		return ExtendPad
	}
}

// resolveClip flattens clip content into a single outline in the
// clipped group's user space. Only path geometry contributes. An
// empty outline is a valid result that clips everything away; a nil
// result means the clip could not be resolved and the group renders
// unclipped.
func (c *compiler) resolveClip(clip *svgdom.ClipPath, node string) *ClipSpec {
	if clip.Root == nil {
		c.resource(node, fmt.Errorf("%w: clip content", ErrMissingReference))
		return nil
	}
	outline := geom.NewPath()
	c.collectOutlines(clip.Root, clip.Transform, node+"/clip", outline)
	return &ClipSpec{Path: outline, Rule: clip.Rule}
}

// collectOutlines appends the transformed geometry of every visible
// path under g to dst.
func (c *compiler) collectOutlines(g *svgdom.Group, transform geom.Affine, node string, dst *geom.Path) {
	if g == nil || !g.Visible {
		return
	}
	if !c.enter(g, node) {
		return
	}
	defer c.leave(g)

	transform = transform.Multiply(g.Transform)
	groups := 0
	for _, child := range g.Children {
		switch n := child.(type) {
		case *svgdom.Group:
			c.collectOutlines(n, transform, fmt.Sprintf("%s/group[%d]", node, groups), dst)
			groups++
		case *svgdom.Path:
			if !n.Visible || n.Data == nil {
				continue
			}
			dst.Append(n.Data.Transform(transform.Multiply(n.Transform)))
		}
	}
}

// resolveMask compiles mask content into a sub-scene. The mask stream
// is expressed in the masked group's user space; an empty stream
// yields zero coverage. A nil result means the mask could not be
// resolved and the group renders unmasked.
func (c *compiler) resolveMask(m *svgdom.Mask, node string) *MaskSpec {
	if m.Root == nil {
		c.resource(node, fmt.Errorf("%w: mask content", ErrMissingReference))
		return nil
	}
	stream := c.compileSubtree(m.Root, c.emit.stream.width, c.emit.stream.height, node+"/mask")
	return &MaskSpec{
		Stream:    stream,
		Luminance: m.Kind == svgdom.MaskLuminance,
	}
}

// compileSubtree compiles a detached subtree into its own stream,
// sharing the cycle guard, depth limit, and diagnostics with the
// main traversal.
func (c *compiler) compileSubtree(root *svgdom.Group, width, height float64, node string) *Stream {
	prev := c.emit
	c.emit = newEmitter(width, height)
	c.walkGroup(root, walkContext{transform: geom.Identity(), opacity: 1}, node)
	stream := c.emit.stream
	c.emit = prev

	Logger().Debug("compiled subtree", "node", node, "directives", stream.Len())
	return stream
}
