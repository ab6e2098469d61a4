package svgscene

import (
	"fmt"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// emitter appends directives to one stream, deduplicating consecutive
// equal transforms.
type emitter struct {
	stream        *Stream
	lastTransform geom.Affine
	hasTransform  bool
}

func newEmitter(width, height float64) *emitter {
	return &emitter{stream: &Stream{width: width, height: height}}
}

// setTransform emits a SetTransform directive unless m is already the
// current transform of the stream.
func (e *emitter) setTransform(m geom.Affine) {
	if e.hasTransform && m == e.lastTransform {
		return
	}
	e.stream.directives = append(e.stream.directives, SetTransform{Transform: m})
	e.lastTransform = m
	e.hasTransform = true
}

func (e *emitter) push(d Directive) {
	e.stream.directives = append(e.stream.directives, d)
}

// walkContext carries the state a node inherits from its ancestors:
// the composed transform and the accumulated opacity still waiting to
// be folded into a layer or a leaf paint.
type walkContext struct {
	transform geom.Affine
	opacity   float64
}

// compiler holds the state of one Compile call. It is used from a
// single goroutine and only reads the document tree.
type compiler struct {
	cfg   config
	emit  *emitter
	diags []Diagnostic
	guard map[*svgdom.Group]struct{}
	depth int
}

// enter registers a group on the traversal stack, reporting whether
// the walk may proceed into it. Meeting a group that is already open
// means the tree has a reference cycle; both cycles and exceeding the
// depth limit diagnose and prune the subtree.
func (c *compiler) enter(g *svgdom.Group, node string) bool {
	if _, open := c.guard[g]; open {
		c.structural(node, ErrCycle)
		return false
	}
	if c.depth >= c.cfg.maxDepth {
		c.structural(node, ErrDepthExceeded)
		return false
	}
	c.guard[g] = struct{}{}
	c.depth++
	return true
}

func (c *compiler) leave(g *svgdom.Group) {
	delete(c.guard, g)
	c.depth--
}

func (c *compiler) structural(node string, err error) {
	c.report(Diagnostic{Node: node, Kind: DiagStructural, Err: err})
}

func (c *compiler) resource(node string, err error) {
	c.report(Diagnostic{Node: node, Kind: DiagResource, Err: err})
}

func (c *compiler) report(d Diagnostic) {
	Logger().Warn("compile diagnostic", "node", d.Node, "kind", d.Kind.String(), "err", d.Err)
	c.diags = append(c.diags, d)
}

func (c *compiler) walkNode(n svgdom.Node, ctx walkContext, node string) {
	switch t := n.(type) {
	case *svgdom.Group:
		c.walkGroup(t, ctx, node)
	case *svgdom.Path:
		c.walkPath(t, ctx, node)
	case *svgdom.Image:
		c.walkImage(t, ctx, node)
	case *svgdom.Text:
		c.walkText(t, ctx, node)
	case *svgdom.NestedDocument:
		c.walkNested(t, ctx, node)
	}
}

// walkGroup compiles a group. A group needs an isolation layer when
// it is translucent, blends, clips, or masks; otherwise its children
// composite directly into the parent.
func (c *compiler) walkGroup(g *svgdom.Group, ctx walkContext, node string) {
	if g == nil || !g.Visible {
		return
	}
	if !c.enter(g, node) {
		return
	}
	defer c.leave(g)

	ctx.transform = ctx.transform.Multiply(g.Transform)
	alpha := clampAlpha(g.Opacity * ctx.opacity)

	if needsLayer(alpha, g.Blend, g.Clip, g.Mask) {
		var clip *ClipSpec
		if g.Clip != nil {
			clip = c.resolveClip(g.Clip, node)
		}
		var mask *MaskSpec
		if g.Mask != nil {
			mask = c.resolveMask(g.Mask, node)
		}
		if clip == nil && mask == nil && alpha == 1 && g.Blend == svgdom.BlendNormal {
			// Every reason for the layer failed to resolve.
			c.walkChildren(g, ctx, node)
			return
		}

		Logger().Debug("push layer",
			"node", node, "alpha", alpha, "blend", g.Blend.String(),
			"clip", clip != nil, "mask", mask != nil)

		c.emit.setTransform(ctx.transform)
		c.emit.push(PushLayer{Clip: clip, Mask: mask, Alpha: alpha, Blend: g.Blend})
		ctx.opacity = 1
		c.walkChildren(g, ctx, node)
		c.emit.push(PopLayer{})
		return
	}

	ctx.opacity = alpha
	c.walkChildren(g, ctx, node)
}

func (c *compiler) walkChildren(g *svgdom.Group, ctx walkContext, node string) {
	var counts [kindCount]int
	for _, child := range g.Children {
		k := kindOf(child)
		name := fmt.Sprintf("%s/%s[%d]", node, kindNames[k], counts[k])
		counts[k]++
		c.walkNode(child, ctx, name)
	}
}

// nodeKind classifies tree nodes for diagnostic paths.
type nodeKind uint8

const (
	kindGroup nodeKind = iota
	kindPath
	kindImage
	kindText
	kindNested
	kindCount
)

var kindNames = [...]string{
	kindGroup:  "group",
	kindPath:   "path",
	kindImage:  "image",
	kindText:   "text",
	kindNested: "svg",
}

func kindOf(n svgdom.Node) nodeKind {
	switch n.(type) {
	case *svgdom.Path:
		return kindPath
	case *svgdom.Image:
		return kindImage
	case *svgdom.Text:
		return kindText
	case *svgdom.NestedDocument:
		return kindNested
	}
	return kindGroup
}

// walkPath compiles a shape node into fill and stroke directives in
// the node's paint order.
func (c *compiler) walkPath(p *svgdom.Path, ctx walkContext, node string) {
	if p == nil || !p.Visible || p.Data == nil || p.Data.Empty() {
		return
	}
	transform := ctx.transform.Multiply(p.Transform)
	bbox := p.Data.Bounds()

	if p.Order == svgdom.PaintOrderStrokeAndFill {
		c.strokeLeaf(p, transform, bbox, ctx.opacity, node)
		c.fillLeaf(p, transform, bbox, ctx.opacity, node)
		return
	}
	c.fillLeaf(p, transform, bbox, ctx.opacity, node)
	c.strokeLeaf(p, transform, bbox, ctx.opacity, node)
}

func (c *compiler) fillLeaf(p *svgdom.Path, transform geom.Affine, bbox geom.Rect, inherited float64, node string) {
	if p.Fill == nil {
		return
	}
	opacity := clampAlpha(p.Fill.Opacity) * inherited
	brush, ok := c.resolveBrush(p.Fill.Paint, opacity, bbox, node)
	if !ok {
		return
	}
	c.emit.setTransform(transform)
	wrapped := c.wrapPattern(brush, opacity)
	c.emit.push(FillPath{Path: p.Data, Brush: brush, Rule: p.Fill.Rule})
	if wrapped {
		c.emit.push(PopLayer{})
	}
}

func (c *compiler) strokeLeaf(p *svgdom.Path, transform geom.Affine, bbox geom.Rect, inherited float64, node string) {
	s := p.Stroke
	if s == nil {
		return
	}
	if !(s.Width > 0) {
		// Zero and negative widths draw nothing.
		return
	}
	opacity := clampAlpha(s.Opacity) * inherited
	brush, ok := c.resolveBrush(s.Paint, opacity, bbox, node)
	if !ok {
		return
	}
	c.emit.setTransform(transform)
	wrapped := c.wrapPattern(brush, opacity)
	c.emit.push(StrokePath{
		Path:  p.Data,
		Brush: brush,
		Style: StrokeStyle{
			Width:      s.Width,
			Cap:        s.Cap,
			Join:       s.Join,
			MiterLimit: s.MiterLimit,
			Dashes:     s.Dashes,
			DashOffset: s.DashOffset,
		},
	})
	if wrapped {
		c.emit.push(PopLayer{})
	}
}

// wrapPattern opens an alpha layer around a pattern paint, since
// opacity cannot fold into the tile stream the way it folds into
// colors and gradient stops. Reports whether a layer was pushed; the
// caller pops it after the paint directive.
func (c *compiler) wrapPattern(brush Brush, opacity float64) bool {
	if opacity >= 1 {
		return false
	}
	if _, ok := brush.(*PatternBrush); !ok {
		return false
	}
	c.emit.push(PushLayer{Alpha: opacity, Blend: svgdom.BlendNormal})
	return true
}

// walkImage decodes an image node and compiles it into a DrawImage
// directive. Decode failures diagnose, paint the placeholder box, and
// skip the node.
func (c *compiler) walkImage(img *svgdom.Image, ctx walkContext, node string) {
	if img == nil || !img.Visible {
		return
	}
	transform := ctx.transform.Multiply(img.Transform)

	if len(img.Data) == 0 {
		c.resource(node, fmt.Errorf("%w: image data", ErrMissingReference))
		c.paintDiagnostic(img.Rect, transform)
		return
	}
	dec, err := c.cfg.decoderFor(img.Format)
	if err != nil {
		c.resource(node, err)
		c.paintDiagnostic(img.Rect, transform)
		return
	}
	pix, err := dec.Decode(img.Data)
	if err != nil {
		c.resource(node, fmt.Errorf("%w: %v", ErrDecode, err))
		c.paintDiagnostic(img.Rect, transform)
		return
	}

	c.emit.setTransform(transform)
	c.emit.push(DrawImage{Image: pix, Rect: img.Rect, Sampling: img.Sampling})
}

// walkText compiles a text node's shaped runs into DrawGlyphRun
// directives.
func (c *compiler) walkText(t *svgdom.Text, ctx walkContext, node string) {
	if t == nil || !t.Visible {
		return
	}
	transform := ctx.transform.Multiply(t.Transform)

	for i, run := range t.Runs {
		if run.Fill == nil || len(run.Glyphs) == 0 {
			continue
		}
		name := fmt.Sprintf("%s/run[%d]", node, i)
		if run.Face == nil {
			c.resource(name, fmt.Errorf("%w: glyph face", ErrMissingReference))
			c.paintDiagnostic(runBounds(run), transform)
			continue
		}
		opacity := clampAlpha(run.Fill.Opacity) * ctx.opacity
		brush, ok := c.resolveBrush(run.Fill.Paint, opacity, runBounds(run), name)
		if !ok {
			continue
		}
		c.emit.setTransform(transform)
		wrapped := c.wrapPattern(brush, opacity)
		c.emit.push(DrawGlyphRun{
			Face:   run.Face,
			Size:   run.Size,
			Glyphs: run.Glyphs,
			Brush:  brush,
		})
		if wrapped {
			c.emit.push(PopLayer{})
		}
	}
}

// runBounds approximates a run's bounding box from its glyph origins
// and em size: one em above the baseline, a quarter em below, one em
// trailing the last origin. Exact glyph extents would need the face's
// outlines, which the compiler deliberately does not touch.
func runBounds(run svgdom.GlyphRun) geom.Rect {
	r := geom.EmptyRect()
	for _, g := range run.Glyphs {
		r = r.UnionPoint(geom.Pt(g.X, g.Y))
	}
	if r.IsEmpty() {
		return r
	}
	return geom.NewRect(r.MinX, r.MinY-run.Size, r.MaxX+run.Size, r.MaxY+run.Size*0.25)
}

// walkNested compiles an embedded document: its viewBox mapping
// composes onto the transform chain and its viewport clips the
// content.
func (c *compiler) walkNested(nd *svgdom.NestedDocument, ctx walkContext, node string) {
	if nd == nil || !nd.Visible {
		return
	}
	if nd.Document == nil || nd.Document.Root == nil {
		c.resource(node, fmt.Errorf("%w: nested document", ErrMissingReference))
		return
	}

	ctx.transform = ctx.transform.Multiply(nd.Transform).Multiply(nd.ViewBoxTransform)

	c.emit.setTransform(ctx.transform)
	c.emit.push(PushLayer{
		Clip:  &ClipSpec{Path: documentClip(nd.Document), Rule: svgdom.FillNonZero},
		Alpha: 1,
		Blend: svgdom.BlendNormal,
	})
	c.walkGroup(nd.Document.Root, ctx, node)
	c.emit.push(PopLayer{})
}

// paintDiagnostic draws a translucent red box over a failed node's
// bounds so broken resources are visible during bring-up. It is a
// no-op unless WithDiagnosticPainter is set.
func (c *compiler) paintDiagnostic(rect geom.Rect, transform geom.Affine) {
	if !c.cfg.diagnosticPainter || rect.IsEmpty() {
		return
	}
	c.emit.setTransform(transform)
	c.emit.push(FillPath{
		Path:  geom.Rectangle(rect),
		Brush: SolidBrush{Color: svgdom.Color{R: 255, A: 128}},
		Rule:  svgdom.FillNonZero,
	})
}
