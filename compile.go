package svgscene

import (
	"fmt"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// Compile walks a resolved document tree and produces the directive
// stream that renders it. The stream is bracketed by a viewport clip
// layer so content never escapes the document bounds.
//
// Compile never fails outright: recoverable problems (a reference
// cycle, an undecodable image, missing content) skip the affected
// node and are returned as diagnostics. Callers that need strictness
// can treat a non-empty diagnostic list as an error.
//
// The document is only read, so one tree may be compiled from several
// goroutines at once, with one caveat: glyph run faces are stateful
// and must not be shared with a live shaper during compilation.
func Compile(doc *svgdom.Document, opts ...Option) (*Stream, []Diagnostic) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &compiler{
		cfg:   cfg,
		guard: make(map[*svgdom.Group]struct{}),
	}

	var width, height float64
	if doc != nil {
		width, height = doc.Width, doc.Height
	}
	c.emit = newEmitter(width, height)

	if doc == nil || doc.Root == nil {
		c.structural("root", fmt.Errorf("%w: document root", ErrMissingReference))
		return c.emit.stream, c.diags
	}

	ctx := walkContext{transform: cfg.transform, opacity: 1}
	c.emit.setTransform(ctx.transform)
	c.emit.push(PushLayer{
		Clip:  &ClipSpec{Path: documentClip(doc), Rule: svgdom.FillNonZero},
		Alpha: cfg.opacity,
		Blend: svgdom.BlendNormal,
	})
	c.walkGroup(doc.Root, ctx, "root")
	c.emit.push(PopLayer{})

	Logger().Debug("compiled document",
		"width", width, "height", height,
		"directives", c.emit.stream.Len(),
		"diagnostics", len(c.diags))

	return c.emit.stream, c.diags
}

// documentClip returns the viewport clip geometry for a document: its
// viewBox when one is set, otherwise the full viewport rectangle.
// Content is expressed in viewBox coordinates when a viewBox is
// present, so the clip lives in the same space as the content.
func documentClip(doc *svgdom.Document) *geom.Path {
	if !doc.ViewBox.IsEmpty() {
		return geom.Rectangle(doc.ViewBox)
	}
	return geom.Rectangle(geom.NewRect(0, 0, doc.Width, doc.Height))
}
