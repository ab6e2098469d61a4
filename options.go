package svgscene

import (
	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// DefaultMaxDepth is the default nesting limit for recursive
// references (nested documents, clip, mask and pattern content).
const DefaultMaxDepth = 64

// Option configures a compilation.
// Use functional options to customize Compile behavior.
//
// Example:
//
//	// Default compilation
//	stream, diags := svgscene.Compile(doc)
//
//	// Scale the whole scene for a 2x display
//	stream, diags := svgscene.Compile(doc, svgscene.WithTransform(geom.Scale(2, 2)))
type Option func(*config)

// config holds optional configuration for Compile.
type config struct {
	transform         geom.Affine
	opacity           float64
	maxDepth          int
	diagnosticPainter bool
	decoders          map[svgdom.ImageFormat]Decoder
}

// defaultConfig returns the default compile configuration.
func defaultConfig() config {
	return config{
		transform: geom.Identity(),
		opacity:   1,
		maxDepth:  DefaultMaxDepth,
	}
}

// decoderFor returns the decoder for a format, preferring a
// per-compile override over the global registry.
func (c *config) decoderFor(format svgdom.ImageFormat) (Decoder, error) {
	if dec, ok := c.decoders[format]; ok {
		return dec, nil
	}
	return decoderFor(format)
}

// WithTransform sets a transform applied to the whole document, on
// top of any viewBox mapping. Use this for DPI scaling or placing
// the document inside a larger scene.
func WithTransform(m geom.Affine) Option {
	return func(c *config) {
		c.transform = m
	}
}

// WithOpacity sets a whole-scene opacity in [0, 1]. It behaves as if
// the document root carried that group opacity.
func WithOpacity(opacity float64) Option {
	return func(c *config) {
		c.opacity = clampAlpha(opacity)
	}
}

// WithMaxDepth overrides the nesting limit for recursive references.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// WithDiagnosticPainter makes failed resources visible: nodes that
// could not be compiled (an undecodable image, a text run without a
// face) paint a translucent red box over their bounds instead of
// disappearing. The diagnostic is still reported either way.
//
// Example:
//
//	stream, diags := svgscene.Compile(doc, svgscene.WithDiagnosticPainter())
func WithDiagnosticPainter() Option {
	return func(c *config) {
		c.diagnosticPainter = true
	}
}

// WithDecoder overrides the decoder for one image format for this
// compilation only. The global registry (see RegisterDecoder) is
// consulted for formats without an override.
//
// Example:
//
//	stream, diags := svgscene.Compile(doc,
//		svgscene.WithDecoder(svgdom.FormatPNG, myDecoder))
func WithDecoder(format svgdom.ImageFormat, dec Decoder) Option {
	return func(c *config) {
		if c.decoders == nil {
			c.decoders = make(map[svgdom.ImageFormat]Decoder)
		}
		c.decoders[format] = dec
	}
}
