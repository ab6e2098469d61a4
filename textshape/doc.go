// Package textshape turns strings into the shaped glyph runs the
// document model carries.
//
// The scene compiler never shapes text itself: Text nodes arrive with
// positioned glyphs. This package is the bridge for producers that
// start from strings. It segments text by bidirectional level, shapes
// each segment with HarfBuzz (via go-text/typesetting), and lays the
// resulting runs along a horizontal pen.
//
// # Usage
//
//	face, err := textshape.ParseFont(fontBytes)
//	if err != nil { ... }
//
//	shaper := textshape.NewShaper()
//	runs := shaper.Shape(textshape.Input{
//		Text: "Hello, world",
//		Face: face,
//		Size: 16,
//		Fill: svgdom.NewFill(svgdom.RGB(0, 0, 0)),
//	})
//	node := svgdom.NewText(runs...)
package textshape
