package svgdom

import (
	"github.com/go-text/typesetting/font"
)

// GlyphRun is a maximal sequence of glyphs sharing one face, size, and
// paint. Runs arrive already shaped; the compiler never reorders or
// re-measures them.
type GlyphRun struct {
	// Face is the parsed font the glyph IDs index into. A face is not
	// safe for concurrent use; callers sharing a tree across compiles
	// must not share faces with a live shaper.
	Face *font.Face

	// Size is the font size in user units.
	Size float64

	// Glyphs are positioned relative to the run origin, pen advances
	// already applied.
	Glyphs []Glyph

	// Fill paints the glyphs. A nil fill makes the run invisible.
	Fill *Fill
}

// Glyph is one positioned glyph in a run.
type Glyph struct {
	// GID is the glyph index in the run's face.
	GID uint32

	// Cluster is the byte offset of the source text this glyph maps
	// back to.
	Cluster int

	// X and Y place the glyph origin relative to the run origin, in
	// user units.
	X, Y float64
}
