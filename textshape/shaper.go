package textshape

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// Direction is the base direction text is laid out in.
type Direction uint8

const (
	// DirectionLTR lays text out left to right.
	DirectionLTR Direction = iota
	// DirectionRTL lays text out right to left.
	DirectionRTL
)

// ParseFont parses TTF/OTF font bytes into a face usable in glyph
// runs.
func ParseFont(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textshape: parse font: %w", err)
	}
	return face, nil
}

// Input describes one string to shape.
type Input struct {
	// Text is the string to shape.
	Text string

	// Face is the parsed font the runs will reference.
	Face *font.Face

	// Size is the font size in user units.
	Size float64

	// Fill paints the resulting runs. Nil produces invisible runs.
	Fill *svgdom.Fill

	// Direction is the base paragraph direction.
	Direction Direction

	// Language is a BCP 47 tag used for language-specific shaping.
	// Empty means "en".
	Language string

	// Origin is the pen start position in user units.
	Origin geom.Point
}

// Shaper shapes strings into glyph runs using HarfBuzz.
//
// A Shaper is safe for concurrent use. HarfbuzzShaper instances have
// internal mutable state and are pooled; each Shape call works on a
// private lightweight face around the input's read-only font.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes a string into one glyph run per bidirectional segment,
// in visual order, pen advances applied. Glyph clusters are byte
// offsets into the input text.
func (s *Shaper) Shape(in Input) []svgdom.GlyphRun {
	if in.Text == "" || in.Face == nil {
		return nil
	}

	runes := []rune(in.Text)
	byteOff := byteOffsets(in.Text, runes)
	spans := bidiSpans(in.Text, len(runes), in.Direction)

	lang := in.Language
	if lang == "" {
		lang = "en"
	}

	// font.Face is not safe for concurrent use; shape on a private
	// face around the shared read-only Font.
	shapeFace := font.NewFace(in.Face.Font)

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	runs := make([]svgdom.GlyphRun, 0, len(spans))
	pen := in.Origin
	for _, sp := range spans {
		dir := di.DirectionLTR
		if sp.rtl {
			dir = di.DirectionRTL
		}

		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  sp.start,
			RunEnd:    sp.end,
			Direction: dir,
			Face:      shapeFace,
			Size:      floatToFixed(in.Size),
			Script:    spanScript(runes[sp.start:sp.end]),
			Language:  language.NewLanguage(lang),
		})

		glyphs := make([]svgdom.Glyph, len(out.Glyphs))
		for i, g := range out.Glyphs {
			glyphs[i] = svgdom.Glyph{
				GID:     uint32(g.GlyphID),
				Cluster: byteOff[g.TextIndex()],
				// Shaping offsets are Y-up; user space is Y-down.
				X: pen.X + fixedToFloat(g.XOffset),
				Y: pen.Y - fixedToFloat(g.YOffset),
			}
			pen.X += fixedToFloat(g.Advance)
		}
		runs = append(runs, svgdom.GlyphRun{
			Face:   in.Face,
			Size:   in.Size,
			Glyphs: glyphs,
			Fill:   in.Fill,
		})
	}
	return runs
}

// ShapeText shapes a string into a ready Text node.
func (s *Shaper) ShapeText(in Input) *svgdom.Text {
	return svgdom.NewText(s.Shape(in)...)
}

// span is a run of text with a single bidirectional level,
// in rune indices.
type span struct {
	start, end int
	rtl        bool
}

// bidiSpans splits text into spans of uniform direction, in visual
// order. A text that fails bidi analysis is treated as one span of
// the base direction.
func bidiSpans(text string, runeCount int, base Direction) []span {
	whole := []span{{start: 0, end: runeCount, rtl: base == DirectionRTL}}

	def := bidi.Neutral
	if base == DirectionRTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	spans := make([]span, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos reports inclusive rune indices into the original text.
		start, end := run.Pos()
		spans = append(spans, span{
			start: start,
			end:   end + 1,
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return spans
}

// spanScript detects the script of a span from its first non-space
// rune. Mixed-script spans shape with the first script found; for
// finer control, split runs by script before shaping.
func spanScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// byteOffsets maps rune indices to byte offsets; the final entry is
// len(text).
func byteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
