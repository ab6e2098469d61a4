package svgdom

// FillRule determines which regions a path encloses.
type FillRule uint8

const (
	// FillNonZero uses the non-zero winding rule (default).
	FillNonZero FillRule = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "nonzero"
	case FillEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// LineCap defines how stroke endpoints are drawn.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin defines how stroke segment corners are drawn.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Fill describes how a shape's interior is painted.
type Fill struct {
	Paint   Paint
	Opacity float64 // fill-opacity, 0.0 to 1.0
	Rule    FillRule
}

// NewFill returns a fully opaque non-zero fill with the given paint.
func NewFill(p Paint) *Fill {
	return &Fill{
		Paint:   p,
		Opacity: 1,
		Rule:    FillNonZero,
	}
}

// Stroke describes how a shape's outline is painted.
type Stroke struct {
	Paint      Paint
	Opacity    float64 // stroke-opacity, 0.0 to 1.0
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// NewStroke returns a fully opaque stroke of the given paint and
// width, with butt caps, miter joins, and the conventional miter
// limit of 4.
func NewStroke(p Paint, width float64) *Stroke {
	return &Stroke{
		Paint:      p,
		Opacity:    1,
		Width:      width,
		MiterLimit: 4,
	}
}
