package geom

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of one or more subpaths.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty returns true if the path has no elements.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// Append appends the subpaths of q to p. The appended elements keep
// their own coordinates; q must begin with a MoveTo to avoid joining
// the last subpath of p.
func (p *Path) Append(q *Path) {
	if q.Empty() {
		return
	}
	p.elements = append(p.elements, q.elements...)
	p.start = q.start
	p.current = q.current
}

// Bounds returns the axis-aligned bounding box of the path's control
// polygon. Curve control points are included, so the box is
// conservative: it always contains the rendered curve, but may be
// larger than the tight curve bounds. Returns an empty rectangle for
// an empty path.
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return EmptyRect()
	}

	bounds := EmptyRect()
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			bounds = bounds.UnionPoint(el.Point)
		case LineTo:
			bounds = bounds.UnionPoint(el.Point)
		case QuadTo:
			bounds = bounds.UnionPoint(el.Control)
			bounds = bounds.UnionPoint(el.Point)
		case CubicTo:
			bounds = bounds.UnionPoint(el.Control1)
			bounds = bounds.UnionPoint(el.Control2)
			bounds = bounds.UnionPoint(el.Point)
		case Close:
		}
	}
	return bounds
}

// Transform returns a copy of the path with every point mapped
// through m. The receiver is not modified.
func (p *Path) Transform(m Affine) *Path {
	out := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
	}
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.TransformPoint(el.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.TransformPoint(el.Point)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: m.TransformPoint(el.Control),
				Point:   m.TransformPoint(el.Point),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.TransformPoint(el.Control1),
				Control2: m.TransformPoint(el.Control2),
				Point:    m.TransformPoint(el.Point),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	return out
}

// kappa approximates a quarter circle with a cubic Bezier.
const kappa = 0.5522847498307936

// Rectangle returns a closed rectangular path.
func Rectangle(r Rect) *Path {
	p := NewPath()
	if r.IsEmpty() {
		return p
	}
	p.MoveTo(r.MinX, r.MinY)
	p.LineTo(r.MaxX, r.MinY)
	p.LineTo(r.MaxX, r.MaxY)
	p.LineTo(r.MinX, r.MaxY)
	p.Close()
	return p
}

// Ellipse returns a closed elliptical path approximated by four
// cubic Bezier segments.
func Ellipse(center Point, rx, ry float64) *Path {
	p := NewPath()
	if rx <= 0 || ry <= 0 {
		return p
	}
	ox := rx * kappa
	oy := ry * kappa
	cx, cy := center.X, center.Y

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
	return p
}
