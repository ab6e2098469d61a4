package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func TestAffineMultiplyOrder(t *testing.T) {
	// inherited.Multiply(local) must apply local first.
	inherited := Translate(10, 20)
	local := Scale(2, 3)

	got := inherited.Multiply(local).TransformPoint(Pt(1, 1))
	want := Pt(12, 23) // scale then translate

	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("Multiply order: got %+v, want %+v", got, want)
	}
}

func TestAffineTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(5, -2), Pt(1, 1), Pt(6, -1)},
		{"scale", Scale(2, 0.5), Pt(4, 4), Pt(8, 2)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear x", Shear(1, 0), Pt(2, 3), Pt(5, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAffineTransformVector(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	got := m.TransformVector(Pt(3, 4))
	if math.Abs(got.X-6) > epsilon || math.Abs(got.Y-8) > epsilon {
		t.Errorf("TransformVector ignored translation incorrectly: got %+v", got)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
	}{
		{"translate", Translate(7, -3)},
		{"scale", Scale(2, 5)},
		{"rotate", Rotate(0.7)},
		{"composed", Translate(3, 4).Multiply(Rotate(1.1)).Multiply(Scale(2, 0.25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(13, -7)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
				t.Errorf("Invert round trip: got %+v, want %+v", back, p)
			}
		})
	}
}

func TestAffineInvertSingular(t *testing.T) {
	m := Scale(0, 0)
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular = %+v, want identity", got)
	}
}

func TestAffinePredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
	if !Translate(5, 6).IsTranslation() {
		t.Error("Translate(5,6).IsTranslation() = false")
	}
	if Scale(2, 1).IsTranslation() {
		t.Error("Scale(2,1).IsTranslation() = true")
	}
}

func TestAffineEq(t *testing.T) {
	a := Rotate(math.Pi / 3)
	b := Rotate(math.Pi / 3).Multiply(Translate(1e-12, 0))
	if !a.Eq(b, 1e-9) {
		t.Error("Eq within tolerance = false")
	}
	if a.Eq(Translate(1, 0), 1e-9) {
		t.Error("Eq across distinct transforms = true")
	}
}

func TestAffineAssociativity(t *testing.T) {
	a := Translate(2, 3)
	b := Rotate(0.5)
	c := Scale(1.5, 0.5)

	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !left.Eq(right, epsilon) {
		t.Errorf("associativity: (a*b)*c = %+v, a*(b*c) = %+v", left, right)
	}
}
