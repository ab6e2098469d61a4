package svgscene

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/svgscene/svgdom"
)

var _ image.Image = (*Pixmap)(nil)

// TestSetPixelRoundTrip verifies raw layout and GetPixel agree.
func TestSetPixelRoundTrip(t *testing.T) {
	pm := NewPixmap(10, 10)

	c := svgdom.Color{R: 128, G: 64, B: 32, A: 200}
	pm.SetPixel(5, 5, c)

	// Verify raw data directly.
	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 200 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (128, 64, 32, 200)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	if got := pm.GetPixel(5, 5); got != c {
		t.Errorf("GetPixel(5, 5) = %+v, want %+v", got, c)
	}
}

// TestSetPixelOutOfBounds verifies out-of-bounds coordinates are
// silently ignored.
func TestSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)

	// Save original data.
	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	// These should not panic and should not modify data.
	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, svgdom.RGB(255, 0, 0))
	}

	// Data should be unchanged.
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestGetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(0, 0, svgdom.RGB(255, 255, 255))

	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := pm.GetPixel(c.x, c.y); got != svgdom.Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}
}

// TestFromImageNRGBA exercises the tightly-packed fast path.
func TestFromImageNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{G: 200, A: 128})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("pixmap %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0); got != (svgdom.Color{R: 255, A: 255}) {
		t.Errorf("(0,0) = %+v", got)
	}
	if got := pm.GetPixel(2, 1); got != (svgdom.Color{G: 200, A: 128}) {
		t.Errorf("(2,1) = %+v", got)
	}
}

// TestFromImageSubImage exercises the draw conversion path: a
// sub-image keeps the parent stride, so the fast path cannot apply.
func TestFromImageSubImage(t *testing.T) {
	parent := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	parent.SetNRGBA(3, 3, color.NRGBA{B: 77, A: 255})
	sub := parent.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)

	pm := FromImage(sub)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("pixmap %dx%d, want 4x4", pm.Width(), pm.Height())
	}
	// Parent (3,3) lands at pixmap (1,1).
	if got := pm.GetPixel(1, 1); got != (svgdom.Color{B: 77, A: 255}) {
		t.Errorf("(1,1) = %+v", got)
	}
}

// TestFromImagePremultiplied verifies premultiplied sources convert
// to straight alpha.
func TestFromImagePremultiplied(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	// 50% transparent red, premultiplied.
	src.SetRGBA(0, 0, color.RGBA{R: 128, A: 128})

	pm := FromImage(src)
	got := pm.GetPixel(0, 0)
	if got.R != 255 || got.A != 128 {
		t.Errorf("got %+v, want straight-alpha (255, 0, 0, 128)", got)
	}
}

// TestToImageCopies verifies the returned image shares no memory with
// the pixmap.
func TestToImageCopies(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, svgdom.RGB(10, 20, 30))

	img := pm.ToImage()
	pm.SetPixel(0, 0, svgdom.RGB(99, 99, 99))

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("image mutated with the pixmap: %+v", got)
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(1, 2, svgdom.Color{R: 1, G: 2, B: 3, A: 4})

	if got := pm.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	if got := pm.At(1, 2); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("At(1, 2) = %+v", got)
	}
	if got := pm.At(-1, 0); got != (color.NRGBA{}) {
		t.Errorf("At out of range = %+v, want zero", got)
	}
}
