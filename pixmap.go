package svgscene

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/svgscene/svgdom"
)

// Pixmap is a rectangular pixel buffer holding decoded image data.
// Pixels are 8-bit RGBA with straight (non-premultiplied) alpha,
// 4 bytes per pixel, rows packed top to bottom.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data in RGBA order.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out of range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c svgdom.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out of range coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) svgdom.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return svgdom.Transparent
	}
	i := (y*p.width + x) * 4
	return svgdom.Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// FromImage creates a pixmap from an image, converting to straight
// alpha RGBA. The pixmap origin is the image's bounds minimum.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	// Fast path: tightly packed NRGBA is already our layout.
	if src, ok := img.(*image.NRGBA); ok && src.Stride == pm.width*4 {
		copy(pm.data, src.Pix)
		return pm
	}

	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory
// with the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
