package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"slices"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/svgscene"
	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

func TestRegisteredFormats(t *testing.T) {
	got := svgscene.DecoderFormats()
	for _, want := range []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"} {
		if !slices.Contains(got, want) {
			t.Errorf("DecoderFormats() = %v, missing %q", got, want)
		}
	}
}

// testImage builds a 2x2 image with distinct opaque colors.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

// compileImage compiles a document holding a single image node and
// returns the DrawImage directive it produced, if any.
func compileImage(t *testing.T, format svgdom.ImageFormat, data []byte) (svgscene.DrawImage, []svgscene.Diagnostic, bool) {
	t.Helper()

	node := svgdom.NewImage(format, data, geom.NewRect(0, 0, 2, 2))
	root := svgdom.NewGroup().AppendChild(node)
	doc := &svgdom.Document{Width: 10, Height: 10, Root: root}

	stream, diags := svgscene.Compile(doc)
	for _, d := range stream.Directives() {
		if di, ok := d.(svgscene.DrawImage); ok {
			return di, diags, true
		}
	}
	return svgscene.DrawImage{}, diags, false
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	di, diags, ok := compileImage(t, svgdom.FormatPNG, buf.Bytes())
	if !ok {
		t.Fatalf("no DrawImage directive, diagnostics: %v", diags)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if di.Image.Width() != 2 || di.Image.Height() != 2 {
		t.Fatalf("decoded %dx%d, want 2x2", di.Image.Width(), di.Image.Height())
	}
	if got := di.Image.GetPixel(0, 0); got != svgdom.RGB(255, 0, 0) {
		t.Errorf("pixel (0,0) = %+v, want opaque red", got)
	}
	if got := di.Image.GetPixel(1, 1); got != svgdom.RGB(255, 255, 255) {
		t.Errorf("pixel (1,1) = %+v, want white", got)
	}
}

func TestDecodeGIF(t *testing.T) {
	pal := color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{B: 255, A: 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.SetColorIndex(0, 0, 0)
	img.SetColorIndex(1, 0, 1)
	img.SetColorIndex(0, 1, 1)
	img.SetColorIndex(1, 1, 0)

	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("gif.Encode: %v", err)
	}

	di, diags, ok := compileImage(t, svgdom.FormatGIF, buf.Bytes())
	if !ok {
		t.Fatalf("no DrawImage directive, diagnostics: %v", diags)
	}
	if got := di.Image.GetPixel(0, 0); got != svgdom.RGB(255, 0, 0) {
		t.Errorf("pixel (0,0) = %+v, want opaque red", got)
	}
	if got := di.Image.GetPixel(1, 0); got != svgdom.RGB(0, 0, 255) {
		t.Errorf("pixel (1,0) = %+v, want opaque blue", got)
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(), &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}

	// JPEG is lossy; only the dimensions are stable.
	di, diags, ok := compileImage(t, svgdom.FormatJPEG, buf.Bytes())
	if !ok {
		t.Fatalf("no DrawImage directive, diagnostics: %v", diags)
	}
	if di.Image.Width() != 2 || di.Image.Height() != 2 {
		t.Errorf("decoded %dx%d, want 2x2", di.Image.Width(), di.Image.Height())
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	di, _, ok := compileImage(t, svgdom.FormatBMP, buf.Bytes())
	if !ok {
		t.Fatal("no DrawImage directive")
	}
	if got := di.Image.GetPixel(0, 1); got != svgdom.RGB(0, 0, 255) {
		t.Errorf("pixel (0,1) = %+v, want opaque blue", got)
	}
}

func TestDecodeTIFF(t *testing.T) {
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, testImage(), nil); err != nil {
		t.Fatalf("tiff.Encode: %v", err)
	}

	di, _, ok := compileImage(t, svgdom.FormatTIFF, buf.Bytes())
	if !ok {
		t.Fatal("no DrawImage directive")
	}
	if got := di.Image.GetPixel(1, 0); got != svgdom.RGB(0, 255, 0) {
		t.Errorf("pixel (1,0) = %+v, want opaque green", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	for _, format := range []svgdom.ImageFormat{
		svgdom.FormatPNG, svgdom.FormatWEBP,
	} {
		t.Run(format.String(), func(t *testing.T) {
			_, diags, ok := compileImage(t, format, []byte("not an image"))
			if ok {
				t.Fatal("got a DrawImage directive from garbage bytes")
			}
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(diags))
			}
			if !errors.Is(diags[0].Err, svgscene.ErrDecode) {
				t.Errorf("diagnostic error = %v, want ErrDecode", diags[0].Err)
			}
		})
	}
}
