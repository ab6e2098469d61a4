// Package codec registers decoders for the raster formats vector
// documents commonly embed: PNG, JPEG, and GIF from the standard
// library, WEBP, BMP, and TIFF from golang.org/x/image.
//
// Importing it for side effects wires all of them into the svgscene
// decoder registry:
//
//	import _ "github.com/gogpu/svgscene/codec"
//
// Programs that only need some formats can skip this package and call
// svgscene.RegisterDecoder themselves.
package codec

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/svgscene"
	"github.com/gogpu/svgscene/svgdom"
)

func init() {
	svgscene.RegisterDecoder(svgdom.FormatPNG, adapt(png.Decode))
	svgscene.RegisterDecoder(svgdom.FormatJPEG, adapt(jpeg.Decode))
	svgscene.RegisterDecoder(svgdom.FormatGIF, adapt(gif.Decode))
	svgscene.RegisterDecoder(svgdom.FormatWEBP, adapt(webp.Decode))
	svgscene.RegisterDecoder(svgdom.FormatBMP, adapt(bmp.Decode))
	svgscene.RegisterDecoder(svgdom.FormatTIFF, adapt(tiff.Decode))
}

// adapt wraps a stdlib-style image decode function as a Decoder.
func adapt(decode func(io.Reader) (image.Image, error)) svgscene.Decoder {
	return svgscene.DecoderFunc(func(data []byte) (*svgscene.Pixmap, error) {
		img, err := decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return svgscene.FromImage(img), nil
	})
}
