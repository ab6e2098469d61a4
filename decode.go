package svgscene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/svgscene/svgdom"
)

// Decoder turns embedded image bytes into a pixmap.
type Decoder interface {
	Decode(data []byte) (*Pixmap, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(data []byte) (*Pixmap, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(data []byte) (*Pixmap, error) {
	return f(data)
}

var (
	decodersMu sync.RWMutex
	decoders   = make(map[svgdom.ImageFormat]Decoder)
)

// RegisterDecoder makes an image decoder available for a format.
// It is intended to be called from the init function of a codec
// package, typically wired in with a blank import:
//
//	import _ "github.com/gogpu/svgscene/codec"
//
// If RegisterDecoder is called twice for the same format or if dec
// is nil, it panics.
func RegisterDecoder(format svgdom.ImageFormat, dec Decoder) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	if dec == nil {
		panic("svgscene: RegisterDecoder decoder is nil")
	}
	if _, dup := decoders[format]; dup {
		panic("svgscene: RegisterDecoder called twice for format " + format.String())
	}
	decoders[format] = dec
}

// UnregisterDecoder removes a registered decoder.
// This is primarily useful in tests.
func UnregisterDecoder(format svgdom.ImageFormat) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	delete(decoders, format)
}

// DecoderFormats returns a sorted list of the names of the formats
// that currently have a registered decoder.
func DecoderFormats() []string {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	names := make([]string, 0, len(decoders))
	for format := range decoders {
		names = append(names, format.String())
	}
	sort.Strings(names)
	return names
}

// decoderFor looks up the decoder for a format.
func decoderFor(format svgdom.ImageFormat) (Decoder, error) {
	decodersMu.RLock()
	dec, ok := decoders[format]
	decodersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten codec import?)", ErrNoDecoder, format.String())
	}
	return dec, nil
}
