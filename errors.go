package svgscene

import "errors"

// Package errors reported through diagnostics or playback.
var (
	// ErrCycle is reported when traversal re-enters a node that is
	// still open on the traversal stack (a reference cycle through
	// children, clips, masks, or patterns).
	ErrCycle = errors.New("svgscene: reference cycle detected")

	// ErrDepthExceeded is reported when traversal passes the
	// configured depth limit. Deeply nested but acyclic documents can
	// raise this; see WithMaxDepth.
	ErrDepthExceeded = errors.New("svgscene: traversal depth limit exceeded")

	// ErrMissingReference is reported when referenced content (clip,
	// mask, pattern, nested document, image data, glyph face) is nil
	// or empty.
	ErrMissingReference = errors.New("svgscene: referenced content missing")

	// ErrNoDecoder is reported when no decoder is registered for an
	// image format.
	ErrNoDecoder = errors.New("svgscene: no decoder registered for image format")

	// ErrDecode is reported when an image decoder rejects the
	// embedded bytes.
	ErrDecode = errors.New("svgscene: image decode failed")

	// ErrUnknownDirective is returned by Playback when a stream
	// contains a directive type it does not recognize.
	ErrUnknownDirective = errors.New("svgscene: unknown directive type")
)
