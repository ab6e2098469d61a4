package svgscene

import "fmt"

// Stream is an ordered sequence of drawing directives together with
// the logical size of the surface they target. It is the output of
// Compile and the input to Playback.
//
// A stream is immutable once returned by Compile and safe for
// concurrent playback into independent backends.
type Stream struct {
	width      float64
	height     float64
	directives []Directive
}

// Width returns the logical width of the target surface.
func (s *Stream) Width() float64 {
	return s.width
}

// Height returns the logical height of the target surface.
func (s *Stream) Height() float64 {
	return s.height
}

// Directives returns the recorded directives in paint order.
// The returned slice must not be modified.
func (s *Stream) Directives() []Directive {
	return s.directives
}

// Len returns the number of directives in the stream.
func (s *Stream) Len() int {
	return len(s.directives)
}

// Ops returns the opcode sequence of the stream. It is a convenience
// for tests and debugging.
func (s *Stream) Ops() []Op {
	ops := make([]Op, len(s.directives))
	for i, d := range s.directives {
		ops[i] = d.Op()
	}
	return ops
}

// Playback replays the stream into a backend.
//
// It calls Begin with the stream size, dispatches each directive in
// order, and calls End. If Begin fails its error is returned and no
// directives are dispatched. An unrecognized directive type stops
// playback with ErrUnknownDirective; End is still called so the
// backend can release resources.
func (s *Stream) Playback(backend Backend) error {
	if err := backend.Begin(s.width, s.height); err != nil {
		return fmt.Errorf("svgscene: playback begin: %w", err)
	}

	for _, d := range s.directives {
		switch dir := d.(type) {
		case SetTransform:
			backend.SetTransform(dir.Transform)
		case PushLayer:
			backend.PushLayer(LayerParams{
				Clip:  dir.Clip,
				Mask:  dir.Mask,
				Alpha: dir.Alpha,
				Blend: dir.Blend,
			})
		case PopLayer:
			backend.PopLayer()
		case FillPath:
			backend.FillPath(dir.Path, dir.Brush, dir.Rule)
		case StrokePath:
			backend.StrokePath(dir.Path, dir.Brush, dir.Style)
		case DrawImage:
			backend.DrawImage(dir.Image, dir.Rect, dir.Sampling)
		case DrawGlyphRun:
			backend.DrawGlyphRun(dir.Face, dir.Size, dir.Glyphs, dir.Brush)
		default:
			_ = backend.End()
			return fmt.Errorf("%w: %T", ErrUnknownDirective, d)
		}
	}

	return backend.End()
}
