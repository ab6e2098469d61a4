// Package svgscene compiles resolved vector-document trees into ordered
// streams of low-level drawing directives for scene-recorder backends.
//
// The input is an svgdom.Document: an immutable tree of group, path,
// image, text, and nested-document nodes produced by an external
// parser, with units, style cascade, and viewBox math already resolved.
// The output is a Stream of typed directives (SetTransform, PushLayer,
// PopLayer, FillPath, StrokePath, DrawImage, DrawGlyphRun) whose order
// is the painter's-algorithm order of the document.
//
// # Architecture
//
// Compilation is a single depth-first traversal with three cooperating
// parts:
//
//   - The resolver turns document paints into backend-ready brushes:
//     gradient stops are normalized and rescaled against bounding
//     boxes, degenerate gradients fall back to solid colors, and
//     patterns are compiled into tile sub-streams.
//   - The layer manager decides when a group needs an isolated
//     compositing layer (opacity below 1, non-normal blend, clip, or
//     mask) and brackets its subtree with PushLayer/PopLayer.
//   - The walker visits children in document order, composes
//     transforms down the tree, de-duplicates SetTransform directives,
//     and guards against reference cycles.
//
// Compilation never fails as a whole: malformed subtrees are dropped
// and reported through a side list of diagnostics.
//
// # Image decoding
//
// Embedded raster images are decoded through a pluggable registry
// keyed by format. The codec package registers the stock decoders;
// import it for its side effects:
//
//	import _ "github.com/gogpu/svgscene/codec"
//
// # Example
//
//	stream, diags := svgscene.Compile(doc)
//	for _, d := range diags {
//		log.Println(d)
//	}
//	if err := stream.Playback(backend); err != nil {
//		// backend failed mid-replay
//	}
package svgscene

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
