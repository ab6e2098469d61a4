// Package svgdom defines the resolved vector-document tree consumed by
// the svgscene compiler.
//
// # Model
//
// A Document owns a tree of nodes. Node is a sealed interface over
// exactly five kinds: Group, Path, Image, Text, and NestedDocument.
// Consumers switch exhaustively on the concrete types; no other node
// kinds exist.
//
// The tree is the output of an external parser and is fully resolved:
// units are converted to user-space numbers, the style cascade is
// applied, and viewBox mappings are precomputed. Element-level
// opacity, clip-path, mask, and blend attributes are normalized by the
// parser into wrapping Group nodes, so those properties appear only on
// groups here.
//
// # Ownership
//
// Trees are immutable inputs. The compiler borrows the tree for the
// duration of one compile call and never mutates it; callers may share
// a tree across concurrent compiles.
//
// # Paints
//
// Paint is a sealed interface over Color, LinearGradient,
// RadialGradient, and Pattern. Gradients carry their coordinate units
// (user space or object bounding box), spread method, and an optional
// gradient transform; the compiler resolves all of these against the
// painted geometry.
package svgdom
