package svgdom

import "github.com/gogpu/svgscene/geom"

// ClipPath restricts rendering of a group to the outlines collected
// from a referenced subtree.
type ClipPath struct {
	// Transform positions the clip geometry in the clipped group's
	// user space.
	Transform geom.Affine

	// Rule is the fill rule used to build the clip region.
	Rule FillRule

	// Root holds the clip content. Only path geometry contributes;
	// other node kinds inside a clip are ignored.
	Root *Group
}

// NewClipPath returns a non-zero-rule clip over the given content
// with identity transform.
func NewClipPath(root *Group) *ClipPath {
	return &ClipPath{
		Transform: geom.Identity(),
		Rule:      FillNonZero,
		Root:      root,
	}
}

// MaskKind selects how mask pixel values convert to coverage.
type MaskKind uint8

const (
	// MaskLuminance derives coverage from the mask's luminance
	// (default).
	MaskLuminance MaskKind = iota
	// MaskAlpha derives coverage from the mask's alpha channel.
	MaskAlpha
)

// Mask modulates a group's coverage with the rendering of a
// referenced subtree. The compiler turns the subtree into a sub-scene;
// sampling it is the backend's business.
type Mask struct {
	Root *Group
	Kind MaskKind
}
