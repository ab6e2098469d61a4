package svgscene

import (
	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// ClipSpec describes the clip geometry attached to a layer.
// The path is in the coordinate space established by the transform
// current when the layer is pushed. An empty path clips everything
// away; subsequent content in the layer produces no coverage.
type ClipSpec struct {
	Path *geom.Path
	Rule svgdom.FillRule
}

// MaskSpec describes a mask attached to a layer. The mask content is
// an ordinary directive stream replayed into an offscreen surface;
// its per-pixel coverage modulates the layer when it pops.
type MaskSpec struct {
	// Stream holds the compiled mask content.
	Stream *Stream

	// Luminance selects luminance-to-coverage conversion. When false
	// the mask's alpha channel is used directly.
	Luminance bool
}

// LayerParams carries everything a backend needs to push one
// isolation layer. Zero or more of Clip and Mask may be set;
// Alpha is always in [0, 1] and Blend defaults to BlendNormal.
type LayerParams struct {
	Clip  *ClipSpec
	Mask  *MaskSpec
	Alpha float64
	Blend svgdom.BlendMode
}

// needsLayer reports whether a group requires an isolation layer:
// when it is less than fully opaque, uses a non-normal blend mode,
// or carries a clip or mask. Plain grouping with none of these
// composes children directly into the parent.
func needsLayer(alpha float64, blend svgdom.BlendMode, clip *svgdom.ClipPath, mask *svgdom.Mask) bool {
	return alpha < 1 || blend != svgdom.BlendNormal || clip != nil || mask != nil
}

// clampAlpha clamps an opacity value to [0, 1]. NaN clamps to 1 so a
// malformed opacity renders rather than vanishes.
func clampAlpha(a float64) float64 {
	switch {
	case a != a:
		return 1
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}
