// Package geom provides the plane geometry used throughout svgscene:
// affine transforms, points, rectangles, and Bezier paths.
//
// All coordinates are float64. Affine follows the row-major 2x3
// convention, and composition order matches matrix multiplication:
// a.Multiply(b) applies b first, then a.
package geom
