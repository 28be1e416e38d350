// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/meshview/pkg/math"

// BoxEdges lists the 12 edges of an axis-aligned box as index pairs into
// the corner array returned by BoxCorners.
var BoxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Top face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Vertical edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxCorners returns the 8 corners of the axis-aligned box spanned by min
// and max. Corners 0-3 are the bottom face counter-clockwise, 4-7 the top
// face in the same order.
func BoxCorners(min, max math.Vec3) [8]math.Vec3 {
	return [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}
