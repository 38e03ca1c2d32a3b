// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AABB is an axis-aligned box given by its centre and full size.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether both axis intervals intersect. Touching edges do not count.
func (a AABB) Overlaps(b AABB) bool {
	return math.Abs(a.X-b.X) < (a.Width+b.Width)/2 &&
		math.Abs(a.Y-b.Y) < (a.Height+b.Height)/2
}

// Top returns the y of the upper edge.
func (a AABB) Top() float64 {
	return a.Y + a.Height/2
}

// Bottom returns the y of the lower edge.
func (a AABB) Bottom() float64 {
	return a.Y - a.Height/2
}
