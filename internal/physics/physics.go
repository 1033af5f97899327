// Package physics provides distance and containment helpers.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
// Points exactly on the circle count as inside.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	if radius < 0 {
		return false
	}
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// RectCenter returns the centre of an axis-aligned rectangle.
func RectCenter(x, y, w, h float64) (cx, cy float64) {
	return x + w/2, y + h/2
}

// PolarOffset returns the point at angle (radians) and distance from (x, y).
func PolarOffset(x, y, angle, distance float64) (float64, float64) {
	return x + math.Cos(angle)*distance, y + math.Sin(angle)*distance
}
