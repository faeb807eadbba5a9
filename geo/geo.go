// Package geo provides 2D geometry helpers.
package geo

import "math"

// Point is a position in 2D space.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q. The result is
// non-negative and symmetric in its arguments.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
