// Package systems provides the pure update rules of the arena simulation.
package systems

import "math"

// Clamp clamps v between minVal and maxVal.
func Clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles intersect (strictly).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return distanceSq(x1, y1, x2, y2) < rr*rr
}

// OutOfBounds reports whether a point lies outside [0,w]x[0,h].
func OutOfBounds(x, y, w, h float64) bool {
	return x < 0 || x > w || y < 0 || y > h
}

// FrameFactor converts an elapsed time into reference frames.
func FrameFactor(dtMs, frameMs float64) float64 {
	if frameMs <= 0 {
		return 0
	}
	return dtMs / frameMs
}

// Direction returns the unit vector from (x1,y1) toward (x2,y2) and the distance.
// A zero distance yields a zero vector.
func Direction(x1, y1, x2, y2 float64) (ux, uy, dist float64) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// Approach moves (x,y) a fraction of the remaining way toward (tx,ty).
// The fraction is rate*frames, capped at 1 so long frames never overshoot.
func Approach(x, y, tx, ty, rate, frames float64) (float64, float64) {
	f := Clamp(rate*frames, 0, 1)
	return x + (tx-x)*f, y + (ty-y)*f
}
