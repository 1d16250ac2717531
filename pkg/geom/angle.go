package geom

import "math"

// AngularDistance returns the absolute angular difference between two angles,
// wrapped into [0, π]. The inputs may be any real angles in radians; the
// result is the length of the shorter arc between them.
func AngularDistance(alpha, beta float64) float64 {
	d := math.Abs(alpha - beta)
	d = math.Mod(d, 2*math.Pi)
	if d > math.Pi {
		return 2*math.Pi - d
	}
	return d
}
