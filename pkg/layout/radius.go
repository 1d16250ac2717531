package layout

import (
	"math"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

// deadZoneAngle returns the full angular span of the perimeter potentially
// obscured by the node's label: the label height measured at the inner rim
// of an incoming plug. Degenerate radii yield π, blanking the whole half.
func deadZoneAngle(st style.Style, radius float64) float64 {
	denom := radius - st.PlugWidth*1.5
	if denom <= 0 {
		return math.Pi
	}
	angle := st.LabelHeight / denom
	if angle > math.Pi {
		return math.Pi
	}
	return angle
}

// requiredRadius computes the perimeter radius for a node with count plugs:
// the circumference must hold every plug sweep, a gap per plug plus two
// spares, and the label dead zone on both sides. Because the dead-zone
// angle itself depends on the radius, the value is found by fixed-point
// iteration from the minimal radius; it converges within a few steps and is
// independent of the node's current radius, keeping layout passes
// deterministic.
func requiredRadius(count int, st style.Style) float64 {
	if count == 0 {
		return st.MinRadius
	}
	r := st.MinRadius
	for range 8 {
		deadArc := deadZoneAngle(st, r) * r
		required := st.PlugSweep*float64(count) + st.PlugGap*float64(count+2) + deadArc*2
		next := required / (2 * math.Pi)
		if next < st.MinRadius {
			next = st.MinRadius
		}
		if math.Abs(next-r) < 1e-9 {
			return next
		}
		r = next
	}
	return r
}

// AdjustRadius grows or shrinks the node's perimeter to fit its current
// plug count, never below the style's minimal radius, and refreshes every
// plug's angular sweep for the new radius.
func AdjustRadius(n *graph.Node, st style.Style) {
	radius := requiredRadius(n.PlugCount(), st)
	n.SetRadius(radius)

	sweep := st.PlugSweep / radius
	for _, p := range n.Plugs() {
		p.SetShape(p.Normal(), sweep)
	}
}
