package layout

import (
	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

// TargetNormal returns the direction the plug would like to point at: the
// normalized average of the unit vectors from the plug's node center to each
// connected plug. Every connected plug is biased outward by its own node's
// perimeter radius along its own normal, so edges aim at the far rim rather
// than the far node center and leave the ring on the correct side.
//
// A plug without connections has no preference and returns the zero vector.
func TargetNormal(p *graph.Plug) geom.Vec2 {
	others := p.ConnectedPlugs()
	if len(others) == 0 {
		return geom.Vec2{}
	}

	center := p.Node().Pos()
	var average geom.Vec2
	for _, other := range others {
		target := other.Pos().Add(other.Normal().Scale(other.Node().Radius()))
		average = average.Add(target.Sub(center).Normalized())
	}
	return average.Normalized()
}
