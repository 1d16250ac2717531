// Package layout computes plug placement on node perimeters.
//
// A layout pass partitions a node's perimeter into evenly spaced angular
// zones (clear of the horizontal label dead zone), derives a preferred
// direction for every connected plug from the positions of its counterparts,
// and assigns plugs to zones through the greedy heuristic in pkg/layout/arrange
// so that the total weighted angular displacement stays low. The pass runs
// continuously while nodes move and graphs change, which is why every step
// favors speed over optimality.
//
// The pass is synchronous, single-threaded and allocation-light: zone arrays
// and cost tables live only for the duration of one [Pass] call. The only
// shared state it touches is the node's plug collection, which it reads, and
// each plug's shape (normal + sweep), which it writes at the very end.
package layout

import (
	"cmp"
	"slices"
	"time"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout/arrange"
	"github.com/clemenssielaff/ZodiacGraph/pkg/observability"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

// Placement records where one plug ended up after a pass.
type Placement struct {
	Plug  *graph.Plug // the placed plug
	Zone  int         // assigned zone index
	Angle float64     // zone center angle in radians
	Sweep float64     // angular sweep of the plug
}

// Result describes the outcome of a single layout pass over one node.
// It exists for inspection and tooling; the authoritative output is the
// shape written to each plug.
type Result struct {
	ZoneCount  int         // total zones, plug count rounded up to even
	Zones      []float64   // final zone center angles, post collapse
	Placements []Placement // one entry per plug, in plug creation order
}

// Pass runs a full layout pass over one node: radius adjustment, zone
// construction, target directions, cost table, assignment, empty-zone
// collapse and shape application. A node without plugs is a no-op that only
// resets the radius.
//
// Passing the same inputs twice yields the identical assignment; the pass
// reads no hidden state besides the scene geometry it is given.
func Pass(n *graph.Node, st style.Style) Result {
	start := time.Now()
	AdjustRadius(n, st)

	plugs := n.Plugs()
	plugCount := len(plugs)
	if plugCount == 0 {
		return Result{}
	}
	observability.Layout().OnPassStart(n.Name(), plugCount)

	// As many zones above the label as below it.
	zoneCount := plugCount + plugCount%2
	gap := st.PlugGap / n.Radius()
	halfDead := deadZoneAngle(st, n.Radius()) / 2
	zones := zoneDirections(zoneCount, halfDead, gap)

	// Preferred directions for every plug that has at least one edge.
	type connectedPlug struct {
		index     int // position in the node's plug list
		direction float64
		priority  float64
	}
	var connected []connectedPlug
	for i, p := range plugs {
		if p.EdgeCount() == 0 {
			continue
		}
		connected = append(connected, connectedPlug{
			index:     i,
			direction: TargetNormal(p).Angle(),
			priority:  p.ArrangementPriority(),
		})
	}

	// Trivial placement for all plugs: creation order into zone order.
	assignment := make([]int, plugCount)
	for i := range assignment {
		assignment[i] = i
	}

	if len(connected) > 0 {
		costs := arrange.NewCostTable(len(connected), zoneCount)
		for row, c := range connected {
			for col, zone := range zones {
				cost := geom.AngularDistance(c.direction, zone) * c.priority
				costs.Set(row, col, cost*cost)
			}
		}

		// Swap each connected plug into its assigned zone, displacing the
		// previous holder into the freed slot. The assignment stays a valid
		// bijection after every step.
		for row, zone := range arrange.Arrange(costs) {
			plugIndex := connected[row].index
			freed := assignment[plugIndex]
			occupied := slices.Index(assignment, zone)
			assignment[plugIndex] = zone
			if occupied != -1 {
				assignment[occupied] = freed
			}
		}
	}

	// An odd plug count leaves exactly one zone unused; collapse it so the
	// remaining zones of that half absorb the freed arc.
	if plugCount < zoneCount {
		for zone := 0; zone < zoneCount; zone++ {
			if !slices.Contains(assignment, zone) {
				collapseZone(zones, zone, halfDead, gap)
				break
			}
		}
	}

	sweep := st.PlugSweep / n.Radius()
	result := Result{
		ZoneCount:  zoneCount,
		Zones:      zones,
		Placements: make([]Placement, plugCount),
	}
	for i, p := range plugs {
		angle := zones[assignment[i]]
		p.SetShape(geom.FromAngle(angle), sweep)
		result.Placements[i] = Placement{
			Plug:  p,
			Zone:  assignment[i],
			Angle: angle,
			Sweep: sweep,
		}
	}

	observability.Layout().OnPassComplete(n.Name(), zoneCount, time.Since(start))
	return result
}

// LayoutScene runs layout passes over every node of the scene in a
// deterministic order. Two rounds are run: the first seeds radii and plug
// normals, the second lets target directions account for the placement of
// their counterparts. Interactive hosts instead call [Pass] per node on
// every topology or geometry change.
func LayoutScene(s *graph.Scene, st style.Style) {
	nodes := s.Nodes()
	slices.SortFunc(nodes, func(a, b *graph.Node) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	for range 2 {
		for _, n := range nodes {
			Pass(n, st)
		}
	}
}
