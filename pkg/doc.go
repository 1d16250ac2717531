// Package pkg provides the core libraries for Zodiac circular node graphs.
//
// # Overview
//
// Zodiac draws graphs as rings: every node is a circle whose connection
// points (plugs) sit on the perimeter, and an arrangement pass rotates each
// plug toward the nodes it connects to. The pkg directory is organized into
// five main areas:
//
//  1. [graph] - The scene model (nodes, plugs, edges and their rules)
//  2. [layout] - Perimeter zones and the plug arrangement pass
//  3. [render] - SVG, PDF, PNG and DOT output
//  4. [interact] - Drag sessions for interactive hosts
//  5. [io] - Scene serialization
//
// # Architecture
//
// The typical data flow through Zodiac:
//
//	Scene JSON
//	     ↓
//	[io] package (deserialize into a scene)
//	     ↓
//	[layout] package (radius, zones, plug arrangement)
//	     ↓
//	[render] package (ring view or node-link diagram)
//	     ↓
//	SVG/PDF/PNG/DOT output
//
// Supporting packages: [geom] for the y-up vector math, [style] for tunable
// geometry and colors, [errors] for coded errors, [observability] for layout
// and render hooks, [buildinfo] for version stamping.
//
// # Quick Start
//
//	scene, err := io.ImportJSON("scene.json")
//	if err != nil {
//	    return err
//	}
//	st := style.Default()
//	layout.LayoutScene(scene, st)
//	svg := ringsvg.Render(scene, st)
//
// [graph]: github.com/clemenssielaff/ZodiacGraph/pkg/graph
// [layout]: github.com/clemenssielaff/ZodiacGraph/pkg/layout
// [render]: github.com/clemenssielaff/ZodiacGraph/pkg/render
// [interact]: github.com/clemenssielaff/ZodiacGraph/pkg/interact
// [io]: github.com/clemenssielaff/ZodiacGraph/pkg/io
// [geom]: github.com/clemenssielaff/ZodiacGraph/pkg/geom
// [style]: github.com/clemenssielaff/ZodiacGraph/pkg/style
// [errors]: github.com/clemenssielaff/ZodiacGraph/pkg/errors
// [observability]: github.com/clemenssielaff/ZodiacGraph/pkg/observability
// [buildinfo]: github.com/clemenssielaff/ZodiacGraph/pkg/buildinfo
package pkg
