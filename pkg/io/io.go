// Package io provides JSON import and export for scenes.
//
// # JSON Format
//
// A scene file has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"name": "reader", "x": 0, "y": 0, "plugs": [
//	      {"name": "out", "direction": "out"}
//	    ]},
//	    {"name": "writer", "x": 300, "y": 120, "plugs": [
//	      {"name": "in", "direction": "in"}
//	    ]}
//	  ],
//	  "edges": [
//	    {"from_node": "reader", "from_plug": "out", "to_node": "writer", "to_plug": "in"}
//	  ]
//	}
//
// Node names must be unique within a file so edges can reference them;
// the in-memory model does not require unique node names, so this is a
// file-format restriction only. Plug placement (normal, sweep) is never
// stored: it is derived state, recomputed by a layout pass after import.
//
// Exported files are deterministic: nodes sort by name and plugs keep
// their creation order, so round-tripping a scene produces identical bytes.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

type sceneFile struct {
	Nodes []nodeRecord `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

type nodeRecord struct {
	Name  string       `json:"name"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Plugs []plugRecord `json:"plugs,omitempty"`
}

type plugRecord struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

type edgeRecord struct {
	FromNode string `json:"from_node"`
	FromPlug string `json:"from_plug"`
	ToNode   string `json:"to_node"`
	ToPlug   string `json:"to_plug"`
}

// ReadJSON decodes a JSON scene from r. It returns an error for malformed
// JSON, duplicate node names, unknown plug directions, edges referencing
// unknown nodes or plugs, and any structural rule violation reported by
// pkg/graph (which can be unwrapped with errors.Is).
func ReadJSON(r io.Reader) (*graph.Scene, error) {
	var data sceneFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	s := graph.NewScene()
	nodes := make(map[string]*graph.Node, len(data.Nodes))
	for _, nr := range data.Nodes {
		if nr.Name == "" {
			return nil, fmt.Errorf("node with empty name")
		}
		if _, exists := nodes[nr.Name]; exists {
			return nil, fmt.Errorf("duplicate node name %q", nr.Name)
		}
		n := s.CreateNode(nr.Name)
		n.SetPos(geom.Vec2{X: nr.X, Y: nr.Y})
		nodes[nr.Name] = n

		for _, pr := range nr.Plugs {
			dir, err := parseDirection(pr.Direction)
			if err != nil {
				return nil, fmt.Errorf("node %q plug %q: %w", nr.Name, pr.Name, err)
			}
			if _, err := n.CreatePlug(pr.Name, dir); err != nil {
				return nil, fmt.Errorf("node %q plug %q: %w", nr.Name, pr.Name, err)
			}
		}
	}

	for _, er := range data.Edges {
		from, err := findPlug(nodes, er.FromNode, er.FromPlug)
		if err != nil {
			return nil, fmt.Errorf("edge source: %w", err)
		}
		to, err := findPlug(nodes, er.ToNode, er.ToPlug)
		if err != nil {
			return nil, fmt.Errorf("edge target: %w", err)
		}
		if _, err := s.Connect(from, to); err != nil {
			return nil, fmt.Errorf("edge %s.%s -> %s.%s: %w",
				er.FromNode, er.FromPlug, er.ToNode, er.ToPlug, err)
		}
	}

	return s, nil
}

// ImportJSON reads the scene file at path.
func ImportJSON(path string) (*graph.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteJSON encodes the scene as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(s *graph.Scene, w io.Writer) error {
	nodes := s.Nodes()
	slices.SortFunc(nodes, func(a, b *graph.Node) int {
		return strings.Compare(a.Name(), b.Name())
	})

	out := sceneFile{Nodes: make([]nodeRecord, len(nodes))}
	for i, n := range nodes {
		nr := nodeRecord{
			Name: n.Name(),
			X:    n.Pos().X,
			Y:    n.Pos().Y,
		}
		for _, p := range n.Plugs() {
			nr.Plugs = append(nr.Plugs, plugRecord{
				Name:      p.Name(),
				Direction: p.Direction().String(),
			})
			for _, e := range p.Edges() {
				if e.From() != p {
					continue
				}
				out.Edges = append(out.Edges, edgeRecord{
					FromNode: e.From().Node().Name(),
					FromPlug: e.From().Name(),
					ToNode:   e.To().Node().Name(),
					ToPlug:   e.To().Name(),
				})
			}
		}
		out.Nodes[i] = nr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportJSON writes the scene to the file at path, creating or truncating it.
func ExportJSON(s *graph.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(s, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func parseDirection(s string) (graph.Direction, error) {
	switch s {
	case "in":
		return graph.DirIn, nil
	case "out":
		return graph.DirOut, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func findPlug(nodes map[string]*graph.Node, nodeName, plugName string) (*graph.Plug, error) {
	n, ok := nodes[nodeName]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", nodeName)
	}
	for _, p := range n.Plugs() {
		if p.Name() == plugName {
			return p, nil
		}
	}
	return nil, fmt.Errorf("node %q has no plug %q", nodeName, plugName)
}
