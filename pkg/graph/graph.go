// Package graph holds the in-memory node graph edited by the UI layer:
// a [Scene] of circular [Node]s, directional [Plug]s on their perimeters
// and [Edge]s connecting plugs across nodes.
//
// The package enforces the structural rules of the graph (direction pairing,
// single edge per incoming plug, no duplicate edges) but knows nothing about
// placement; plug normals and sweeps are written by pkg/layout.
//
// Scene is not safe for concurrent use. All mutation is expected to happen
// on a single goroutine, interleaved with - never during - layout passes.
package graph

import (
	"errors"

	"github.com/google/uuid"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
)

var (
	// ErrInvalidPlugName is returned by [Node.CreatePlug] when the plug name
	// is empty. Plug names double as display labels and must be set.
	ErrInvalidPlugName = errors.New("plug name must not be empty")

	// ErrDuplicatePlugName is returned by [Node.CreatePlug] when the node
	// already owns a plug with the same name. Names are unique per node.
	ErrDuplicatePlugName = errors.New("duplicate plug name")

	// ErrPlugConnected is returned by [Node.RemovePlug] and
	// [Scene.RemoveNode] when the target still has live connections.
	// Edges must be removed explicitly first.
	ErrPlugConnected = errors.New("plug still has connections")

	// ErrDirectionMismatch is returned by [Scene.Connect] when the edge
	// endpoints are not an outgoing source and an incoming target.
	ErrDirectionMismatch = errors.New("edge must run from an outgoing to an incoming plug")

	// ErrSameNode is returned by [Scene.Connect] when both plugs belong to
	// the same node. Edges only connect plugs across nodes.
	ErrSameNode = errors.New("edge endpoints must belong to different nodes")

	// ErrPlugOccupied is returned by [Scene.Connect] when the incoming plug
	// already terminates an edge. At most one edge may end at any incoming
	// plug.
	ErrPlugOccupied = errors.New("incoming plug already connected")

	// ErrDuplicateEdge is returned by [Scene.Connect] when an edge between
	// the two plugs already exists. An outgoing plug may fan out to many
	// incoming plugs but carries at most one edge to any single counterpart.
	ErrDuplicateEdge = errors.New("edge already exists")

	// ErrUnknownEdge is returned by [Scene.Disconnect] when the edge is not
	// part of the scene.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrUnknownNode is returned by [Scene.RemoveNode] when the node is not
	// part of the scene, or by [Node.RemovePlug] when the plug is not owned
	// by the node.
	ErrUnknownNode = errors.New("unknown node")
)

// Direction tells whether a plug receives or emits connections.
type Direction int

const (
	// DirIn marks a plug that terminates edges.
	DirIn Direction = iota
	// DirOut marks a plug that originates edges.
	DirOut
)

// String returns "in" or "out".
func (d Direction) String() string {
	if d == DirIn {
		return "in"
	}
	return "out"
}

// Scene owns all nodes and edges of one graph.
// Use [NewScene] to create a valid instance; the zero value is not usable.
type Scene struct {
	nodes map[uuid.UUID]*Node
	edges map[uuid.UUID]*Edge
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		nodes: make(map[uuid.UUID]*Node),
		edges: make(map[uuid.UUID]*Edge),
	}
}

// CreateNode adds a new node with the given display name at the origin.
// The node starts without plugs and with a zero perimeter radius; the layout
// pass grows the radius once plugs exist.
func (s *Scene) CreateNode(name string) *Node {
	n := &Node{
		id:    uuid.New(),
		name:  name,
		scene: s,
	}
	s.nodes[n.id] = n
	return n
}

// RemoveNode deletes a node from the scene. Returns ErrUnknownNode if the
// node is not part of this scene, or ErrPlugConnected if any of its plugs
// still carries an edge.
func (s *Scene) RemoveNode(n *Node) error {
	if _, ok := s.nodes[n.id]; !ok {
		return ErrUnknownNode
	}
	for _, p := range n.plugs {
		if len(p.edges) > 0 {
			return ErrPlugConnected
		}
	}
	delete(s.nodes, n.id)
	return nil
}

// Nodes returns all nodes in the scene in unspecified order.
func (s *Scene) Nodes() []*Node {
	result := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		result = append(result, n)
	}
	return result
}

// Edges returns all edges in the scene in unspecified order.
func (s *Scene) Edges() []*Edge {
	result := make([]*Edge, 0, len(s.edges))
	for _, e := range s.edges {
		result = append(result, e)
	}
	return result
}

// NodeCount returns the number of nodes in the scene.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// EdgeCount returns the number of edges in the scene.
func (s *Scene) EdgeCount() int { return len(s.edges) }

// Connect creates an edge from an outgoing plug to an incoming plug on a
// different node. It enforces all structural rules and returns the created
// edge, or one of ErrDirectionMismatch, ErrSameNode, ErrPlugOccupied,
// ErrDuplicateEdge.
func (s *Scene) Connect(from, to *Plug) (*Edge, error) {
	if from.dir != DirOut || to.dir != DirIn {
		return nil, ErrDirectionMismatch
	}
	if from.node == to.node {
		return nil, ErrSameNode
	}
	if len(to.edges) > 0 {
		return nil, ErrPlugOccupied
	}
	for _, e := range from.edges {
		if e.to == to {
			return nil, ErrDuplicateEdge
		}
	}
	e := &Edge{
		id:   uuid.New(),
		from: from,
		to:   to,
	}
	s.edges[e.id] = e
	from.edges = append(from.edges, e)
	to.edges = append(to.edges, e)
	return e, nil
}

// Disconnect removes an edge from the scene and from both endpoint plugs.
// Returns ErrUnknownEdge if the edge is not part of this scene.
func (s *Scene) Disconnect(e *Edge) error {
	if _, ok := s.edges[e.id]; !ok {
		return ErrUnknownEdge
	}
	delete(s.edges, e.id)
	e.from.edges = removeEdge(e.from.edges, e)
	e.to.edges = removeEdge(e.to.edges, e)
	return nil
}

func removeEdge(edges []*Edge, e *Edge) []*Edge {
	for i, candidate := range edges {
		if candidate == e {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

// Node is a circular node in the scene. Nodes own their plugs in creation
// order; that order is the fallback placement for unconnected plugs.
type Node struct {
	id     uuid.UUID
	name   string
	scene  *Scene
	pos    geom.Vec2
	radius float64
	plugs  []*Plug
}

// ID returns the node's unique identifier.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the node's display name.
func (n *Node) Name() string { return n.name }

// Pos returns the node's center position.
func (n *Node) Pos() geom.Vec2 { return n.pos }

// SetPos moves the node's center. Placement of connected plugs on this and
// neighboring nodes becomes stale until the next layout pass.
func (n *Node) SetPos(pos geom.Vec2) { n.pos = pos }

// Radius returns the node's current perimeter radius.
func (n *Node) Radius() float64 { return n.radius }

// SetRadius stores the perimeter radius. Written by the layout pass; the
// radius is derived from the plug count, not set by users directly.
func (n *Node) SetRadius(r float64) { n.radius = r }

// Plugs returns the node's plugs in creation order.
func (n *Node) Plugs() []*Plug { return n.plugs }

// PlugCount returns the number of plugs on the node.
func (n *Node) PlugCount() int { return len(n.plugs) }

// CreatePlug adds a plug with the given name and direction to the node.
// Returns ErrInvalidPlugName for an empty name or ErrDuplicatePlugName if
// the node already owns a plug with that name.
func (n *Node) CreatePlug(name string, dir Direction) (*Plug, error) {
	if name == "" {
		return nil, ErrInvalidPlugName
	}
	for _, p := range n.plugs {
		if p.name == name {
			return nil, ErrDuplicatePlugName
		}
	}
	p := &Plug{
		node:   n,
		name:   name,
		dir:    dir,
		normal: geom.Vec2{X: 1},
	}
	n.plugs = append(n.plugs, p)
	return p, nil
}

// RemovePlug deletes a plug from the node. Only unconnected plugs may be
// removed; returns ErrPlugConnected otherwise.
func (n *Node) RemovePlug(p *Plug) error {
	if len(p.edges) > 0 {
		return ErrPlugConnected
	}
	for i, candidate := range n.plugs {
		if candidate == p {
			n.plugs = append(n.plugs[:i], n.plugs[i+1:]...)
			return nil
		}
	}
	return ErrUnknownNode
}

// Plug is a directional connection point on a node's perimeter.
type Plug struct {
	node   *Node
	name   string
	dir    Direction
	edges  []*Edge
	normal geom.Vec2
	sweep  float64
}

// Node returns the plug's owning node.
func (p *Plug) Node() *Node { return p.node }

// Name returns the plug's name, unique within its node.
func (p *Plug) Name() string { return p.name }

// Direction returns whether the plug is incoming or outgoing.
func (p *Plug) Direction() Direction { return p.dir }

// EdgeCount returns the number of edges attached to the plug.
func (p *Plug) EdgeCount() int { return len(p.edges) }

// Edges returns the plug's attached edges in attachment order.
func (p *Plug) Edges() []*Edge { return p.edges }

// ConnectedPlugs returns the plugs at the far end of every attached edge.
func (p *Plug) ConnectedPlugs() []*Plug {
	result := make([]*Plug, 0, len(p.edges))
	for _, e := range p.edges {
		if e.from == p {
			result = append(result, e.to)
		} else {
			result = append(result, e.from)
		}
	}
	return result
}

// ArrangementPriority weighs how strongly the plug pulls toward its target
// direction during arrangement: its own edge count plus half the edge count
// of every plug it connects to. Heavily connected neighborhoods win placement
// fights over stragglers.
func (p *Plug) ArrangementPriority() float64 {
	factor := 0.0
	for _, other := range p.ConnectedPlugs() {
		factor += float64(other.EdgeCount())
	}
	return factor*0.5 + float64(len(p.edges))
}

// Normal returns the plug's current placement direction, a unit vector from
// the node center toward the plug's position on the perimeter.
func (p *Plug) Normal() geom.Vec2 { return p.normal }

// Sweep returns the plug's angular sweep in radians.
func (p *Plug) Sweep() float64 { return p.sweep }

// SetShape stores the plug's placement normal and angular sweep.
// Written by the layout pass with the zone assignment result.
func (p *Plug) SetShape(normal geom.Vec2, sweep float64) {
	p.normal = normal
	p.sweep = sweep
}

// Pos returns the plug's position in scene space: the node center displaced
// along the plug normal by the perimeter radius.
func (p *Plug) Pos() geom.Vec2 {
	return p.node.pos.Add(p.normal.Scale(p.node.radius))
}

// Edge is a directed connection from an outgoing plug to an incoming plug.
type Edge struct {
	id   uuid.UUID
	from *Plug
	to   *Plug
}

// ID returns the edge's unique identifier.
func (e *Edge) ID() uuid.UUID { return e.id }

// From returns the outgoing source plug.
func (e *Edge) From() *Plug { return e.from }

// To returns the incoming target plug.
func (e *Edge) To() *Plug { return e.to }
