package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

const demoScene = `{
  "nodes": [
    {"name": "reader", "x": 0, "y": 0, "plugs": [
      {"name": "out", "direction": "out"}
    ]},
    {"name": "writer", "x": 300, "y": 120, "plugs": [
      {"name": "in", "direction": "in"},
      {"name": "log", "direction": "out"}
    ]}
  ],
  "edges": [
    {"from_node": "reader", "from_plug": "out", "to_node": "writer", "to_plug": "in"}
  ]
}`

func TestReadJSON(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(demoScene))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if s.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", s.NodeCount())
	}
	if s.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", s.EdgeCount())
	}

	e := s.Edges()[0]
	if e.From().Name() != "out" || e.To().Name() != "in" {
		t.Errorf("edge = %s -> %s, want out -> in", e.From().Name(), e.To().Name())
	}
	if e.From().Node().Name() != "reader" {
		t.Errorf("edge source node = %q, want reader", e.From().Node().Name())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "malformed json",
			input: "{",
			want:  "decode",
		},
		{
			name:  "duplicate node name",
			input: `{"nodes": [{"name": "a"}, {"name": "a"}]}`,
			want:  "duplicate node name",
		},
		{
			name:  "empty node name",
			input: `{"nodes": [{"name": ""}]}`,
			want:  "empty name",
		},
		{
			name:  "bad direction",
			input: `{"nodes": [{"name": "a", "plugs": [{"name": "p", "direction": "sideways"}]}]}`,
			want:  "unknown direction",
		},
		{
			name:  "edge to unknown node",
			input: `{"nodes": [{"name": "a", "plugs": [{"name": "p", "direction": "out"}]}], "edges": [{"from_node": "a", "from_plug": "p", "to_node": "b", "to_plug": "q"}]}`,
			want:  "unknown node",
		},
		{
			name:  "edge to unknown plug",
			input: `{"nodes": [{"name": "a", "plugs": [{"name": "p", "direction": "out"}]}, {"name": "b"}], "edges": [{"from_node": "a", "from_plug": "p", "to_node": "b", "to_plug": "q"}]}`,
			want:  "no plug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadJSON succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestReadJSONWrapsGraphErrors(t *testing.T) {
	input := `{
	  "nodes": [
	    {"name": "a", "plugs": [{"name": "p", "direction": "out"}]},
	    {"name": "b", "plugs": [{"name": "q", "direction": "out"}]}
	  ],
	  "edges": [{"from_node": "a", "from_plug": "p", "to_node": "b", "to_plug": "q"}]
	}`
	_, err := ReadJSON(strings.NewReader(input))
	if !errors.Is(err, graph.ErrDirectionMismatch) {
		t.Errorf("ReadJSON error = %v, want to wrap ErrDirectionMismatch", err)
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(demoScene))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var first bytes.Buffer
	if err := WriteJSON(s, &first); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	reimported, err := ReadJSON(&first)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	var second bytes.Buffer
	if err := WriteJSON(reimported, &second); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var fresh bytes.Buffer
	if err := WriteJSON(s, &fresh); err != nil {
		t.Fatal(err)
	}
	if fresh.String() != second.String() {
		t.Errorf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", fresh.String(), second.String())
	}
}
