package cli

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

const demoSceneJSON = `{
  "nodes": [
    {"name": "reader", "x": 0, "y": 0, "plugs": [{"name": "out", "direction": "out"}]},
    {"name": "writer", "x": 400, "y": 150, "plugs": [{"name": "in", "direction": "in"}]}
  ],
  "edges": [
    {"from_node": "reader", "from_plug": "out", "to_node": "writer", "to_plug": "in"}
  ]
}`

func newTestServer() *sceneServer {
	return &sceneServer{
		cli:   New(io.Discard, LogInfo),
		style: style.Default(),
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.handleHealth(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.handleVersion(rec, httptest.NewRequest("GET", "/version", nil))

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["version"] == "" {
		t.Error("missing version field")
	}
}

func TestHandleLayout(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/layout", strings.NewReader(demoSceneJSON))

	srv.handleLayout(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp placementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("node count = %d, want 2", len(resp.Nodes))
	}
	// Sorted by name: reader first.
	if resp.Nodes[0].Name != "reader" || resp.Nodes[1].Name != "writer" {
		t.Errorf("unexpected node order: %s, %s", resp.Nodes[0].Name, resp.Nodes[1].Name)
	}
	for _, n := range resp.Nodes {
		if n.Radius < style.Default().MinRadius {
			t.Errorf("node %s radius %.1f below minimum", n.Name, n.Radius)
		}
		if len(n.Plugs) != 1 {
			t.Errorf("node %s plug count = %d, want 1", n.Name, len(n.Plugs))
		}
	}
}

func TestHandleLayoutRejectsBadScene(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/layout", strings.NewReader("{not json"))

	srv.handleLayout(rec, req)

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	if resp["code"] != "INVALID_SCENE" {
		t.Errorf("error code = %q, want INVALID_SCENE", resp["code"])
	}
}

func TestHandleRenderRingSVG(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/render?type=ring&format=svg", strings.NewReader(demoSceneJSON))

	srv.handleRender(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("response is not SVG")
	}
}

func TestHandleRenderNodelinkDOT(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/render?type=nodelink&format=dot", strings.NewReader(demoSceneJSON))

	srv.handleRender(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "digraph scene") {
		t.Error("response is not DOT")
	}
}

func TestHandleRenderRejectsUnknownType(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/render?type=sankey", strings.NewReader(demoSceneJSON))

	srv.handleRender(rec, req)

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	if resp["code"] != "INVALID_FORMAT" {
		t.Errorf("error code = %q, want INVALID_FORMAT", resp["code"])
	}
}
