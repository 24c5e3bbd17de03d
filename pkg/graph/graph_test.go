package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/printgraph/pkg/printgraph"
)

func mustBuild(t *testing.T, ids []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q) error: %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%q, %q) error: %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	g := New()

	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if err := g.AddNode(Node{ID: "b", Seq: 99}); err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}

	tests := []struct {
		name string
		node Node
		want error
	}{
		{"empty id", Node{}, ErrInvalidNodeID},
		{"duplicate", Node{ID: "a"}, ErrDuplicateNodeID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddNode(tt.node); !errors.Is(err, tt.want) {
				t.Errorf("AddNode(%+v) error = %v, want %v", tt.node, err, tt.want)
			}
		})
	}

	b, ok := g.Node("b")
	if !ok {
		t.Fatal("Node(b) not found")
	}
	if b.Seq != 2 {
		t.Errorf("Seq = %d, want 2 (caller value must be overwritten)", b.Seq)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	g := mustBuild(t, []string{"a", "b"}, nil)

	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"valid", "a", "b", nil},
		{"self loop", "a", "a", nil},
		{"back edge", "b", "a", nil},
		{"unknown source", "x", "a", ErrUnknownSourceNode},
		{"unknown target", "a", "x", ErrUnknownTargetNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%q, %q) error = %v, want %v", tt.from, tt.to, err, tt.want)
			}
		})
	}

	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if got := g.Children("a"); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("Children(a) = %v, want [b a]", got)
	}
	if got := g.Parents("a"); len(got) != 2 {
		t.Errorf("Parents(a) = %v, want two parents", got)
	}
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	g := mustBuild(t, []string{"z", "m", "a"}, nil)

	nodes := g.Nodes()
	for i, want := range []string{"z", "m", "a"} {
		if nodes[i].ID != want || nodes[i].Seq != i+1 {
			t.Errorf("Nodes()[%d] = %+v, want ID %q Seq %d", i, *nodes[i], want, i+1)
		}
	}
}

func TestRoots(t *testing.T) {
	g := mustBuild(t,
		[]string{"app", "cli", "shared", "loop"},
		[][2]string{{"app", "shared"}, {"cli", "shared"}, {"loop", "loop"}},
	)

	roots := g.Roots()
	if len(roots) != 2 || roots[0].ID != "app" || roots[1].ID != "cli" {
		t.Errorf("Roots() = %v, want [app cli]", roots)
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Node{ID: "id"}).DisplayName(); got != "id" {
		t.Errorf("DisplayName() = %q, want %q", got, "id")
	}
	if got := (Node{ID: "id", Label: "label"}).DisplayName(); got != "label" {
		t.Errorf("DisplayName() = %q, want %q", got, "label")
	}
}

func TestMethodsRender(t *testing.T) {
	g := mustBuild(t,
		[]string{"R", "A", "B"},
		[][2]string{{"R", "A"}, {"R", "B"}, {"B", "A"}},
	)
	root, _ := g.Node("R")

	got, err := printgraph.Sprint(root, g.Methods())
	if err != nil {
		t.Fatalf("Sprint() error: %v", err)
	}
	want := "R @ 0x1\n" +
		"    ├── A @ 0x2\n" +
		"    └── B @ 0x3\n" +
		"        └── --> A @ 0x2\n"
	if got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}

func TestMethodsSameLabelDistinctNodes(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "root"})
	_ = g.AddNode(Node{ID: "x1", Label: "x"})
	_ = g.AddNode(Node{ID: "x2", Label: "x"})
	_ = g.AddEdge("root", "x1")
	_ = g.AddEdge("root", "x2")
	root, _ := g.Node("root")

	s, err := printgraph.Summarize(root, g.Methods())
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if s.Nodes != 3 || s.BackRefs != 0 {
		t.Errorf("Summarize() = %+v, want 3 nodes and no back-references", s)
	}
}
