package demo

import (
	"fmt"

	"github.com/matzehuels/printgraph/pkg/graph"
)

// mustGraph builds a graph from static sample data. Sample data is fixed at
// compile time, so a failure is a programming error.
func mustGraph(nodes []graph.Node, edges [][2]string) *graph.Graph {
	g := graph.New()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			panic(fmt.Sprintf("demo: add node %q: %v", n.ID, err))
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(fmt.Sprintf("demo: add edge %s -> %s: %v", e[0], e[1], err))
		}
	}
	return g
}

func graphSample(name, desc string, g *graph.Graph, rootID string) Sample {
	root, ok := g.Node(rootID)
	if !ok {
		panic(fmt.Sprintf("demo: unknown root %q", rootID))
	}
	return NewSample(name, desc, root, g.Methods())
}

// nodesSample is a root with three children, one nested child and one node
// that lists itself as a child.
func nodesSample() Sample {
	g := mustGraph(
		[]graph.Node{
			{ID: "root", Label: "Test<root>"},
			{ID: "a", Label: "Test<a>"},
			{ID: "b", Label: "Test<b>"},
			{ID: "c", Label: "Test<c>"},
			{ID: "d", Label: "Test<d>"},
		},
		[][2]string{
			{"root", "a"}, {"root", "b"}, {"root", "d"},
			{"b", "c"},
			{"d", "d"},
		},
	)
	return graphSample("nodes", "named nodes with a nested child and a self-loop", g, "root")
}

// sharedSample reaches A both directly from R and through B.
func sharedSample() Sample {
	g := mustGraph(
		[]graph.Node{{ID: "R"}, {ID: "A"}, {ID: "B"}},
		[][2]string{{"R", "A"}, {"R", "B"}, {"B", "A"}},
	)
	return graphSample("shared", "a child reachable along two paths", g, "R")
}
