// Package graph provides a small directed graph keyed by string IDs that can
// be rendered with [printgraph].
//
// # Overview
//
// Unlike a DAG, a [Graph] accepts any edge between existing nodes: cycles,
// self-loops and shared children are all allowed, which makes it a
// convenient way to build test and demo inputs for the renderer. Children
// keep the order in which their edges were added.
//
// # Basic Usage
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: "app"})
//	_ = g.AddNode(graph.Node{ID: "lib", Label: "lib v1.2"})
//	_ = g.AddEdge("app", "lib")
//	_ = g.AddEdge("lib", "app") // cycle
//
//	root, _ := g.Node("app")
//	out, err := printgraph.Sprint(root, g.Methods())
//
// # Identity
//
// [Graph.Methods] keys nodes by [Node.Seq], a sequence number assigned when
// the node is added (1 for the first node). Keys are therefore small,
// stable and independent of node labels: two nodes with the same label
// are still distinct.
//
// # Concurrency
//
// Graph instances are not safe for concurrent modification. Rendering a
// graph that is no longer being modified is safe from several goroutines.
//
// [printgraph]: github.com/matzehuels/printgraph/pkg/printgraph
package graph
