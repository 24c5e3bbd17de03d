// Package pkg provides the libraries behind printgraph.
//
// # Overview
//
// Printgraph renders directed graphs as indented text trees. The graph may
// contain cycles, self-loops and shared children; every node is expanded
// once and later occurrences are printed as back-references. The pkg
// directory is organized into these areas:
//
//  1. [printgraph] - The tree renderer, the traversal it is built on, and key formatting
//  2. [graph] - A small in-memory graph store that plugs into the renderer
//  3. [render] - Alternate output formats (Graphviz DOT and SVG)
//  4. [errors] - Structured error codes shared by the library and the CLI
//  5. [observability] - Optional hooks around renders and output writes
//
// # Architecture
//
// The typical data flow:
//
//	caller's graph (any node type)
//	         ↓
//	    capability set (Children, Name, ID)
//	         ↓
//	    [printgraph.Walk] (pre-order, identity-deduplicated)
//	         ↓
//	    text tree | DOT | SVG
//
// # Quick Start
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/printgraph/pkg/graph"
//	    "github.com/matzehuels/printgraph/pkg/printgraph"
//	)
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: "R"})
//	_ = g.AddNode(graph.Node{ID: "A"})
//	_ = g.AddEdge("R", "A")
//	_ = g.AddEdge("A", "R")
//
//	root, _ := g.Node("R")
//	out, err := printgraph.Sprint(root, g.Methods())
//	fmt.Print(out)
//
// Any node type works as long as a capability set is supplied; see
// [printgraph.Methods].
//
// # Main Packages
//
// [printgraph] - Render, Sprint, Fprint and the reusable Printer produce the
// text tree. Walk exposes the traversal to other renderers and Summarize
// counts what a render would print.
//
// [graph] - Insertion-ordered nodes and edges with sequential identity keys.
// Self-loops and cycles are allowed.
//
// [render/nodelink] - Graphviz DOT output with back-references drawn as
// dashed edges, and SVG rendering through go-graphviz.
//
// [errors] - Error codes such as INVALID_CONFIG and INVALID_INPUT with
// helpers for wrapping and matching.
//
// [observability] - No-op by default. The CLI installs logging hooks.
package pkg
