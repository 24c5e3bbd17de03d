// Package render provides alternate output formats for graphs.
//
// # Overview
//
// The text tree produced by the printgraph package is the primary output.
// The subpackages here draw the same traversal in other forms:
//
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage converts a graph into Graphviz DOT source. It
// walks the graph with the same capability set as the text renderer, so the
// vertex set and edge order match the text output line for line. Tree edges
// are solid; back-references are dashed edges pointing at the vertex that
// was already emitted.
//
//	dot, err := nodelink.ToDOT(root, methods, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// SVG rendering uses go-graphviz, which embeds Graphviz as WebAssembly, so no
// system installation is required.
package render
