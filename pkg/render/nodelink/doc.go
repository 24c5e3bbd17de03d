// Package nodelink renders object graphs as node-link diagrams.
//
// # Overview
//
// This package is the graphical counterpart of the text tree produced by
// [printgraph]. It reads the graph through the same [printgraph.Methods]
// capability set and the same identity-deduplicated walk, so every node
// that appears as a header line in the text tree becomes one box, and every
// back-reference line becomes a dashed arrow to the box drawn earlier.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(root, methods, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels also show the identity key and depth
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Vertex IDs are the identity keys formatted with [printgraph.FormatKey].
// The root vertex has a bold outline.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
//
// [printgraph]: github.com/matzehuels/printgraph/pkg/printgraph
package nodelink
