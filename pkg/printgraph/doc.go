// Package printgraph renders an arbitrary object graph as an indented text
// tree, marking nodes that are reached more than once.
//
// # Overview
//
// The package never inspects node values. Callers describe their graph with a
// [Methods] capability set of three functions:
//
//   - Children returns a node's successors in display order
//   - Name returns the label printed for a node
//   - ID returns a stable identity key used to detect revisits
//
// Every node is expanded the first time its identity key is seen. Later
// encounters of the same key, whether through a cycle, a self-loop or a
// second parent, print a single back-reference line and are not expanded
// again. Two distinct nodes that merely look alike must therefore return
// different keys, and a node reached along two paths must return the same
// key both times.
//
// # Basic Usage
//
//	type Node struct {
//	    Label    string
//	    Children []*Node
//	}
//
//	m := printgraph.Methods[*Node, *Node]{
//	    Children: func(n *Node) ([]*Node, error) { return n.Children, nil },
//	    Name:     func(n *Node) string { return n.Label },
//	    ID:       func(n *Node) *Node { return n },
//	}
//	out, err := printgraph.Sprint(root, m)
//
// which produces output such as:
//
//	root @ 0xc000010018
//	    ├── a @ 0xc000010030
//	    ├── b @ 0xc000010048
//	    │   └── c @ 0xc000010060
//	    └── d @ 0xc000010078
//	        └── --> d @ 0xc000010078
//
// # Output Format
//
// Each line ends with a newline. A line is a prefix of spaces and "│"
// connectors, a "├──" or "└──" branch glyph for every non-root line, then
// either "name @ key" for a first visit or "--> name @ key" for a
// back-reference. Keys are formatted by [FormatKey] and the same
// representation is used on both kinds of line. The number of columns per
// depth level is [Options.IndentWidth].
//
// # Reuse and Concurrency
//
// The set of visited keys lives only for the duration of one call. A
// [Printer] holds nothing but its validated configuration, so the same
// Printer can render any number of graphs, sequentially or from several
// goroutines, without leaking state between renders. The traversal itself
// is synchronous and single-threaded.
//
// # Errors
//
// Configuration problems (a nil capability function, a negative indent
// width, a nil root) are reported as [errors.ErrCodeInvalidConfig] or
// [errors.ErrCodeInvalidInput] before traversal starts. An error returned by
// Children is passed back to the caller unchanged. Panics raised by the
// capability functions are not recovered.
//
// If Children returns different sequences for the same node within one
// render, or ID maps two different nodes to one key, the output reflects
// what the functions returned; the renderer does not try to detect either.
//
// [errors.ErrCodeInvalidConfig]: github.com/matzehuels/printgraph/pkg/errors
// [errors.ErrCodeInvalidInput]: github.com/matzehuels/printgraph/pkg/errors
package printgraph
