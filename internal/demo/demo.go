// Package demo provides the sample graphs shown by the printgraph CLI.
//
// Samples come in two flavours. Graph samples are built with [graph.Graph]
// and use sequential identity keys, so their output is stable across runs.
// Expression samples are small syntax trees whose identity key is the node
// pointer, so their addresses change from run to run while the shape of the
// output does not.
package demo

import (
	"slices"

	"github.com/matzehuels/printgraph/pkg/printgraph"
	"github.com/matzehuels/printgraph/pkg/render/nodelink"
)

// Sample is a named graph that can be rendered as text or DOT.
type Sample struct {
	Name        string
	Description string

	text  func(printgraph.Options) (string, error)
	dot   func(nodelink.Options) (string, error)
	stats func() (printgraph.Stats, error)
}

// Text renders the sample as a text tree.
func (s Sample) Text(opts printgraph.Options) (string, error) { return s.text(opts) }

// DOT renders the sample as Graphviz DOT source.
func (s Sample) DOT(opts nodelink.Options) (string, error) { return s.dot(opts) }

// Stats summarises the sample's traversal.
func (s Sample) Stats() (printgraph.Stats, error) { return s.stats() }

// NewSample binds a root and capability set of any node type to a Sample.
// Errors from the capability set surface from Text, DOT and Stats.
func NewSample[T any, K comparable](name, desc string, root T, m printgraph.Methods[T, K]) Sample {
	return Sample{
		Name:        name,
		Description: desc,
		text: func(opts printgraph.Options) (string, error) {
			return printgraph.Render(root, m, opts)
		},
		dot: func(opts nodelink.Options) (string, error) {
			return nodelink.ToDOT(root, m, opts)
		},
		stats: func() (printgraph.Stats, error) {
			return printgraph.Summarize(root, m)
		},
	}
}

// All returns every sample in display order. Each call builds fresh graphs.
func All() []Sample {
	return []Sample{
		nodesSample(),
		sharedSample(),
		astBinarySample(),
		astNestedSample(),
		astCallSample(),
		astSharedSample(),
	}
}

// Names returns the sample names in display order.
func Names() []string {
	samples := All()
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the sample with the given name.
func Lookup(name string) (Sample, bool) {
	samples := All()
	i := slices.IndexFunc(samples, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, false
	}
	return samples[i], true
}
