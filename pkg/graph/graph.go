package graph

import (
	"errors"
	"slices"

	"github.com/matzehuels/printgraph/pkg/printgraph"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the from node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the to node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a vertex of a [Graph].
type Node struct {
	ID    string // Unique identifier
	Label string // Display label; ID is shown when empty

	// Seq is assigned by AddNode, starting at 1, and is the node's identity
	// key when rendering.
	Seq int
}

// DisplayName returns Label, or ID when no label is set.
func (n Node) DisplayName() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Graph is a directed graph that may contain cycles.
//
// The zero value is not usable - use New to create a valid Graph instance.
type Graph struct {
	nodes    map[string]*Node
	order    []*Node             // insertion order
	outgoing map[string][]string // nodeID -> children IDs
	incoming map[string][]string // nodeID -> parent IDs
	edges    int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node and assigns its Seq. Any Seq set by the caller is
// overwritten. Returns ErrInvalidNodeID if the ID is empty, or
// ErrDuplicateNodeID if the ID is already in use.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	n.Seq = len(g.order) + 1
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node)
	return nil
}

// AddEdge appends to as the last child of from. Self-loops, cycles and
// repeated edges are allowed. Returns ErrUnknownSourceNode or
// ErrUnknownTargetNode if either endpoint is missing.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	g.edges++
	return nil
}

// Node returns the node with the given ID and true, or nil and false if not found.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.order) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return g.edges }

// Children returns the IDs of the node's children in edge insertion order.
// Returns nil if the node has no children or doesn't exist. The returned
// slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of nodes with an edge to this node.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// Roots returns nodes without incoming edges, in insertion order.
// A graph whose every node lies on a cycle has no roots.
func (g *Graph) Roots() []*Node {
	var roots []*Node
	for _, n := range g.order {
		if len(g.incoming[n.ID]) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}

// Methods returns the capability set for rendering this graph. Children are
// resolved against the graph at call time, so the graph must not be
// modified while a render is in progress.
func (g *Graph) Methods() printgraph.Methods[*Node, int] {
	return printgraph.Methods[*Node, int]{
		Children: func(n *Node) ([]*Node, error) {
			ids := g.outgoing[n.ID]
			children := make([]*Node, 0, len(ids))
			for _, id := range ids {
				children = append(children, g.nodes[id])
			}
			return children, nil
		},
		Name: func(n *Node) string { return n.DisplayName() },
		ID:   func(n *Node) int { return n.Seq },
	}
}
