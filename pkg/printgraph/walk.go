package printgraph

import (
	"github.com/matzehuels/printgraph/pkg/errors"
)

// Visit describes one line of a traversal: either the first visit of a node
// or a back-reference to a node visited earlier in the same walk.
type Visit[T any, K comparable] struct {
	Node  T
	Key   K
	Name  string
	Depth int // 0 for the root

	// Parent is the key of the node whose child list produced this visit.
	// It is meaningful only when HasParent is true.
	Parent    K
	HasParent bool
	Index     int  // position in the parent's child list
	Last      bool // Index is the final position (true for the root)

	// Open is the number of ancestor branches that still have siblings to
	// render below this line. Text output draws one connector per open branch.
	Open int

	// BackRef is set when Key was already visited. Children of a
	// back-reference are never fetched or walked.
	BackRef bool
}

// WalkFunc is called once per visit in pre-order. A non-nil error stops the
// walk and is returned from [Walk] unchanged.
type WalkFunc[T any, K comparable] func(Visit[T, K]) error

// Walk traverses the graph reachable from root depth-first in pre-order,
// expanding every identity key once. Children are fetched after fn has been
// called for the node, in the order Children returns them.
func Walk[T any, K comparable](root T, m Methods[T, K], fn WalkFunc[T, K]) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "walk function is nil")
	}
	if isNil(root) {
		return errors.New(errors.ErrCodeInvalidInput, "root node is nil")
	}
	w := &walker[T, K]{
		methods: m,
		fn:      fn,
		visited: make(map[K]struct{}),
	}
	return w.walk(Visit[T, K]{Node: root, Last: true}, 0)
}

// walker carries the per-call visited set through the recursion.
type walker[T any, K comparable] struct {
	methods Methods[T, K]
	fn      WalkFunc[T, K]
	visited map[K]struct{}
}

// walk visits v.Node. parents is the open-branch count handed down to the
// node's own children.
func (w *walker[T, K]) walk(v Visit[T, K], parents int) error {
	v.Key = w.methods.ID(v.Node)
	v.Name = w.methods.Name(v.Node)
	if _, seen := w.visited[v.Key]; seen {
		v.BackRef = true
		return w.fn(v)
	}
	w.visited[v.Key] = struct{}{}
	if err := w.fn(v); err != nil {
		return err
	}

	children, err := w.methods.Children(v.Node)
	if err != nil {
		return err
	}
	for i, child := range children {
		last := i == len(children)-1
		next := parents
		if !last {
			next++
		}
		err := w.walk(Visit[T, K]{
			Node:      child,
			Depth:     v.Depth + 1,
			Parent:    v.Key,
			HasParent: true,
			Index:     i,
			Last:      last,
			Open:      parents,
		}, next)
		if err != nil {
			return err
		}
	}
	return nil
}

// Stats summarises a traversal.
type Stats struct {
	Nodes    int // distinct identity keys
	BackRefs int // back-reference lines
	Edges    int // child slots visited (lines other than the root)
	MaxDepth int // depth of the deepest line
}

// Lines returns the number of lines the text rendering contains.
func (s Stats) Lines() int { return s.Nodes + s.BackRefs }

// Summarize walks the graph and counts what a render would print.
func Summarize[T any, K comparable](root T, m Methods[T, K]) (Stats, error) {
	var s Stats
	err := Walk(root, m, func(v Visit[T, K]) error {
		if v.BackRef {
			s.BackRefs++
		} else {
			s.Nodes++
		}
		if v.HasParent {
			s.Edges++
		}
		s.MaxDepth = max(s.MaxDepth, v.Depth)
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}
