package printgraph

import (
	"io"
	"strings"

	"github.com/matzehuels/printgraph/pkg/errors"
)

// DefaultIndentWidth is the number of columns per depth level used when
// [Options.IndentWidth] is zero.
const DefaultIndentWidth = 4

// Glyphs used in rendered output.
const (
	GlyphVertical = "│"   // connector for an ancestor branch that is still open
	GlyphBranch   = "├──" // child that has later siblings
	GlyphLast     = "└──" // last child in its sibling list
	MarkerBackRef = "-->" // node already rendered earlier in the same call
)

// Methods is the capability set through which a graph is read. All three
// functions are required; there are no defaults.
type Methods[T any, K comparable] struct {
	// Children returns the successors of a node in display order. It must
	// return a finite slice (nil or empty for a leaf) and the same slice for
	// repeated calls within one render. A non-nil error aborts the render and
	// is returned to the caller as-is.
	Children func(T) ([]T, error)

	// Name returns the display label of a node.
	Name func(T) string

	// ID returns the identity key of a node. Distinct nodes must have
	// distinct keys even if they are equal by value.
	ID func(T) K
}

// Validate reports an [errors.ErrCodeInvalidConfig] error if any capability
// function is missing.
func (m Methods[T, K]) Validate() error {
	switch {
	case m.Children == nil:
		return errors.New(errors.ErrCodeInvalidConfig, "capability set has no Children function")
	case m.Name == nil:
		return errors.New(errors.ErrCodeInvalidConfig, "capability set has no Name function")
	case m.ID == nil:
		return errors.New(errors.ErrCodeInvalidConfig, "capability set has no ID function")
	}
	return nil
}

// Options configures text rendering.
type Options struct {
	// IndentWidth is the number of columns per depth level. Zero is the
	// unset value and selects DefaultIndentWidth rather than being rejected
	// or clamped; negative values are rejected. Widths below 3 keep the
	// three-column branch glyphs and drop the padding after them.
	IndentWidth int
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.IndentWidth == 0 {
		o.IndentWidth = DefaultIndentWidth
	}
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	return errors.ValidateIndentWidth(o.IndentWidth)
}

// Printer renders graphs described by one capability set. It holds only
// immutable configuration and is safe for concurrent use.
type Printer[T any, K comparable] struct {
	methods Methods[T, K]
	indent  int
	branch  string // GlyphBranch padded to indent
	last    string // GlyphLast padded to indent
}

// NewPrinter validates m and opts and returns a reusable Printer.
func NewPrinter[T any, K comparable](m Methods[T, K], opts Options) (*Printer[T, K], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pad := strings.Repeat(" ", max(0, opts.IndentWidth-3))
	return &Printer[T, K]{
		methods: m,
		indent:  opts.IndentWidth,
		branch:  GlyphBranch + pad,
		last:    GlyphLast + pad,
	}, nil
}

// IndentWidth returns the effective indent width.
func (p *Printer[T, K]) IndentWidth() int { return p.indent }

// Print renders the graph reachable from root. Each call starts with an
// empty visited set.
func (p *Printer[T, K]) Print(root T) (string, error) {
	var b strings.Builder
	err := Walk(root, p.methods, func(v Visit[T, K]) error {
		p.writeLine(&b, v)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeLine emits one header or back-reference line for v.
func (p *Printer[T, K]) writeLine(b *strings.Builder, v Visit[T, K]) {
	if v.HasParent {
		b.WriteString(p.prefix(v.Open, v.Depth-1))
		if v.Last {
			b.WriteString(p.last)
		} else {
			b.WriteString(p.branch)
		}
	}
	if v.BackRef {
		b.WriteString(MarkerBackRef)
		b.WriteByte(' ')
	}
	b.WriteString(v.Name)
	b.WriteString(" @ ")
	b.WriteString(FormatKey(v.Key))
	b.WriteByte('\n')
}

// prefix builds the indentation in front of the branch glyph of a child of
// a node at parentDepth. One indent of spaces comes first, then a padded
// vertical connector per open ancestor, then spaces out to column
// (parentDepth+1)*indent.
func (p *Printer[T, K]) prefix(open, parentDepth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", p.indent))
	width := p.indent
	for range open {
		b.WriteString(GlyphVertical)
		b.WriteString(strings.Repeat(" ", p.indent-1))
		width += p.indent
	}
	if pad := (parentDepth+1)*p.indent - width; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// Render renders the graph reachable from root as a text tree.
func Render[T any, K comparable](root T, m Methods[T, K], opts Options) (string, error) {
	p, err := NewPrinter(m, opts)
	if err != nil {
		return "", err
	}
	return p.Print(root)
}

// Sprint is Render with default options.
func Sprint[T any, K comparable](root T, m Methods[T, K]) (string, error) {
	return Render(root, m, Options{})
}

// Fprint renders the graph and writes the result to w. Nothing is written
// if rendering fails.
func Fprint[T any, K comparable](w io.Writer, root T, m Methods[T, K], opts Options) error {
	s, err := Render(root, m, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
