package demo

import (
	"fmt"

	"github.com/matzehuels/printgraph/pkg/printgraph"
)

// Expr is a node of a small expression syntax tree.
type Expr interface {
	fmt.Stringer
	Operands() []Expr
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Op          string
	Left, Right Expr
}

func (b *BinaryOp) Operands() []Expr { return []Expr{b.Left, b.Right} }
func (b *BinaryOp) String() string   { return fmt.Sprintf("<* %s *>", b.Op) }

// Call applies a named function to its arguments.
type Call struct {
	Fn   string
	Args []Expr
}

func (c *Call) Operands() []Expr { return c.Args }
func (c *Call) String() string   { return fmt.Sprintf("<%s(*; %d)>", c.Fn, len(c.Args)) }

// Ident is a variable reference.
type Ident struct {
	Name string
}

func (*Ident) Operands() []Expr { return nil }
func (i *Ident) String() string { return fmt.Sprintf("<i:%s>", i.Name) }

// Value is a literal.
type Value struct {
	V any
}

func (*Value) Operands() []Expr { return nil }
func (v *Value) String() string { return fmt.Sprintf("<v:%v>", v.V) }

// ExprMethods is the capability set for expression trees. Every Expr
// implementation is a pointer type, so the node itself serves as its
// identity key and renders as its address.
var ExprMethods = printgraph.Methods[Expr, Expr]{
	Children: func(e Expr) ([]Expr, error) { return e.Operands(), nil },
	Name:     func(e Expr) string { return e.String() },
	ID:       func(e Expr) Expr { return e },
}

func exprSample(name, desc string, root Expr) Sample {
	return NewSample(name, desc, root, ExprMethods)
}

func astBinarySample() Sample {
	return exprSample("ast-binary", "expression 10 + x",
		&BinaryOp{Op: "+", Left: &Value{V: 10}, Right: &Ident{Name: "x"}})
}

func astNestedSample() Sample {
	return exprSample("ast-nested", "expression (10 / y) + x",
		&BinaryOp{
			Op:    "+",
			Left:  &BinaryOp{Op: "/", Left: &Value{V: 10}, Right: &Ident{Name: "y"}},
			Right: &Ident{Name: "x"},
		})
}

func astCallSample() Sample {
	return exprSample("ast-call", "expression foo(10, y, z, bar(1, 2, 3)) + x",
		&BinaryOp{
			Op: "+",
			Left: &Call{Fn: "foo", Args: []Expr{
				&Value{V: 10},
				&Ident{Name: "y"},
				&Ident{Name: "z"},
				&Call{Fn: "bar", Args: []Expr{&Value{V: 1}, &Value{V: 2}, &Value{V: 3}}},
			}},
			Right: &Ident{Name: "x"},
		})
}

// astSharedSample reuses one Ident pointer in two places, so pointer
// identity turns the second use into a back-reference.
func astSharedSample() Sample {
	x := &Ident{Name: "x"}
	return exprSample("ast-shared", "expression x * (x + 1) with one shared x node",
		&BinaryOp{
			Op:    "*",
			Left:  x,
			Right: &BinaryOp{Op: "+", Left: x, Right: &Value{V: 1}},
		})
}
