package lisp

import (
	"fmt"
	"strings"

	"github.com/xiam/s-lisp/ast"
)

// PrimitiveFunc is the signature of builtin functions. Arguments are
// already evaluated, env is the scope of the caller.
type PrimitiveFunc func(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error)

// Primitive is a builtin function
type Primitive struct {
	name string
	fn   PrimitiveFunc
}

// NewPrimitive wraps fn into a callable value
func NewPrimitive(name string, fn PrimitiveFunc) *ast.Node {
	return ast.NewNode(nil, &Primitive{name: name, fn: fn})
}

// Name returns the name the primitive was registered with
func (p *Primitive) Name() string {
	return p.name
}

func (p *Primitive) Type() ast.NodeType {
	return ast.NodeTypeFunction
}

func (p *Primitive) Value() interface{} {
	return p
}

func (p *Primitive) Encode() string {
	return fmt.Sprintf("<primitive %s>", p.name)
}

// Closure is a function created by lambda.
type Closure struct {
	params []ast.Symbol
	body   []*ast.Node
	env    *Environment
}

// Params returns the parameter names of the closure
func (c *Closure) Params() []ast.Symbol {
	return c.params
}

// Environment returns the scope the closure was created in
func (c *Closure) Environment() *Environment {
	return c.env
}

func (c *Closure) Type() ast.NodeType {
	return ast.NodeTypeFunction
}

func (c *Closure) Value() interface{} {
	return c
}

func (c *Closure) Encode() string {
	names := make([]string, 0, len(c.params))
	for i := range c.params {
		names = append(names, c.params[i].Name())
	}
	return fmt.Sprintf("<lambda (%s)>", strings.Join(names, " "))
}

var (
	_ = ast.Valuer(&Primitive{})
	_ = ast.Valuer(&Closure{})
)

// Display returns the text display writes for a value: strings are written
// as they are, everything else is encoded.
func Display(n *ast.Node) string {
	if n.Is(ast.NodeTypeString) {
		return n.Text()
	}
	return ast.EncodeValue(n)
}

func isCallable(n *ast.Node) bool {
	switch n.Valuer().(type) {
	case *Closure, *Primitive:
		return true
	}
	return false
}
