package ast

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xiam/s-lisp/lexer"
)

// Node represents a leaf of the AST. Nodes are also the values the
// interpreter works with, a quoted list is the very same node the parser
// built.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

// Shared values
var (
	Nil   = newNode(NodeTypeNil, nil, newNodeValue(NodeTypeNil, nil))
	True  = newNode(NodeTypeBool, nil, newBoolValue(true))
	False = newNode(NodeTypeBool, nil, newBoolValue(false))
)

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned node based on the given token
func NewNode(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewNumber creates a node of type number
func NewNumber(tok *lexer.Token, v decimal.Decimal) *Node {
	return NewNode(tok, NewNumberValue(v))
}

// NewString creates a node of type string
func NewString(tok *lexer.Token, v string) *Node {
	return NewNode(tok, NewStringValue(v))
}

// NewSymbol creates a node of type symbol
func NewSymbol(tok *lexer.Token, v Symbol) *Node {
	return NewNode(tok, NewSymbolValue(v))
}

// NewBool returns the shared True or False node
func NewBool(v bool) *Node {
	if v {
		return True
	}
	return False
}

// NewList creates and returns an empty node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// NewListOf creates a list holding the given nodes. The slice is copied.
func NewListOf(tok *lexer.Token, nodes ...*Node) *Node {
	children := make([]*Node, len(nodes))
	copy(children, nodes)
	return newNode(NodeTypeList, tok, children)
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := NewNode(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// Token returns the token associated to the node, nodes created at runtime
// have none.
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node is of the given type
func (n Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Valuer returns the raw payload of a value node
func (n Node) Valuer() Valuer {
	if v, ok := n.v.(Valuer); ok {
		return v
	}
	return nil
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// Number returns the numeric value of a number node
func (n Node) Number() decimal.Decimal {
	return n.Value().(decimal.Decimal)
}

// Text returns the content of a string node
func (n Node) Text() string {
	return n.Value().(string)
}

// Symbol returns the name of a symbol node
func (n Node) Symbol() Symbol {
	return n.Value().(Symbol)
}

// Bool returns the value of a bool node
func (n Node) Bool() bool {
	return n.Value().(bool)
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Len returns the number of children of a list node
func (n *Node) Len() int {
	if !n.IsVector() {
		return 0
	}
	return len(n.List())
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.v.([]*Node)))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Encode())
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// IsFalsy returns true for false and nil, the only values a condition
// rejects.
func (n *Node) IsFalsy() bool {
	switch n.nt {
	case NodeTypeNil:
		return true
	case NodeTypeBool:
		return !n.Bool()
	}
	return false
}
