package ast

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeNil:
		return "nil"
	case NodeTypeNumber:
		return n.v.(decimal.Decimal).String()
	case NodeTypeString:
		return encodeString(n.v.(string))
	case NodeTypeSymbol:
		return string(n.v.(Symbol))
	case NodeTypeBool:
		if n.v.(bool) {
			return "true"
		}
		return "false"
	}

	panic("unreachable")
}

// encodeString quotes s with the delimiter it does not contain, strings
// can't hold both kinds of quotes.
func encodeString(s string) string {
	if strings.ContainsRune(s, '"') {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

// NewNumberValue creates a value of type number
func NewNumberValue(v decimal.Decimal) Valuer {
	return newNodeValue(NodeTypeNumber, v)
}

// NewStringValue creates a value of type string
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewSymbolValue creates a value of type symbol
func NewSymbolValue(v Symbol) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

func newBoolValue(v bool) Valuer {
	return newNodeValue(NodeTypeBool, v)
}

func (n *nodeValue) String() string {
	return fmt.Sprintf("%v", n.v)
}

var _ = Valuer(&nodeValue{})
