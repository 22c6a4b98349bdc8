package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNil      = nodeTypeValue | 1
	NodeTypeNumber   = nodeTypeValue | 2
	NodeTypeString   = nodeTypeValue | 4
	NodeTypeSymbol   = nodeTypeValue | 8
	NodeTypeBool     = nodeTypeValue | 16
	NodeTypeFunction = nodeTypeValue | 32

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNil:      "nil",
	NodeTypeNumber:   "number",
	NodeTypeString:   "string",
	NodeTypeSymbol:   "symbol",
	NodeTypeBool:     "bool",
	NodeTypeFunction: "function",
	NodeTypeList:     "list",
}
