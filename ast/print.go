package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, "nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch {

	case n.IsVector():
		fmt.Fprintf(w, "(%v)\n", tokenPos(n))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case n.IsValue():
		fmt.Fprintf(w, "%s (%v)\n", n.Encode(), tokenPos(n))

	default:
		panic("unknown node type")
	}
}

func tokenPos(n *Node) string {
	if n.Token() == nil {
		return "-"
	}
	line, col := n.Token().Pos()
	return fmt.Sprintf("%d:%d", line, col)
}

// Encode transforms a node into its text representation. The root list is
// encoded without its enclosing parentheses, so encoding a parsed program
// and parsing it again yields the same tree.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

// EncodeValue transforms a node into its text representation, lists always
// keep their parentheses.
func EncodeValue(n *Node) string {
	return string(encodeNodeLevel(n, 1))
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("nil")
	}
	switch {
	case n.IsVector():
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		if level == 0 {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case n.IsValue():
		return []byte(n.Encode())

	default:
		panic("unknown node type")
	}
}
