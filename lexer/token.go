package lexer

import (
	"fmt"
	"strings"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int

	source string
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line (starting at 1) and column (starting at 0) of the
// lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the text of the lexical unit, strings are returned without
// their delimiters.
func (t Token) Text() string {
	return t.lexeme
}

// Source returns the full source line the lexical unit was found at.
func (t Token) Source() string {
	return t.source
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Excerpt renders the position of the token as a caret under the source
// line it belongs to.
func (t Token) Excerpt() string {
	col := t.col
	if col < 0 {
		col = 0
	}
	return strings.Join([]string{
		fmt.Sprintf("Code at [%d:%d]", t.line, t.col),
		strings.Replace(t.source, "\t", " ", -1),
		strings.Repeat(" ", col) + "^",
	}, "\n")
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
