package parser

import (
	"errors"

	"github.com/xiam/s-lisp/lexer"
)

// Syntax error kinds
var (
	ErrSyntax = errors.New("syntax error has occurred")

	ErrTokenizing  = errors.New("tokenizing error has occurred")
	ErrSymbolizing = errors.New("symbolizing error has occurred")

	ErrParenthesis     = errors.New("unexpected parenthesis has been detected")
	ErrNumber          = errors.New("number parsing error has occurred")
	ErrUnexpectedToken = errors.New("unexpected token has been detected")

	ErrUnclosedParenthesis = errors.New("source does not reach the end: close parenthesis may be missing")
	ErrUnopenedParenthesis = errors.New("source cannot reach the end: open parenthesis may be missing")
)

// Error is a syntax error bound to the token that caused it.
type Error struct {
	Err   error
	Token *lexer.Token
	Msg   string
}

func newError(err error, tok *lexer.Token) *Error {
	return &Error{Err: err, Token: tok}
}

// Error renders the message followed by the offending source line and a
// caret under the offending column.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Err.Error()
	}
	if e.Token == nil {
		return msg
	}
	return msg + "\n" + e.Token.Excerpt()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the broader kinds an error belongs to.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return true
	case ErrSymbolizing:
		return e.Err != ErrTokenizing
	}
	return false
}
