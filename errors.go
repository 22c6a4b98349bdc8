package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/s-lisp/ast"
	"github.com/xiam/s-lisp/lexer"
)

// Runtime error kinds
var (
	ErrRuntime = errors.New("runtime error has occurred")

	ErrUndefinedSymbol    = errors.New("symbol is not defined")
	ErrNotFunctionApply   = errors.New("cannot apply as function")
	ErrNotNumber          = errors.New("cannot calculate with non-number")
	ErrDividedZero        = errors.New("divided by zero")
	ErrUncomparable       = errors.New("cannot compare arguments")
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrTooMuchArguments   = errors.New("too much arguments")
	ErrUnknownElement     = errors.New("unknown element")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrEmptyList          = errors.New("empty list")
)

// Error is a runtime error. Token points at the source form that was being
// evaluated when the error happened.
type Error struct {
	Err   error
	Token *lexer.Token
	Msg   string
}

func newError(err error, node *ast.Node, format string, args ...interface{}) *Error {
	e := &Error{Err: err, Msg: fmt.Sprintf(format, args...)}
	if node != nil {
		e.Token = node.Token()
	}
	return e
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

// Is matches every runtime error against ErrRuntime.
func (e *Error) Is(target error) bool {
	return target == ErrRuntime
}

// withNode attaches the token of node to a runtime error that has no
// position yet.
func withNode(err error, node *ast.Node) error {
	var e *Error
	if errors.As(err, &e) && e.Token == nil && node.Token() != nil {
		e.Token = node.Token()
	}
	return err
}
