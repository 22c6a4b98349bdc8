package lisp

import (
	"bytes"
	"io"
	"io/ioutil"
	"log"

	"github.com/xiam/s-lisp/ast"
	"github.com/xiam/s-lisp/parser"
)

// Option configures an Interpreter
type Option func(*Interpreter)

// WithOutput sets the writer display and newline write to.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithEnvironment installs env as the parent of the root scope, the host
// can use it to provide additional bindings.
func WithEnvironment(env *Environment) Option {
	return func(in *Interpreter) {
		in.custom = env
	}
}

// WithLogger sets the logger used to trace evaluation.
func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) {
		in.log = l
	}
}

// Interpreter evaluates trees built by the parser. An Interpreter is not
// safe for concurrent use.
type Interpreter struct {
	forms map[ast.Symbol]specialForm

	env    *Environment
	custom *Environment

	out io.Writer
	log *log.Logger
}

// New creates an interpreter with a root scope holding every primitive.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		out: ioutil.Discard,
		log: log.New(ioutil.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(in)
	}

	in.forms = newSpecialForms()

	in.env = NewEnvironment(in.custom)
	definePrimitives(in.env)

	return in
}

// Environment returns the root scope top-level forms are evaluated in.
func (in *Interpreter) Environment() *Environment {
	return in.env
}

// Run parses and evaluates src, returning the value of the last top-level
// form.
func (in *Interpreter) Run(src string) (*ast.Node, error) {
	root, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	return in.EvalForms(root)
}

// RunReader is like Run but reads the source text from r.
func (in *Interpreter) RunReader(r io.Reader) (*ast.Node, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return in.Run(buf.String())
}

// EvalForms evaluates every child of root in order, it stops at the first
// error.
func (in *Interpreter) EvalForms(root *ast.Node) (*ast.Node, error) {
	result := ast.Nil
	var lastErr error
	in.EvalEach(root, func(form *ast.Node, value *ast.Node, err error) bool {
		if err != nil {
			lastErr = err
			return false
		}
		result = value
		return true
	})
	if lastErr != nil {
		return nil, lastErr
	}
	return result, nil
}

// EvalEach evaluates every child of root in order and passes each result to
// fn. Evaluation stops when fn returns false.
func (in *Interpreter) EvalEach(root *ast.Node, fn func(form *ast.Node, value *ast.Node, err error) bool) {
	for _, form := range root.List() {
		value, err := in.Evaluate(form, in.env)
		if err != nil {
			in.log.Printf("error: %v", err)
		}
		if !fn(form, value, err) {
			return
		}
	}
}

// Evaluate returns the value of expr in env.
func (in *Interpreter) Evaluate(expr *ast.Node, env *Environment) (*ast.Node, error) {
	switch expr.Type() {
	case ast.NodeTypeNumber, ast.NodeTypeString, ast.NodeTypeBool, ast.NodeTypeNil, ast.NodeTypeFunction:
		return expr, nil

	case ast.NodeTypeSymbol:
		value, err := env.Lookup(expr.Symbol())
		if err != nil {
			return nil, withNode(err, expr)
		}
		return value, nil

	case ast.NodeTypeList:
		value, err := in.evaluateList(expr, env)
		if err != nil {
			return nil, withNode(err, expr)
		}
		return value, nil
	}

	return nil, newError(ErrUnknownElement, expr, "unknown element %v", expr)
}

func (in *Interpreter) evaluateList(expr *ast.Node, env *Environment) (*ast.Node, error) {
	list := expr.List()
	if len(list) == 0 {
		return expr, nil
	}

	head := list[0]
	if head.Is(ast.NodeTypeSymbol) {
		if form, ok := in.forms[head.Symbol()]; ok {
			return form(in, list[1:], env)
		}
	}

	fn, err := in.Evaluate(head, env)
	if err != nil {
		return nil, err
	}

	args := make([]*ast.Node, 0, len(list)-1)
	for _, item := range list[1:] {
		value, err := in.Evaluate(item, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	if !isCallable(fn) {
		return nil, newError(ErrNotFunctionApply, head, "cannot apply %s as function", ast.EncodeValue(head))
	}

	return in.Apply(fn, args, env)
}

// Apply calls fn with already evaluated arguments. env is the scope of the
// caller, closures ignore it.
func (in *Interpreter) Apply(fn *ast.Node, args []*ast.Node, env *Environment) (*ast.Node, error) {
	switch f := fn.Valuer().(type) {
	case *Closure:
		return in.call(f, args)
	case *Primitive:
		return f.fn(in, env, args)
	}
	return nil, newError(ErrNotFunctionApply, nil, "cannot apply %s as function", ast.EncodeValue(fn))
}

func (in *Interpreter) call(c *Closure, args []*ast.Node) (*ast.Node, error) {
	switch {
	case len(args) < len(c.params):
		return nil, newError(ErrNotEnoughArguments, nil, "%s: expected %d arguments, got %d", c.Encode(), len(c.params), len(args))
	case len(args) > len(c.params):
		return nil, newError(ErrTooMuchArguments, nil, "%s: expected %d arguments, got %d", c.Encode(), len(c.params), len(args))
	}

	scope := NewEnvironment(c.env)
	for i := range c.params {
		scope.Define(c.params[i], args[i])
	}

	in.log.Printf("call %s", c.Encode())
	return in.evalBody(c.body, scope)
}

func (in *Interpreter) evalBody(body []*ast.Node, env *Environment) (*ast.Node, error) {
	result := ast.Nil
	for _, expr := range body {
		value, err := in.Evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}
