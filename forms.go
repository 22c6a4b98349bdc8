package lisp

import (
	"github.com/xiam/s-lisp/ast"
)

// specialForm receives its operands unevaluated.
type specialForm func(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error)

func newSpecialForms() map[ast.Symbol]specialForm {
	return map[ast.Symbol]specialForm{
		"if":     formIf,
		"define": formDefine,
		"quote":  formQuote,
		"lambda": formLambda,
		"let":    formLet,
		"setf!":  formSetf,
	}
}

func checkArity(name string, args []*ast.Node, min int, max int) error {
	if len(args) < min {
		return newError(ErrNotEnoughArguments, nil, "%s: expected at least %d arguments, got %d", name, min, len(args))
	}
	if max >= 0 && len(args) > max {
		return newError(ErrTooMuchArguments, nil, "%s: expected at most %d arguments, got %d", name, max, len(args))
	}
	return nil
}

func expectSymbol(name string, arg *ast.Node) (ast.Symbol, error) {
	if !arg.Is(ast.NodeTypeSymbol) {
		return "", newError(ErrInvalidArgument, arg, "%s: expecting a symbol, got %s", name, ast.EncodeValue(arg))
	}
	return arg.Symbol(), nil
}

func formIf(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("if", args, 2, 3); err != nil {
		return nil, err
	}

	cond, err := in.Evaluate(args[0], env)
	if err != nil {
		return nil, err
	}

	if !cond.IsFalsy() {
		return in.Evaluate(args[1], env)
	}
	if len(args) == 3 {
		return in.Evaluate(args[2], env)
	}
	return ast.Nil, nil
}

// formDefine binds a name in the current scope. A symbol operand is looked
// up, so the new name gets the current value and not a reference to the
// other name.
func formDefine(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("define", args, 2, 2); err != nil {
		return nil, err
	}

	name, err := expectSymbol("define", args[0])
	if err != nil {
		return nil, err
	}

	value, err := in.Evaluate(args[1], env)
	if err != nil {
		return nil, err
	}

	in.log.Printf("define %s: %s", name, ast.EncodeValue(value))
	env.Define(name, value)

	return ast.Nil, nil
}

func formQuote(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("quote", args, 1, 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

func formLambda(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("lambda", args, 2, -1); err != nil {
		return nil, err
	}

	if !args[0].IsVector() {
		return nil, newError(ErrInvalidArgument, args[0], "lambda: expecting a parameter list, got %s", ast.EncodeValue(args[0]))
	}

	params := make([]ast.Symbol, 0, args[0].Len())
	for _, param := range args[0].List() {
		name, err := expectSymbol("lambda", param)
		if err != nil {
			return nil, err
		}
		params = append(params, name)
	}

	return ast.NewNode(args[0].Token(), &Closure{
		params: params,
		body:   args[1:],
		env:    env,
	}), nil
}

// formLet computes every binding in the enclosing scope before any of them
// becomes visible.
func formLet(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("let", args, 2, -1); err != nil {
		return nil, err
	}

	if !args[0].IsVector() {
		return nil, newError(ErrInvalidArgument, args[0], "let: expecting a binding list, got %s", ast.EncodeValue(args[0]))
	}

	bindings := args[0].List()
	names := make([]ast.Symbol, 0, len(bindings))
	values := make([]*ast.Node, 0, len(bindings))

	for _, binding := range bindings {
		if !binding.IsVector() || binding.Len() != 2 {
			return nil, newError(ErrInvalidArgument, binding, "let: expecting a (name value) pair, got %s", ast.EncodeValue(binding))
		}
		pair := binding.List()

		name, err := expectSymbol("let", pair[0])
		if err != nil {
			return nil, err
		}

		value, err := in.Evaluate(pair[1], env)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
		values = append(values, value)
	}

	scope := NewEnvironment(env)
	for i := range names {
		scope.Define(names[i], values[i])
	}

	return in.evalBody(args[1:], scope)
}

// formSetf replaces the value of an existing binding, wherever in the chain
// of scopes it lives.
func formSetf(in *Interpreter, args []*ast.Node, env *Environment) (*ast.Node, error) {
	if err := checkArity("setf!", args, 2, 2); err != nil {
		return nil, err
	}

	name, err := expectSymbol("setf!", args[0])
	if err != nil {
		return nil, err
	}

	if _, err := env.Lookup(name); err != nil {
		return nil, withNode(err, args[0])
	}

	value, err := in.Evaluate(args[1], env)
	if err != nil {
		return nil, err
	}

	in.log.Printf("setf! %s: %s", name, ast.EncodeValue(value))
	if err := env.Set(name, value); err != nil {
		return nil, withNode(err, args[0])
	}

	return value, nil
}
