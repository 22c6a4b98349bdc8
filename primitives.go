package lisp

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xiam/s-lisp/ast"
)

var primitives = map[string]PrimitiveFunc{
	"+": reduce("+", func(a, b *ast.Node) (decimal.Decimal, error) {
		return a.Number().Add(b.Number()), nil
	}),
	"-": reduce("-", func(a, b *ast.Node) (decimal.Decimal, error) {
		return a.Number().Sub(b.Number()), nil
	}),
	"*": reduce("*", func(a, b *ast.Node) (decimal.Decimal, error) {
		return a.Number().Mul(b.Number()), nil
	}),
	"/": reduce("/", func(a, b *ast.Node) (decimal.Decimal, error) {
		if b.Number().IsZero() {
			return decimal.Zero, newError(ErrDividedZero, nil, "/: divided by zero")
		}
		return a.Number().Div(b.Number()), nil
	}),
	"%": reduce("%", func(a, b *ast.Node) (decimal.Decimal, error) {
		if b.Number().IsZero() {
			return decimal.Zero, newError(ErrDividedZero, nil, "%%: divided by zero")
		}
		return a.Number().Mod(b.Number()), nil
	}),

	"=": primEqual,

	">":  compare(">", func(c int) bool { return c > 0 }),
	"<":  compare("<", func(c int) bool { return c < 0 }),
	">=": compare(">=", func(c int) bool { return c >= 0 }),
	"<=": compare("<=", func(c int) bool { return c <= 0 }),

	"!": primNot,

	"car":   primCar,
	"cdr":   primCdr,
	"cons":  primCons,
	"list":  primList,
	"null?": primNull,

	"eval":  primEval,
	"apply": primApply,

	"display": primDisplay,
	"newline": primNewline,
}

func definePrimitives(env *Environment) {
	for name, fn := range primitives {
		env.Define(ast.Symbol(name), NewPrimitive(name, fn))
	}

	env.Define("true", ast.True)
	env.Define("false", ast.False)
	env.Define("nil", ast.Nil)
}

// reduce folds the arguments from left to right.
func reduce(name string, op func(a, b *ast.Node) (decimal.Decimal, error)) PrimitiveFunc {
	return func(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
		if err := checkArity(name, args, 1, -1); err != nil {
			return nil, err
		}
		for _, arg := range args {
			if !arg.Is(ast.NodeTypeNumber) {
				return nil, newError(ErrNotNumber, nil, "%s: cannot calculate with %s", name, ast.EncodeValue(arg))
			}
		}

		result := args[0]
		for _, arg := range args[1:] {
			num, err := op(result, arg)
			if err != nil {
				return nil, err
			}
			result = ast.NewNumber(nil, num)
		}
		return result, nil
	}
}

func compare(name string, accept func(int) bool) PrimitiveFunc {
	return func(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
		if err := checkArity(name, args, 2, 2); err != nil {
			return nil, err
		}
		a, b := args[0], args[1]
		if !a.Is(ast.NodeTypeNumber) || !b.Is(ast.NodeTypeNumber) {
			return nil, newError(ErrUncomparable, nil, "%s: cannot compare %s and %s", name, ast.EncodeValue(a), ast.EncodeValue(b))
		}
		return ast.NewBool(accept(a.Number().Cmp(b.Number()))), nil
	}
}

func primEqual(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("=", args, 1, -1); err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		if !ast.Equal(args[0], arg) {
			return ast.False, nil
		}
	}
	return ast.True, nil
}

func primNot(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("!", args, 1, 1); err != nil {
		return nil, err
	}
	if !args[0].Is(ast.NodeTypeBool) {
		return nil, newError(ErrInvalidArgument, nil, "!: expecting a boolean, got %s", ast.EncodeValue(args[0]))
	}
	return ast.NewBool(!args[0].Bool()), nil
}

func expectList(name string, arg *ast.Node) ([]*ast.Node, error) {
	if !arg.IsVector() {
		return nil, newError(ErrInvalidArgument, nil, "%s: expecting a list, got %s", name, ast.EncodeValue(arg))
	}
	return arg.List(), nil
}

func expectNonEmptyList(name string, args []*ast.Node) ([]*ast.Node, error) {
	if err := checkArity(name, args, 1, 1); err != nil {
		return nil, err
	}
	list, err := expectList(name, args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, newError(ErrEmptyList, nil, "%s: empty list", name)
	}
	return list, nil
}

func primCar(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	list, err := expectNonEmptyList("car", args)
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func primCdr(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	list, err := expectNonEmptyList("cdr", args)
	if err != nil {
		return nil, err
	}
	return ast.NewListOf(nil, list[1:]...), nil
}

// primCons splices list operands instead of nesting them.
func primCons(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("cons", args, 2, 2); err != nil {
		return nil, err
	}
	a, b := args[0], args[1]

	items := make([]*ast.Node, 0, a.Len()+b.Len()+2)
	if a.IsVector() {
		items = append(items, a.List()...)
	} else {
		items = append(items, a)
	}
	if b.IsVector() {
		items = append(items, b.List()...)
	} else {
		items = append(items, b)
	}

	return ast.NewListOf(nil, items...), nil
}

func primList(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	return ast.NewListOf(nil, args...), nil
}

func primNull(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("null?", args, 1, 1); err != nil {
		return nil, err
	}
	list, err := expectList("null?", args[0])
	if err != nil {
		return nil, err
	}
	return ast.NewBool(len(list) == 0), nil
}

func primEval(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("eval", args, 1, 1); err != nil {
		return nil, err
	}
	return in.Evaluate(args[0], env)
}

func primApply(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("apply", args, 2, 2); err != nil {
		return nil, err
	}
	if !isCallable(args[0]) {
		return nil, newError(ErrNotFunctionApply, nil, "apply: cannot apply %s as function", ast.EncodeValue(args[0]))
	}
	list, err := expectList("apply", args[1])
	if err != nil {
		return nil, err
	}
	return in.Apply(args[0], list, env)
}

func primDisplay(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("display", args, 1, 1); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(in.out, Display(args[0])); err != nil {
		return nil, err
	}
	return ast.Nil, nil
}

func primNewline(in *Interpreter, env *Environment, args []*ast.Node) (*ast.Node, error) {
	if err := checkArity("newline", args, 0, 0); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(in.out); err != nil {
		return nil, err
	}
	return ast.Nil, nil
}
