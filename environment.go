package lisp

import (
	"sort"

	"github.com/xiam/s-lisp/ast"
)

// Environment is a scope of bindings. Scopes are chained through their
// parent, closures keep a reference to the scope they were created in.
type Environment struct {
	parent *Environment

	bindings map[ast.Symbol]*ast.Node
}

// NewEnvironment creates an empty scope, parent may be nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		parent:   parent,
		bindings: make(map[ast.Symbol]*ast.Node),
	}
}

// Parent returns the enclosing scope
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Define binds name to value in this scope, replacing any previous binding
// of the same scope. Bindings of enclosing scopes are shadowed, not
// modified.
func (env *Environment) Define(name ast.Symbol, value *ast.Node) {
	env.bindings[name] = value
}

// Defined returns true if this scope (not its parents) binds name
func (env *Environment) Defined(name ast.Symbol) bool {
	_, ok := env.bindings[name]
	return ok
}

// Lookup returns the value bound to name in the nearest scope that defines
// it.
func (env *Environment) Lookup(name ast.Symbol) (*ast.Node, error) {
	if scope := env.find(name); scope != nil {
		return scope.bindings[name], nil
	}
	return nil, newError(ErrUndefinedSymbol, nil, "%s is not defined", name)
}

// Set replaces the value of name in the nearest scope that defines it.
func (env *Environment) Set(name ast.Symbol, value *ast.Node) error {
	if scope := env.find(name); scope != nil {
		scope.bindings[name] = value
		return nil
	}
	return newError(ErrUndefinedSymbol, nil, "%s is not defined", name)
}

// Symbols returns the names bound in this scope, sorted.
func (env *Environment) Symbols() []ast.Symbol {
	names := make([]ast.Symbol, 0, len(env.bindings))
	for name := range env.bindings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}

func (env *Environment) find(name ast.Symbol) *Environment {
	for scope := env; scope != nil; scope = scope.parent {
		if _, ok := scope.bindings[name]; ok {
			return scope
		}
	}
	return nil
}
