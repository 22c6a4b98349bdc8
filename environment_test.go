package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/s-lisp/ast"
)

func TestEnvironmentDefineLookup(t *testing.T) {
	env := NewEnvironment(nil)
	assert.NotNil(t, env)

	{
		v, err := env.Lookup("foo")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUndefinedSymbol))
		assert.Nil(t, v)
	}

	{
		env.Define("foo", ast.True)

		v, err := env.Lookup("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)
	}

	{
		env.Define("foo", ast.False)

		v, err := env.Lookup("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.False, v)
	}
}

func TestEnvironmentChild(t *testing.T) {
	env := NewEnvironment(nil)
	child := NewEnvironment(env)
	assert.Equal(t, env, child.Parent())

	env.Define("foo", ast.True)

	{
		v, err := child.Lookup("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)
		assert.False(t, child.Defined("foo"))
	}

	{
		child.Define("foo", ast.False)

		v, err := child.Lookup("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.False, v)

		v, err = env.Lookup("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)
	}

	{
		child.Define("bar", ast.Nil)

		_, err := env.Lookup("bar")
		assert.True(t, errors.Is(err, ErrUndefinedSymbol))
	}
}

func TestEnvironmentSet(t *testing.T) {
	env := NewEnvironment(nil)
	middle := NewEnvironment(env)
	child := NewEnvironment(middle)

	env.Define("n", ast.False)

	{
		err := child.Set("n", ast.True)
		assert.NoError(t, err)

		v, err := env.Lookup("n")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)

		assert.False(t, child.Defined("n"))
		assert.False(t, middle.Defined("n"))
	}

	{
		middle.Define("n", ast.Nil)

		err := child.Set("n", ast.False)
		assert.NoError(t, err)

		v, _ := middle.Lookup("n")
		assert.Equal(t, ast.False, v)

		v, _ = env.Lookup("n")
		assert.Equal(t, ast.True, v)
	}

	{
		err := child.Set("missing", ast.True)
		assert.True(t, errors.Is(err, ErrUndefinedSymbol))
		assert.True(t, errors.Is(err, ErrRuntime))
		assert.Contains(t, err.Error(), "missing is not defined")
		assert.False(t, child.Defined("missing"))
	}
}

func TestEnvironmentSymbols(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("b", ast.Nil)
	env.Define("a", ast.Nil)
	env.Define("c", ast.Nil)

	child := NewEnvironment(env)
	child.Define("z", ast.Nil)

	assert.Equal(t, []ast.Symbol{"a", "b", "c"}, env.Symbols())
	assert.Equal(t, []ast.Symbol{"z"}, child.Symbols())
}
