package ast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type testFunctionValue struct {
	name string
}

func (tf *testFunctionValue) Type() NodeType {
	return NodeTypeFunction
}

func (tf *testFunctionValue) Value() interface{} {
	return tf
}

func (tf *testFunctionValue) Encode() string {
	return "<function " + tf.name + ">"
}

var _ = Valuer(&testFunctionValue{})

func TestValueEncode(t *testing.T) {
	testCases := []struct {
		In  Valuer
		Out string
	}{
		{NewNumberValue(decimal.NewFromInt(12)), "12"},
		{NewNumberValue(decimal.RequireFromString("3.140")), "3.14"},
		{NewStringValue("hello world"), `"hello world"`},
		{NewStringValue(`say "hi"`), `'say "hi"'`},
		{NewSymbolValue("null?"), "null?"},
		{newBoolValue(true), "true"},
		{newBoolValue(false), "false"},
		{&testFunctionValue{name: "f"}, "<function f>"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.Encode())
	}
}

func TestSymbolTable(t *testing.T) {
	st := NewSymbolTable()

	a := st.Intern("setf!")
	b := st.Intern("setf!")
	c := st.Intern("car")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, st.Len())

	sym, ok := st.Lookup("car")
	assert.True(t, ok)
	assert.Equal(t, Symbol("car"), sym)

	_, ok = st.Lookup("cdr")
	assert.False(t, ok)

	m := map[Symbol]int{a: 1}
	assert.Equal(t, 1, m[Symbol("setf!")])
}
