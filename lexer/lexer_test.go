package lexer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`(+ 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a
			c-d-e-f
			"g
			hi"
		)`,

		`(define account
			(lambda (n)
				(lambda (incr)
					(setf! n (+ n incr))
					n)))`,

		`[{(display 'hello')}]`,

		`(fn1 "😊")`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenOpenParen,
				TokenCloseParen,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenOpenParen,
				TokenNumber,
				TokenCloseParen,
			},
		},
		{
			`(+
			1.5)`,
			[]TokenType{
				TokenOpenParen,
				TokenOpenParen,
				TokenSymbol,
				TokenNumber,
				TokenCloseParen,
				TokenCloseParen,
			},
		},
		{
			`[a {"b" 'c'}]`,
			[]TokenType{
				TokenOpenParen,
				TokenOpenParen,
				TokenSymbol,
				TokenOpenParen,
				TokenString,
				TokenString,
				TokenCloseParen,
				TokenCloseParen,
				TokenCloseParen,
			},
		},
		{
			`12abc`,
			[]TokenType{
				TokenOpenParen,
				TokenNumber,
				TokenSymbol,
				TokenCloseParen,
			},
		},
		{
			`a\\b`,
			[]TokenType{
				TokenOpenParen,
				TokenSymbol,
				TokenUnknown,
				TokenSymbol,
				TokenCloseParen,
			},
		},
		{
			`(a "open`,
			[]TokenType{
				TokenOpenParen,
				TokenOpenParen,
				TokenSymbol,
				TokenUnknown,
				TokenCloseParen,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize([]byte(`(display "a 'b' c" 'd "e"' 1. 2.50 setf! \\)`))
	require.NoError(t, err)

	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, tokens[i].Text())
	}

	assert.Equal(t, []string{"", "(", "display", "a 'b' c", `d "e"`, "1.", "2.50", "setf!", `\\`, ")", ""}, texts)
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 0}, {1, 0},
			},
		},
		{
			"1",
			[][2]int{
				{1, 0}, {1, 0}, {1, 0},
			},
		},
		{
			"(a bc)",
			[][2]int{
				{1, 0}, {1, 0}, {1, 1}, {1, 3}, {1, 5}, {1, 5},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{1, 0},
				{4, 0}, {4, 6},
				{4, 10},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 0}, {1, 0},
				{3, 2},
				{3, 6},
			},
		},
		{
			"(a\n \"b\nc\" d)",
			[][2]int{
				{1, 0}, {1, 0}, {1, 1},
				{2, 1},
				{3, 3}, {3, 4},
				{3, 4},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), testCases[i].In)
	}
}

func TestTokenSource(t *testing.T) {
	tokens, err := Tokenize([]byte("(define x 1)\n\t(display x)"))
	require.NoError(t, err)

	for _, tok := range tokens {
		line, _ := tok.Pos()
		switch line {
		case 1:
			assert.Equal(t, "(define x 1)", tok.Source())
		case 2:
			assert.Equal(t, "\t(display x)", tok.Source())
		}
	}

	last := tokens[len(tokens)-1]
	assert.Equal(t, strings.Join([]string{
		"Code at [2:11]",
		" (display x)",
		"           ^",
	}, "\n"), last.Excerpt())
}

func TestScannerError(t *testing.T) {
	lx := New(bytes.NewReader([]byte("(a \x00)")))

	err := lx.Scan()
	require.Error(t, err)

	var lexErr *Error
	assert.True(t, errors.As(err, &lexErr))
	assert.Contains(t, lexErr.Error(), "tokenizing error")
}
