package parser

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/xiam/s-lisp/ast"
	"github.com/xiam/s-lisp/lexer"
)

const (
	symbolStart = "=+*<>/-!%"
	symbolBody  = symbolStart + "_.?"
)

// Parser builds a tree out of the tokens of a source text. The root node is
// a list holding every top-level form.
type Parser struct {
	r io.Reader

	root    *ast.Node
	tokens  []lexer.Token
	symbols *ast.SymbolTable
}

// New creates a parser that reads source text from r
func New(r io.Reader) *Parser {
	return &Parser{
		r:       r,
		symbols: ast.NewSymbolTable(),
	}
}

// Parse reads and parses the whole input.
func (p *Parser) Parse() error {
	lx := lexer.New(p.r)
	if err := lx.Scan(); err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return &Error{Err: ErrTokenizing, Token: &lexErr.Token, Msg: lexErr.Msg}
		}
		return &Error{Err: ErrTokenizing, Msg: err.Error()}
	}
	return p.parseTokens(lx.Tokens())
}

// Root returns the parsed tree
func (p *Parser) Root() *ast.Node {
	return p.root
}

// Symbols returns the symbol table that holds every symbol name seen by the
// parser.
func (p *Parser) Symbols() *ast.SymbolTable {
	return p.symbols
}

func (p *Parser) parseTokens(tokens []lexer.Token) error {
	if len(tokens) == 0 {
		return newError(ErrParenthesis, nil)
	}

	p.tokens = tokens
	p.root = ast.NewList(&p.tokens[0])

	res, err := p.tree(p.root, 0)
	if err != nil {
		p.root = nil
		return err
	}

	switch {
	case res+1 < len(p.tokens):
		p.root = nil
		return newError(ErrUnopenedParenthesis, p.lastConsumed(res))
	case res+1 > len(p.tokens):
		p.root = nil
		return newError(ErrUnclosedParenthesis, p.lastConsumed(res))
	}

	return nil
}

func (p *Parser) lastConsumed(res int) *lexer.Token {
	if res < 1 {
		return &p.tokens[0]
	}
	return &p.tokens[res-1]
}

// tree fills list with the elements that follow the open parenthesis at
// cur. It returns the position of the matching close parenthesis, or the
// number of tokens if the input ended first.
func (p *Parser) tree(list *ast.Node, cur int) (int, error) {
	if !p.tokens[cur].Is(lexer.TokenOpenParen) {
		return 0, newError(ErrParenthesis, &p.tokens[cur])
	}

	for i := cur + 1; i < len(p.tokens); i++ {
		tok := &p.tokens[i]

		switch tok.Type() {
		case lexer.TokenOpenParen:
			child, err := list.PushList(tok)
			if err != nil {
				return 0, err
			}
			if i, err = p.tree(child, i); err != nil {
				return 0, err
			}

		case lexer.TokenCloseParen:
			return i, nil

		case lexer.TokenNumber:
			num, err := decimal.NewFromString(tok.Text())
			if err != nil {
				return 0, newError(ErrNumber, tok)
			}
			if _, err := list.PushValue(tok, ast.NewNumberValue(num)); err != nil {
				return 0, err
			}

		case lexer.TokenString:
			if _, err := list.PushValue(tok, ast.NewStringValue(tok.Text())); err != nil {
				return 0, err
			}

		case lexer.TokenSymbol:
			if !IsSymbolName(tok.Text()) {
				return 0, newError(ErrUnexpectedToken, tok)
			}
			sym := p.symbols.Intern(tok.Text())
			if _, err := list.PushValue(tok, ast.NewSymbolValue(sym)); err != nil {
				return 0, err
			}

		default:
			return 0, newError(ErrUnexpectedToken, tok)
		}
	}

	return len(p.tokens), nil
}

// IsSymbolName reports whether name is an acceptable symbol name.
func IsSymbolName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if i == 0 {
			if !strings.ContainsRune(symbolStart, r) {
				return false
			}
			continue
		}
		if !strings.ContainsRune(symbolBody, r) {
			return false
		}
	}
	return true
}

// ParseTokens builds a tree out of an already tokenized source
func ParseTokens(tokens []lexer.Token) (*ast.Node, error) {
	p := New(nil)
	if err := p.parseTokens(tokens); err != nil {
		return nil, err
	}
	return p.root, nil
}

// Parse takes an array of bytes and returns the tree of top-level forms
// within it.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.root, nil
}
