package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
	isDigit      = isTokenType(TokenNumber)
	isQuote      = isTokenType(TokenString)
)

// Error is returned when the input can't be read or decoded, Token points at
// the place where reading stopped.
type Error struct {
	Token Token
	Msg   string
}

func (e *Error) Error() string {
	return e.Msg
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
	}

	s := &scanner.Scanner{}
	lx.in = s.Init(r)
	lx.in.Mode = 0
	lx.in.Error = lx.scanError

	return lx
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	line, col           int
	startLine, startCol int
	lastLine, lastCol   int
	consumed            bool

	lines   []string
	curLine []rune
}

// Tokens returns all the tokens scanned so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input. The resulting token sequence always starts with
// an implicit open parenthesis and ends with an implicit close parenthesis.
func (lx *Lexer) Scan() error {
	lx.tokens = append(lx.tokens, Token{tt: TokenOpenParen, line: 1, col: 0})

	for state := lexDefaultState; state != nil; {
		state = state(lx)
		if lx.lastErr != nil {
			break
		}
	}

	lx.lines = append(lx.lines, string(lx.curLine))

	closing := Token{tt: TokenCloseParen, line: 1, col: 0}
	if lx.consumed {
		closing.line, closing.col = lx.lastLine, lx.lastCol
	}
	lx.tokens = append(lx.tokens, closing)

	for i := range lx.tokens {
		if n := lx.tokens[i].line - 1; n >= 0 && n < len(lx.lines) {
			lx.tokens[i].source = lx.lines[n]
		}
	}

	if lx.lastErr != nil {
		var lexErr *Error
		if errors.As(lx.lastErr, &lexErr) {
			if n := lexErr.Token.line - 1; n >= 0 && n < len(lx.lines) {
				lexErr.Token.source = lx.lines[n]
			}
		}
		return lx.lastErr
	}

	return nil
}

func (lx *Lexer) scanError(s *scanner.Scanner, msg string) {
	if lx.lastErr != nil {
		return
	}
	lx.lastErr = &Error{
		Token: Token{tt: TokenUnknown, line: lx.line, col: lx.col},
		Msg:   fmt.Sprintf("tokenizing error: %s", msg),
	}
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitText(tt, string(lx.buf))
}

func (lx *Lexer) emitText(tt TokenType, text string) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: text,

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.consumed = true
	lx.lastLine, lx.lastCol = lx.line, lx.col

	lx.buf = append(lx.buf, r)

	if isNewLine(r) {
		lx.lines = append(lx.lines, string(lx.curLine))
		lx.curLine = lx.curLine[0:0]
		lx.line++
		lx.col = 0
		return r, nil
	}

	lx.curLine = append(lx.curLine, r)
	lx.col++
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return nil
	}

	switch {
	case isWhitespace(r):
		return lexDefaultState
	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)
	case isQuote(r):
		return lexString(r)
	case isDigit(r):
		return lexNumber
	case isBackslash(r):
		return lexUnknown
	default:
		return lexSymbol
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexString(quote rune) lexState {
	return func(lx *Lexer) lexState {
		for {
			r, err := lx.next()
			if err != nil {
				// unterminated string
				lx.emit(TokenUnknown)
				return nil
			}
			if r == quote {
				break
			}
		}
		lx.emitText(TokenString, string(lx.buf[1:len(lx.buf)-1]))
		return lexDefaultState
	}
}

func lexNumber(lx *Lexer) lexState {
	lx.collect(isDigit)
	if isDecimalPoint(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return nil
		}
		lx.collect(isDigit)
	}
	lx.emit(TokenNumber)
	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	lx.collect(func(r rune) bool {
		return r != scanner.EOF && !isSymbolBreak(r)
	})
	lx.emit(TokenSymbol)
	return lexDefaultState
}

func lexUnknown(lx *Lexer) lexState {
	lx.collect(isBackslash)
	lx.emit(TokenUnknown)
	return lexDefaultState
}

func (lx *Lexer) collect(accept func(rune) bool) {
	for accept(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return
		}
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if the input can't be read.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
