package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenUnknown    TokenType = iota
	TokenOpenParen            // Open parenthesis: "(", "{" or "["
	TokenCloseParen           // Close parenthesis: ")", "}" or "]"
	TokenNumber               // Digits with an optional decimal point
	TokenString               // Text between double or single quotes
	TokenSymbol               // Anything else that is not a separator
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  []rune("({["),
	TokenCloseParen: []rune(")}]"),
	TokenNumber:     []rune("0123456789"),
	TokenString:     []rune(`"'`),
}

var tokenNames = map[TokenType]string{
	TokenUnknown:    "unknown",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenSymbol:     "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenUnknown]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isNewLine(r rune) bool {
	return r == '\n'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isBackslash(r rune) bool {
	return r == '\\'
}

func isDecimalPoint(r rune) bool {
	return r == '.'
}

// isSymbolBreak reports whether r terminates a symbol.
func isSymbolBreak(r rune) bool {
	return isWhitespace(r) || isOpenParen(r) || isCloseParen(r) || isQuote(r) || isBackslash(r)
}
