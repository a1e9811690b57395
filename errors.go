package jitcalc

import "fmt"

// LexError reports input the lexer could not tokenize. Pos is the byte
// offset of the offending character; Msg names it.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Pos, e.Msg)
}

// ParseErrorKind discriminates the ways a token stream can fail to
// form an expression.
type ParseErrorKind int

const (
	ErrUnexpectedToken ParseErrorKind = iota
	ErrUnmatchedParen
	ErrEmptyExpression
	ErrTrailingInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnmatchedParen:
		return "unmatched paren"
	case ErrEmptyExpression:
		return "empty expression"
	case ErrTrailingInput:
		return "trailing input"
	default:
		return "parse error"
	}
}

// ParseError reports a token stream that does not form a single
// well-formed expression. Token is the token at which parsing stopped.
type ParseError struct {
	Kind  ParseErrorKind
	Pos   Pos
	Token Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmptyExpression:
		return "parse error: empty expression"
	case ErrUnmatchedParen:
		return fmt.Sprintf("parse error at offset %d: expected ')', found %s", e.Pos, e.Token)
	default:
		return fmt.Sprintf("parse error at offset %d: %s %s", e.Pos, e.Kind, e.Token)
	}
}
