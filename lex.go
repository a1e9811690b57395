package jitcalc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token is the basic unit of lexicographical meaning.
type Token struct {
	Kind TokenType // The kind of token with which we're dealing.
	Pos  Pos       // The byte offset of the beginning of the token with respect to the beginning of the input.
	Val  string    // The token's constituent text; an error message for TokenError.
}

// Satisfying Stringer allows package fmt to pretty-print our tokens.
func (t Token) String() string {
	switch t.Kind {
	case TokenError:
		return t.Val
	case TokenEOF:
		return "EOF"
	default:
		return t.Val
	}
}

// TokenType identifies the type of a token.
type TokenType int

const (
	// TokenEOF is the zero value of a token's kind, so a drained token
	// channel keeps yielding it.
	TokenEOF TokenType = iota
	TokenError

	// literals
	TokenNumber

	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash

	// punctuation
	TokenLParen
	TokenRParen
)

var op = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner.
type lexer struct {
	input  string     // expression being scanned
	state  stateFn    // next lexing function to be called
	pos    Pos        // current position in input
	start  Pos        // beginning position of the current token
	width  Pos        // width of last rune read from input
	tokens chan Token // channel of lexed items
}

// next returns the next rune from the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = Pos(w)
	l.pos += l.width
	return r
}

// backup moves the scan back one rune.
func (l *lexer) backup() {
	l.pos -= l.width
}

// ignore skips the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) {
	for strings.IndexRune(valid, l.next()) >= 0 {
	}
	l.backup()
}

// word returns the text that would be emitted if emit were called now.
func (l *lexer) word() string {
	return l.input[l.start:l.pos]
}

// emit passes the current token.
func (l *lexer) emit(tt TokenType) {
	l.tokens <- Token{
		Kind: tt,
		Pos:  l.start,
		Val:  l.word(),
	}
	l.start = l.pos
}

// errorf sends an error token and terminates the scan by passing
// nil as the next stateFn.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.tokens <- Token{
		Kind: TokenError,
		Pos:  l.start,
		Val:  fmt.Sprintf(format, args...),
	}
	return nil
}

// Lex creates and runs a new lexer over the input expression. Tokens are
// delivered lazily on the returned channel, which is closed after the
// final TokenEOF or TokenError.
func Lex(input string) <-chan Token {
	l := &lexer{
		input:  input,
		tokens: make(chan Token, 10),
	}
	go l.run()
	return l.tokens
}

// run runs the state machine for the lexer.
func (l *lexer) run() {
	for l.state = lexExpr; l.state != nil; {
		l.state = l.state(l)
	}
	close(l.tokens) // Tells the client no more tokens will be delivered.
}

// State Functions

// lexExpr scans any token of the expression grammar: whitespace,
// a number, an operator, or a paren.
func lexExpr(l *lexer) stateFn {
	r := l.next()
	switch {
	case r == eof:
		l.emit(TokenEOF)
		return nil
	case isSpace(r):
		return lexSpace
	case r == '(':
		l.emit(TokenLParen)
		return lexExpr
	case r == ')':
		l.emit(TokenRParen)
		return lexExpr
	case '0' <= r && r <= '9', r == '.':
		l.backup()
		return lexNumber
	case op[r] > 0:
		l.emit(op[r])
		return lexExpr
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace globs contiguous whitespace. Whitespace only separates
// tokens, so it is dropped rather than emitted.
func lexSpace(l *lexer) stateFn {
	for isSpace(l.next()) {
	}
	l.backup()
	l.ignore()
	return lexExpr
}

// lexNumber globs digits and decimal points. A second point or a
// point with no digits is malformed; everything the run accepts
// beyond that parses cleanly as a float.
func lexNumber(l *lexer) stateFn {
	l.acceptRun("0123456789.")
	word := l.word()
	if word == "." || strings.Count(word, ".") > 1 {
		return l.errorf("malformed number: %q", word)
	}
	l.emit(TokenNumber)
	return lexExpr
}

// Helper Functions

// isSpace reports whether r is whitespace.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
