package jitcalc

import "strconv"

// tree parses a token stream into a single expression root.
type tree struct {
	tokens <-chan Token
	token  Token // one token lookahead
}

// Parse lexes and parses the input, returning the expression's root
// node. On failure it returns a *LexError or *ParseError describing
// the first problem encountered.
func Parse(input string) (Node, error) {
	t := &tree{tokens: Lex(input)}
	t.next()
	if t.token.Kind == TokenEOF {
		return nil, &ParseError{Kind: ErrEmptyExpression, Pos: t.token.Pos, Token: t.token}
	}
	root, err := t.parseExpression()
	if err != nil {
		return nil, err
	}
	if t.token.Kind != TokenEOF {
		if t.token.Kind == TokenError {
			return nil, &LexError{Pos: t.token.Pos, Msg: t.token.Val}
		}
		return nil, &ParseError{Kind: ErrTrailingInput, Pos: t.token.Pos, Token: t.token}
	}
	return root, nil
}

func (t *tree) next() Token {
	t.token = <-t.tokens
	return t.token
}

// binaryOpPrecedence makes '*' and '/' bind tighter than '+' and '-'.
// Non-operator tokens are absent and so get precedence 0, which stops
// parseBinaryOpRHS.
var binaryOpPrecedence = map[TokenType]int{
	TokenPlus:  20,
	TokenMinus: 20,
	TokenStar:  40,
	TokenSlash: 40,
}

func (t *tree) parseExpression() (Node, error) {
	lhs, err := t.parseUnary()
	if err != nil {
		return nil, err
	}
	return t.parseBinaryOpRHS(1, lhs)
}

// parseBinaryOpRHS climbs operator precedence. All operators associate
// left: equal precedence does not recurse, so "8 - 3 - 2" builds
// ((8 - 3) - 2).
func (t *tree) parseBinaryOpRHS(exprPrec int, lhs Node) (Node, error) {
	for {
		tokenPrec := binaryOpPrecedence[t.token.Kind]
		if tokenPrec < exprPrec {
			return lhs, nil
		}

		binOp := tokenOps[t.token.Kind]
		pos := t.token.Pos
		t.next()

		rhs, err := t.parseUnary()
		if err != nil {
			return nil, err
		}

		if tokenPrec < binaryOpPrecedence[t.token.Kind] {
			rhs, err = t.parseBinaryOpRHS(tokenPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &binaryNode{NodeBinary, pos, binOp, lhs, rhs}
	}
}

// parseUnary handles a leading '-' in factor position. A negated
// number literal folds into a negative constant; any other operand
// becomes a subtraction from zero.
func (t *tree) parseUnary() (Node, error) {
	if t.token.Kind != TokenMinus {
		return t.parsePrimary()
	}
	pos := t.token.Pos
	t.next()
	operand, err := t.parseUnary()
	if err != nil {
		return nil, err
	}
	if num, ok := operand.(*numberNode); ok {
		num.val = -num.val
		return num, nil
	}
	zero := &numberNode{NodeNumber, pos, 0}
	return &binaryNode{NodeBinary, pos, opSub, zero, operand}, nil
}

func (t *tree) parsePrimary() (Node, error) {
	switch t.token.Kind {
	case TokenNumber:
		return t.parseNumber()
	case TokenLParen:
		return t.parseParenExpr()
	case TokenError:
		return nil, &LexError{Pos: t.token.Pos, Msg: t.token.Val}
	default:
		// TokenEOF here means an operand is missing, e.g. "1 + ".
		return nil, &ParseError{Kind: ErrUnexpectedToken, Pos: t.token.Pos, Token: t.token}
	}
}

func (t *tree) parseNumber() (Node, error) {
	val, err := strconv.ParseFloat(t.token.Val, 64)
	if err != nil {
		return nil, &ParseError{Kind: ErrUnexpectedToken, Pos: t.token.Pos, Token: t.token}
	}
	n := &numberNode{NodeNumber, t.token.Pos, val}
	t.next()
	return n, nil
}

func (t *tree) parseParenExpr() (Node, error) {
	pos := t.token.Pos
	t.next()
	inner, err := t.parseExpression()
	if err != nil {
		return nil, err
	}
	if t.token.Kind != TokenRParen {
		if t.token.Kind == TokenError {
			return nil, &LexError{Pos: t.token.Pos, Msg: t.token.Val}
		}
		return nil, &ParseError{Kind: ErrUnmatchedParen, Pos: t.token.Pos, Token: t.token}
	}
	t.next()
	return &groupingNode{NodeGrouping, pos, inner}, nil
}
