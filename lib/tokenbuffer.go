package lib

// TokenBuffer adapts a Lexer into a TokenReader with one token of
// lookahead. Peek never consumes; Next drains the peeked token first.
type TokenBuffer struct {
	lexer  *Lexer
	peeked *Token
}

func NewTokenBuffer(lexer *Lexer) *TokenBuffer {
	return &TokenBuffer{
		lexer:  lexer,
		peeked: nil,
	}
}

func (tb *TokenBuffer) Next() Token {
	if tb.peeked != nil {
		tok := *tb.peeked
		tb.peeked = nil
		return tok
	}
	return tb.lexer.NextToken()
}

func (tb *TokenBuffer) Peek() Token {
	if tb.peeked == nil {
		tok := tb.lexer.NextToken()
		tb.peeked = &tok
	}
	return *tb.peeked
}
