package lib

import (
	"io"
	"io/ioutil"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer walks a fully materialized source text and produces one token per
// NextToken call. It is single-owner mutable state; calls must be
// sequential.
type Lexer struct {
	input   []rune
	pos     int
	readPos int
	ch      rune
	ok      bool // false once the cursor is past the end of input
}

// NewLexer reads src to EOF before any lexing happens, so the reader is not
// held open during lexing. A read error or non-UTF-8 content fails with
// ErrInvalid.
func NewLexer(src io.Reader) (*Lexer, error) {
	data, err := ioutil.ReadAll(src)
	if err != nil {
		return nil, ErrInvalid
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalid
	}
	return NewLexerString(string(data)), nil
}

// NewLexerString lexes an in-memory source. Construction cannot fail; empty
// input yields an immediate EOF token on the first NextToken call.
func NewLexerString(src string) *Lexer {
	l := &Lexer{
		input:   []rune(src),
		pos:     0,
		readPos: 0,
	}
	l.readChar()
	return l
}

// NextToken produces the next token. After the end of input is reached it
// keeps returning the EOF token on every call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if !l.ok {
		return Token{Type: TokenEOF}
	}

	var tok Token
	switch l.ch {
	case '=':
		if ahead, ok := l.peekChar(); ok && ahead == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenEq}
		}
		tok = Token{Type: TokenAssign}
	case '!':
		if ahead, ok := l.peekChar(); ok && ahead == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenNotEq}
		}
		tok = Token{Type: TokenBang}
	case '+':
		tok = Token{Type: TokenPlus}
	case '-':
		tok = Token{Type: TokenMinus}
	case '*':
		tok = Token{Type: TokenAsterisk}
	case '/':
		tok = Token{Type: TokenSlash}
	case '>':
		tok = Token{Type: TokenGt}
	case '<':
		tok = Token{Type: TokenLt}
	case ',':
		tok = Token{Type: TokenComma}
	case ';':
		tok = Token{Type: TokenSemicolon}
	case '(':
		tok = Token{Type: TokenLParen}
	case ')':
		tok = Token{Type: TokenRParen}
	case '{':
		tok = Token{Type: TokenLBrace}
	case '}':
		tok = Token{Type: TokenRBrace}
	default:
		if unicode.IsLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = Token{Type: TokenIllegal}
	}

	// Single-character branches only: the scans above already left the
	// cursor one past their token and must not advance again.
	l.readChar()
	return tok
}

// readChar moves the cursor forward one character. Past the end of input it
// keeps the "absent" state but still bumps the offsets, so readPos stays
// pos+1.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.ok = false
	} else {
		l.ch = l.input[l.readPos]
		l.ok = true
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar looks one character past the current one without consuming
// anything.
func (l *Lexer) peekChar() (rune, bool) {
	if l.readPos >= len(l.input) {
		return 0, false
	}
	return l.input[l.readPos], true
}

func (l *Lexer) skipWhitespace() {
	for l.ok && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readIdentifier consumes the maximal alphabetic run starting at the
// current character and leaves the first character that fails the predicate
// as the new current one.
func (l *Lexer) readIdentifier() Token {
	start := l.pos
	for l.ok && unicode.IsLetter(l.ch) {
		l.readChar()
	}
	text := string(l.input[start:l.pos])
	typ := lookupIdent(text)
	if typ == TokenIdent {
		return Token{Type: TokenIdent, Text: text}
	}
	return Token{Type: typ}
}

// readNumber consumes the maximal ASCII digit run starting at the current
// character. Overflow is the only way a pure digit run fails to parse; it
// comes back as an illegal token carrying the run, not as an error.
func (l *Lexer) readNumber() Token {
	start := l.pos
	for l.ok && isDigit(l.ch) {
		l.readChar()
	}
	text := string(l.input[start:l.pos])
	num, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{Type: TokenIllegal, Text: text}
	}
	return Token{Type: TokenInt, Num: num}
}

func isDigit(ch rune) bool {
	return ch == '0' ||
		ch == '1' ||
		ch == '2' ||
		ch == '3' ||
		ch == '4' ||
		ch == '5' ||
		ch == '6' ||
		ch == '7' ||
		ch == '8' ||
		ch == '9'
}
