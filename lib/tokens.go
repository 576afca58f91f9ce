package lib

import "fmt"

type TokenType int

const (
	// Special
	TokenIllegal TokenType = iota
	TokenEOF

	// Identifiers + literals
	TokenIdent
	TokenInt

	// Operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenBang
	TokenAsterisk
	TokenSlash
	TokenEq
	TokenNotEq
	TokenGt
	TokenLt

	// Delimiters
	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	// Keywords
	TokenFunction
	TokenLet
	TokenReturn
	TokenIf
	TokenElse
	TokenTrue
	TokenFalse
)

// Token is one lexical unit. Text is set only for identifiers (and for
// illegal digit runs, so callers can report them); Num only for integer
// literals.
type Token struct {
	Type TokenType
	Text string
	Num  int64
}

var keywords = map[string]TokenType{
	"fn":     TokenFunction,
	"let":    TokenLet,
	"return": TokenReturn,
	"if":     TokenIf,
	"else":   TokenElse,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

func lookupIdent(text string) TokenType {
	if typ, ok := keywords[text]; ok {
		return typ
	}
	return TokenIdent
}

var tokenTypeNames = map[TokenType]string{
	TokenIllegal:   "ILLEGAL",
	TokenEOF:       "EOF",
	TokenIdent:     "IDENT",
	TokenInt:       "INT",
	TokenAssign:    "=",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenBang:      "!",
	TokenAsterisk:  "*",
	TokenSlash:     "/",
	TokenEq:        "==",
	TokenNotEq:     "!=",
	TokenGt:        ">",
	TokenLt:        "<",
	TokenComma:     ",",
	TokenSemicolon: ";",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenFunction:  "fn",
	TokenLet:       "let",
	TokenReturn:    "return",
	TokenIf:        "if",
	TokenElse:      "else",
	TokenTrue:      "true",
	TokenFalse:     "false",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return name
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdent:
		return fmt.Sprintf("IDENT(%s)", t.Text)
	case TokenInt:
		return fmt.Sprintf("INT(%d)", t.Num)
	case TokenIllegal:
		if t.Text != "" {
			return fmt.Sprintf("ILLEGAL(%s)", t.Text)
		}
		return "ILLEGAL"
	default:
		return t.Type.String()
	}
}
