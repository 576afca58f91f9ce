package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdentKeywords(t *testing.T) {
	expected := map[string]TokenType{
		"fn":     TokenFunction,
		"let":    TokenLet,
		"return": TokenReturn,
		"if":     TokenIf,
		"else":   TokenElse,
		"true":   TokenTrue,
		"false":  TokenFalse,
	}
	for text, typ := range expected {
		require.Equal(t, typ, lookupIdent(text), "keyword %q", text)
	}
}

func TestLookupIdentNonKeywords(t *testing.T) {
	for _, text := range []string{"foo", "fnx", "Let", "RETURN", "truthy", ""} {
		require.Equal(t, TokenIdent, lookupIdent(text), "identifier %q", text)
	}
}

func TestTokenTypeString(t *testing.T) {
	require.Equal(t, "EOF", TokenEOF.String())
	require.Equal(t, "ILLEGAL", TokenIllegal.String())
	require.Equal(t, "==", TokenEq.String())
	require.Equal(t, "fn", TokenFunction.String())
	require.Equal(t, "TokenType(99)", TokenType(99).String())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "IDENT(five)", Token{Type: TokenIdent, Text: "five"}.String())
	require.Equal(t, "INT(5)", Token{Type: TokenInt, Num: 5}.String())
	require.Equal(t, "ILLEGAL", Token{Type: TokenIllegal}.String())
	require.Equal(t, "ILLEGAL(99999999999999999999)",
		Token{Type: TokenIllegal, Text: "99999999999999999999"}.String())
	require.Equal(t, ";", Token{Type: TokenSemicolon}.String())
}
