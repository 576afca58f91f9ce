package main

import (
	"fmt"
	"os"

	"github.com/graeme-hill/lexstuff-go/lib"
)

func main() {
	src := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "lex: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	}

	lexer, err := lib.NewLexer(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lex: %v\n", err)
		os.Exit(1)
	}

	printTokens(lib.NewTokenBuffer(lexer))
}

func printTokens(tokens lib.TokenReader) {
	for {
		tok := tokens.Next()
		fmt.Println(tok)
		if tok.Type == lib.TokenEOF {
			return
		}
	}
}
