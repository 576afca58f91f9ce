package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/graeme-hill/lexstuff-go/lib"
)

const (
	historyFile = ".lexstuff_history"
	prompt      = ">> "
)

func main() {
	fmt.Println("Token REPL. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C
			continue
		}

		if strings.TrimSpace(line) == ":quit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Println(tokenLine(line))
		ln.AppendHistory(line)
	}
}

func tokenLine(src string) string {
	lexer := lib.NewLexerString(src)
	parts := []string{}
	for {
		tok := lexer.NextToken()
		parts = append(parts, tok.String())
		if tok.Type == lib.TokenEOF {
			break
		}
	}
	return strings.Join(parts, " ")
}
