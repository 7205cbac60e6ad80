package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeanMcLoughlin/rlox/lox"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	switch len(args) {
	case 1:
		return runREPL()
	case 2:
		return runFile(args[1])
	default:
		return fmt.Errorf("Usage: %s [script]", filepath.Base(args[0]))
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	tokens, err := lox.NewScanner(string(source)).ScanTokens()
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return nil
}
