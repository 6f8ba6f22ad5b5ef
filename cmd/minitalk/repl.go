package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/unicode/norm"

	"github.com/zephyrtronium/minitalk"
)

// LineReader reads lines of input with a prompt and records accepted lines.
// *liner.State is a LineReader.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
}

// repl evaluates lines read from in until exit or end of input.
type repl struct {
	vm  *minitalk.VM
	in  LineReader
	out io.Writer

	prompt    string
	normalize bool
	// tokens echoes each line's tokens before evaluating it.
	tokens bool
}

// run is the read-eval-print loop. Any failure to read a line, including
// end of input and interrupts, ends the loop without error.
func (r *repl) run() error {
	for {
		line, err := r.in.Prompt(r.prompt)
		if err != nil {
			// Leave the terminal on a fresh line.
			fmt.Fprintln(r.out)
			return nil
		}
		input := strings.TrimSpace(line)
		if input == "exit" {
			return nil
		}
		if input == "" {
			continue
		}
		r.in.AppendHistory(input)
		if r.normalize {
			input = norm.NFC.String(input)
		}
		if r.tokens {
			if err := formatTokensPretty(r.out, tokenRecords(minitalk.Lex(input), false)); err != nil {
				return err
			}
		}
		if err := r.vm.Fprintln(r.out, r.vm.DoString(input)); err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}
}

// runREPL runs an interactive session on the terminal.
func runREPL(cfg Config, useColor, tokens bool) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist, err := cfg.historyPath()
	if err != nil {
		return err
	}
	if hist != "" {
		if err := readHistory(ln, hist); err != nil {
			fmt.Fprintln(os.Stderr, "minitalk:", err)
		}
		defer func() {
			if err := writeHistory(ln, hist); err != nil {
				fmt.Fprintln(os.Stderr, "minitalk:", err)
			}
		}()
	}

	vm := minitalk.NewVM()
	vm.Reporter = newPrettyReporter(os.Stdout, useColor, cfg.Excerpt)
	r := repl{
		vm:        vm,
		in:        ln,
		out:       os.Stdout,
		prompt:    cfg.Prompt,
		normalize: cfg.Normalize,
		tokens:    tokens,
	}
	return r.run()
}

// readHistory loads line history. A missing file is not an error.
func readHistory(ln *liner.State, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		return fmt.Errorf("failed to read history from %s: %w", path, err)
	}
	return nil
}

func writeHistory(ln *liner.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history: %w", err)
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write history to %s: %w", path, err)
	}
	return f.Close()
}
