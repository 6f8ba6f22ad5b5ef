package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/zephyrtronium/minitalk"
)

// scriptReader is a LineReader producing fixed lines, then err.
type scriptReader struct {
	lines   []string
	err     error
	prompts []string
	history []string
}

func (s *scriptReader) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptReader) AppendHistory(line string) {
	s.history = append(s.history, line)
}

func TestREPL(t *testing.T) {
	cases := map[string]struct {
		lines   []string
		err     error
		tokens  bool
		out     string
		history []string
		prompts int
	}{
		"Arith": {
			lines:   []string{"2 + 3 * 4", "3 + 0.5", "2.0 * 3"},
			out:     "20\n3.5000000000\n6.0000000000\n\n",
			history: []string{"2 + 3 * 4", "3 + 0.5", "2.0 * 3"},
			prompts: 4,
		},
		"Trim": {
			lines:   []string{"   -5 + 3  \t"},
			out:     "-2\n\n",
			history: []string{"-5 + 3"},
			prompts: 2,
		},
		"Exit": {
			lines:   []string{"1", "exit", "2"},
			out:     "1\n",
			history: []string{"1"},
			prompts: 2,
		},
		"ExitSpaced": {
			lines:   []string{"  exit  ", "2"},
			out:     "",
			history: nil,
			prompts: 1,
		},
		"Blank": {
			lines:   []string{"", "   ", "7"},
			out:     "7\n\n",
			history: []string{"7"},
			prompts: 4,
		},
		"NoValue": {
			lines:   []string{"x", "1 +"},
			out:     "\n",
			history: []string{"x", "1 +"},
			prompts: 3,
		},
		"Diagnostic": {
			lines:   []string{"37rA", "16rFF"},
			out:     "Base 37 is out of range. It must be between 2 and 36.\n255\n\n",
			history: []string{"37rA", "16rFF"},
			prompts: 3,
		},
		"Interrupted": {
			lines:   []string{"5 - - 3"},
			err:     errors.New("prompt aborted"),
			out:     "8\n\n",
			history: []string{"5 - - 3"},
			prompts: 2,
		},
		"Tokens": {
			lines:   []string{"1 + 2"},
			tokens:  true,
			out:     "0-1       Integer          \"1\"\n2-3       Plus             \"+\"\n4-5       Integer          \"2\"\n3\n\n",
			history: []string{"1 + 2"},
			prompts: 2,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var out strings.Builder
			vm := minitalk.NewVM()
			vm.Reporter = newPrettyReporter(&out, false, false)
			in := &scriptReader{lines: c.lines, err: c.err}
			r := repl{vm: vm, in: in, out: &out, prompt: ">>> ", normalize: true, tokens: c.tokens}
			if err := r.run(); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if out.String() != c.out {
				t.Errorf("wrong output: have %q, want %q", out.String(), c.out)
			}
			if strings.Join(in.history, "|") != strings.Join(c.history, "|") {
				t.Errorf("wrong history: have %q, want %q", in.history, c.history)
			}
			if len(in.prompts) != c.prompts {
				t.Errorf("wrong number of prompts: have %d, want %d", len(in.prompts), c.prompts)
			}
			for _, p := range in.prompts {
				if p != ">>> " {
					t.Errorf("wrong prompt %q", p)
				}
			}
		})
	}
}

// TestREPLNormalize tests that input is normalized before lexing.
func TestREPLNormalize(t *testing.T) {
	var out strings.Builder
	vm := minitalk.NewVM()
	vm.Reporter = newPrettyReporter(&out, false, false)
	// e followed by a combining acute accent composes to a single rune.
	in := &scriptReader{lines: []string{"$e\u0301"}}
	r := repl{vm: vm, in: in, out: &out, prompt: "> ", normalize: true, tokens: true}
	if err := r.run(); err != nil {
		t.Fatal(err)
	}
	want := "0-3       Character        \"$é\"\n\n"
	if out.String() != want {
		t.Errorf("wrong output: have %q, want %q", out.String(), want)
	}
}

func TestCompileFile(t *testing.T) {
	var out strings.Builder
	err := compileFile(&out, "prog.st")
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("wrong error: %v", err)
	}
	if out.String() != "compile_file() not yet implemented\n" {
		t.Errorf("wrong output %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	if got := versionString(false); got != minitalk.Version {
		t.Errorf("plain version is %q, want %q", got, minitalk.Version)
	}
	colored := versionString(true)
	if colored == minitalk.Version || !strings.Contains(colored, "\x1b[") {
		t.Errorf("colored version %q has no color", colored)
	}
	var b strings.Builder
	renderVersion(&b, false)
	if b.String() != "minitalk "+minitalk.Version+"\n" {
		t.Errorf("wrong version output %q", b.String())
	}
}
