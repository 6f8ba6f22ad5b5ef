package main

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/minitalk"
)

func TestPrettyReporter(t *testing.T) {
	cases := map[string]struct {
		src     string
		excerpt bool
		want    string
	}{
		"Plain": {
			src:  "5 + 2r3",
			want: "Invalid number '3' in base 2\n",
		},
		"Excerpt": {
			src:     "5 + 2r3",
			excerpt: true,
			want:    "Invalid number '3' in base 2\n    5 + 2r3\n        ^^^ radix-digits\n",
		},
		"Wide": {
			src:     "'日本' 37r1",
			excerpt: true,
			want:    "Base 37 is out of range. It must be between 2 and 36.\n    '日本' 37r1\n           ^^^^ radix-range\n",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var b strings.Builder
			vm := minitalk.NewVM()
			vm.Reporter = newPrettyReporter(&b, false, c.excerpt)
			vm.DoString(c.src)
			if b.String() != c.want {
				t.Errorf("wrong output:\n%q\nwant:\n%q", b.String(), c.want)
			}
		})
	}
}

func TestPrettyReporterColor(t *testing.T) {
	var b strings.Builder
	r := newPrettyReporter(&b, true, false)
	r.Report(minitalk.Diagnostic{Severity: minitalk.SevError, Code: minitalk.CodeNoMethod, Message: "No 'add' function found"})
	if !strings.Contains(b.String(), "\x1b[") || !strings.Contains(b.String(), "No 'add' function found") {
		t.Errorf("wrong colored output %q", b.String())
	}
}

func TestColorMode(t *testing.T) {
	if !colorMode("on", nil) {
		t.Error("on is not on")
	}
	if colorMode("off", nil) {
		t.Error("off is not off")
	}
}
