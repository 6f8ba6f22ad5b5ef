package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zephyrtronium/minitalk"
)

func TestTokenizeFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.st")
	b := filepath.Join(dir, "b.st")
	writeFile(t, a, "16rFF + 1")
	writeFile(t, b, "'it''s' $x")
	stdin := strings.NewReader("x := 2")
	results, err := tokenizeFiles(context.Background(), []string{a, "-", b}, stdin, false, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []tokenizeResult{
		{Path: a, Tokens: []tokenRecord{
			{Kind: "RadixNumber", Text: "16rFF", Span: minitalk.Span{Start: 0, End: 5}},
			{Kind: "Plus", Text: "+", Span: minitalk.Span{Start: 6, End: 7}},
			{Kind: "Integer", Text: "1", Span: minitalk.Span{Start: 8, End: 9}},
		}},
		{Path: "-", Tokens: []tokenRecord{
			{Kind: "Identifier", Text: "x", Span: minitalk.Span{Start: 0, End: 1}},
			{Kind: "Assignment", Text: ":=", Span: minitalk.Span{Start: 2, End: 4}},
			{Kind: "Integer", Text: "2", Span: minitalk.Span{Start: 5, End: 6}},
		}},
		{Path: b, Tokens: []tokenRecord{
			{Kind: "String", Text: "'it''s'", Span: minitalk.Span{Start: 0, End: 7}},
			{Kind: "Character", Text: "$x", Span: minitalk.Span{Start: 8, End: 10}},
		}},
	}
	if len(results) != len(want) {
		t.Fatalf("wrong number of results: have %d, want %d", len(results), len(want))
	}
	for i := range want {
		if results[i].Path != want[i].Path {
			t.Errorf("result %d has wrong path %q", i, results[i].Path)
		}
		if len(results[i].Tokens) != len(want[i].Tokens) {
			t.Errorf("result %d has wrong tokens: %v", i, results[i].Tokens)
			continue
		}
		for j, tok := range want[i].Tokens {
			if results[i].Tokens[j] != tok {
				t.Errorf("result %d token %d: have %+v, want %+v", i, j, results[i].Tokens[j], tok)
			}
		}
	}
}

func TestTokenizeMissing(t *testing.T) {
	_, err := tokenizeFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.st")}, nil, false, 0)
	if err == nil || !strings.Contains(err.Error(), "nope.st") {
		t.Errorf("wrong error: %v", err)
	}
}

func TestTokenRecordsWhitespace(t *testing.T) {
	toks := minitalk.Lex("1 +\t2")
	if got := tokenRecords(toks, false); len(got) != 3 {
		t.Errorf("without whitespace: %v", got)
	}
	got := tokenRecords(toks, true)
	if len(got) != 5 || got[1].Kind != "Whitespace" || got[3].Text != "\t" {
		t.Errorf("with whitespace: %v", got)
	}
}

func TestWriteTokens(t *testing.T) {
	results := []tokenizeResult{{Path: "a.st", Tokens: tokenRecords(minitalk.Lex("3 * 4"), false)}}
	t.Run("Pretty", func(t *testing.T) {
		var b bytes.Buffer
		if err := writeTokens(&b, "pretty", results); err != nil {
			t.Fatal(err)
		}
		want := "0-1       Integer          \"3\"\n2-3       Star             \"*\"\n4-5       Integer          \"4\"\n"
		if b.String() != want {
			t.Errorf("wrong output:\n%s\nwant:\n%s", b.String(), want)
		}
	})
	t.Run("PrettyMany", func(t *testing.T) {
		var b bytes.Buffer
		two := append(results, tokenizeResult{Path: "b.st"})
		if err := writeTokens(&b, "pretty", two); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(b.String(), "a.st:\n") || !strings.HasSuffix(b.String(), "b.st:\n") {
			t.Errorf("missing file headers:\n%s", b.String())
		}
	})
	t.Run("JSON", func(t *testing.T) {
		var b bytes.Buffer
		if err := writeTokens(&b, "json", results); err != nil {
			t.Fatal(err)
		}
		var v []map[string]interface{}
		if err := json.Unmarshal(b.Bytes(), &v); err != nil {
			t.Fatal(err)
		}
		toks := v[0]["tokens"].([]interface{})
		first := toks[0].(map[string]interface{})
		if first["kind"] != "Integer" || first["text"] != "3" {
			t.Errorf("wrong first token %v", first)
		}
		span := first["span"].(map[string]interface{})
		if span["start"] != 0.0 || span["end"] != 1.0 {
			t.Errorf("wrong span %v", span)
		}
	})
	t.Run("Msgpack", func(t *testing.T) {
		var b bytes.Buffer
		if err := writeTokens(&b, "msgpack", results); err != nil {
			t.Fatal(err)
		}
		var v []tokenizeResult
		if err := msgpack.Unmarshal(b.Bytes(), &v); err != nil {
			t.Fatal(err)
		}
		if len(v) != 1 || v[0].Path != "a.st" || len(v[0].Tokens) != 3 || v[0].Tokens[1] != results[0].Tokens[1] {
			t.Errorf("wrong decoded results %+v", v)
		}
	})
}
