package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/minitalk"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file...",
	Short: "Tokenize minitalk source files",
	Long:  `Tokenize breaks minitalk source into its tokens. Use - to read standard input.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("whitespace", false, "include whitespace tokens")
	tokenizeCmd.Flags().Int("jobs", 0, "maximum files to tokenize at once (0 = GOMAXPROCS)")
}

// tokenRecord is the serialized form of a token.
type tokenRecord struct {
	Kind string        `json:"kind" msgpack:"kind"`
	Text string        `json:"text" msgpack:"text"`
	Span minitalk.Span `json:"span" msgpack:"span"`
}

// tokenizeResult holds the tokens of one source.
type tokenizeResult struct {
	Path   string        `json:"path" msgpack:"path"`
	Tokens []tokenRecord `json:"tokens" msgpack:"tokens"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	ws, err := cmd.Flags().GetBool("whitespace")
	if err != nil {
		return fmt.Errorf("failed to get whitespace flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	results, err := tokenizeFiles(cmd.Context(), args, cmd.InOrStdin(), ws, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return writeTokens(cmd.OutOrStdout(), format, results)
}

// tokenizeFiles lexes each path concurrently. The path - names stdin.
func tokenizeFiles(ctx context.Context, paths []string, stdin io.Reader, whitespace bool, jobs int) ([]tokenizeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Results are indexed by argument position, so no lock is needed.
	results := make([]tokenizeResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var src []byte
			var err error
			if path == "-" {
				src, err = io.ReadAll(stdin)
			} else {
				src, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			l := minitalk.NewLexer(string(src))
			if err := l.Err(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			var toks []minitalk.Token
			for tok, ok := l.Next(); ok; tok, ok = l.Next() {
				toks = append(toks, tok)
			}
			results[i] = tokenizeResult{Path: path, Tokens: tokenRecords(toks, whitespace)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// tokenRecords converts tokens to their serialized form, dropping whitespace
// unless asked to keep it.
func tokenRecords(toks []minitalk.Token, whitespace bool) []tokenRecord {
	r := make([]tokenRecord, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == minitalk.WhitespaceToken && !whitespace {
			continue
		}
		r = append(r, tokenRecord{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span})
	}
	return r
}

func writeTokens(w io.Writer, format string, results []tokenizeResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(results)
	}
	for _, r := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "%s:\n", r.Path); err != nil {
				return err
			}
		}
		if err := formatTokensPretty(w, r.Tokens); err != nil {
			return err
		}
	}
	return nil
}

// formatTokensPretty writes one token per line.
func formatTokensPretty(w io.Writer, toks []tokenRecord) error {
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%-9s %-16s %q\n", tok.Span, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
