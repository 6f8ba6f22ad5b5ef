package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/minitalk"
)

var rootCmd = &cobra.Command{
	Use:   "minitalk [file]",
	Short: "Interactive evaluator for a small Smalltalk",
	Long: `minitalk evaluates binary arithmetic in Smalltalk notation, one line at a time.
With a file argument, it compiles the file instead.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadSettings,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// settings is the configuration in effect, after flags.
var settings = defaultConfig()

// ErrNotImplemented is returned for features that do not exist yet.
var ErrNotImplemented = errors.New("not implemented")

func main() {
	rootCmd.Version = minitalk.Version
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "configuration file (default: nearest minitalk.toml)")
	rootCmd.Flags().Bool("tokens", false, "print the tokens of each line before evaluating it")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrNotImplemented) {
			fmt.Fprintln(os.Stderr, "minitalk:", err)
		}
		os.Exit(1)
	}
}

// loadSettings reads the configuration file and applies flag overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := resolveConfig(path, wd)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cfg.Color = f.Value.String()
		if err := cfg.validate(); err != nil {
			return err
		}
	}
	settings = cfg
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return compileFile(cmd.OutOrStdout(), args[0])
	}
	tokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}
	return runREPL(settings, colorMode(settings.Color, os.Stdout), tokens)
}

// compileFile compiles a source file. There is no compiler yet.
func compileFile(w io.Writer, filename string) error {
	fmt.Fprintln(w, "compile_file() not yet implemented")
	return fmt.Errorf("compiling %s: %w", filename, ErrNotImplemented)
}
