package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/minitalk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the minitalk version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderVersion(cmd.OutOrStdout(), colorMode(settings.Color, os.Stdout))
		return nil
	},
}

var versionColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// versionString renders the version with each component colored.
func versionString(useColor bool) string {
	parts := strings.SplitN(minitalk.Version, ".", len(versionColors))
	for i, p := range parts {
		c := *versionColors[i]
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(p)
	}
	return strings.Join(parts, ".")
}

func renderVersion(w io.Writer, useColor bool) {
	fmt.Fprintf(w, "minitalk %s\n", versionString(useColor))
}
