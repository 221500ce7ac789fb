package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/tsfy/internal/tsconfig"
)

// Usage describes what PrintUsage renders.
type Usage struct {
	Command    string                // binary name
	Problem    string                // why usage is shown; empty for plain help
	Presets    []tsconfig.Descriptor // valid presets in table order
	FlagUsages string                // pre-formatted flag list
}

// PrintUsage prints the help text listing every preset and flag.
func PrintUsage(w io.Writer, u Usage, useColors bool) {
	if u.Problem != "" {
		fmt.Fprintln(w, RenderStyle(StyleRed, "✗ Error: "+u.Problem, useColors))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Usage: %s <preset> [options]\n", u.Command)

	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderStyle(StyleCyan, "Presets:", useColors))
	width := 0
	for _, p := range u.Presets {
		width = max(width, len(p.Name))
	}
	for _, p := range u.Presets {
		fmt.Fprintf(w, "  %-*s  %s\n", width, p.Name, RenderStyle(StyleGray, "("+p.Description+")", useColors))
	}

	if flags := strings.TrimRight(u.FlagUsages, "\n"); flags != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderStyle(StyleCyan, "Options:", useColors))
		fmt.Fprintln(w, flags)
	}
}
