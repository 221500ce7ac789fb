package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/tsfy"
)

// Reporter prints one status line per target as generation progresses.
// It implements tsfy.Progress.
type Reporter struct {
	w         io.Writer
	errW      io.Writer
	useColors bool
}

// NewReporter creates a reporter writing status lines to w and errors to errW.
func NewReporter(w, errW io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, errW: errW, useColors: useColors}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// Generating prints the header for the selected preset.
func (r *Reporter) Generating(preset string) {
	header := fmt.Sprintf("Generating configs for: %s...", strings.ToUpper(preset))
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, header, r.useColors))
	fmt.Fprintln(r.w)
}

// FileResult prints the status line for a single target.
func (r *Reporter) FileResult(o tsfy.FileOutcome) {
	switch o.Status {
	case tsfy.StatusCreated:
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, fmt.Sprintf("✓ %s created.", o.Name), r.useColors))
	case tsfy.StatusSkipped:
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, fmt.Sprintf("⚠ %s already exists. Skipping.", o.Name), r.useColors))
	case tsfy.StatusFailed:
		fmt.Fprintln(r.errW, RenderStyle(StyleRed, fmt.Sprintf("✗ %s could not be written: %v", o.Name, o.Err), r.useColors))
	}
}

// BootstrapStart announces the manifest init command before it takes over
// the terminal.
func (r *Reporter) BootstrapStart(command string) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Running %s...\n", command)
}

// BootstrapResult prints the outcome of the manifest bootstrap.
func (r *Reporter) BootstrapResult(o tsfy.BootstrapOutcome) {
	switch {
	case o.Skipped:
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleGray, fmt.Sprintf("ℹ %s already exists. Skipping %s.", o.Manifest, o.Command), r.useColors))
	case o.Failed():
		fmt.Fprintln(r.errW, RenderStyle(StyleRed, fmt.Sprintf("✗ Manifest init failed: %v", o.Err), r.useColors))
	default:
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, fmt.Sprintf("✓ %s completed.", o.Command), r.useColors))
	}
}

// Finished prints closing notices.
func (r *Reporter) Finished(result *tsfy.GenerateResult) {
	if result.Experimental {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleMagenta,
			"Experimental decorators enabled (experimentalDecorators, emitDecoratorMetadata).", r.useColors))
	}
}
