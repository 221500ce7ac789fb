package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tsfy"
	"github.com/yacobolo/tsfy/internal/tsconfig"
)

func TestReporterStatusLines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, false)

	r.Generating("vite")
	r.FileResult(tsfy.FileOutcome{Name: "tsconfig.json", Status: tsfy.StatusCreated})
	r.FileResult(tsfy.FileOutcome{Name: "tsconfig.app.json", Status: tsfy.StatusSkipped})
	r.FileResult(tsfy.FileOutcome{Name: "tsconfig.node.json", Status: tsfy.StatusFailed, Err: errors.New("disk full")})
	r.Finished(&tsfy.GenerateResult{Preset: "vite", Experimental: true})

	want := "Generating configs for: VITE...\n\n" +
		"✓ tsconfig.json created.\n" +
		"⚠ tsconfig.app.json already exists. Skipping.\n" +
		"\nExperimental decorators enabled (experimentalDecorators, emitDecoratorMetadata).\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, "✗ tsconfig.node.json could not be written: disk full\n", errOut.String())
}

func TestReporterBootstrap(t *testing.T) {
	tests := []struct {
		name    string
		outcome tsfy.BootstrapOutcome
		wantOut string
		wantErr string
	}{
		{
			name:    "skipped",
			outcome: tsfy.BootstrapOutcome{Manifest: "package.json", Command: "npm init -y", Skipped: true},
			wantOut: "\nℹ package.json already exists. Skipping npm init -y.\n",
		},
		{
			name:    "failed",
			outcome: tsfy.BootstrapOutcome{Manifest: "package.json", Command: "npm init -y", Err: errors.New("exit status 1")},
			wantErr: "✗ Manifest init failed: exit status 1\n",
		},
		{
			name:    "ran",
			outcome: tsfy.BootstrapOutcome{Manifest: "package.json", Command: "npm init -y"},
			wantOut: "✓ npm init -y completed.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			NewReporter(&out, &errOut, false).BootstrapResult(tt.outcome)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErr, errOut.String())
		})
	}
}

func TestReporterNoExperimentalNotice(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, &out, false).Finished(&tsfy.GenerateResult{Preset: "node"})
	assert.Empty(t, out.String())
}

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "")
	assert.True(t, ShouldUseColors(false))
}

func TestPrintUsage(t *testing.T) {
	table := tsconfig.NewTable(tsconfig.Flags{}, tsconfig.CompatV1)

	var buf bytes.Buffer
	PrintUsage(&buf, Usage{
		Command:    "tsfy",
		Problem:    `unknown preset "angular"`,
		Presets:    table.Entries(),
		FlagUsages: "  -y, --init   Run the manifest init command\n",
	}, false)

	out := buf.String()
	assert.Contains(t, out, `✗ Error: unknown preset "angular"`)
	assert.Contains(t, out, "Usage: tsfy <preset> [options]")
	for _, name := range table.Names() {
		assert.Contains(t, out, "  "+name)
	}
	assert.Contains(t, out, "(Next.js - creates 1 file)")
	assert.Contains(t, out, "Options:\n  -y, --init")
}

func TestWriteJSON(t *testing.T) {
	result := &tsfy.GenerateResult{
		Preset:       "vite",
		Kind:         "multi",
		Experimental: true,
		Files: []tsfy.FileOutcome{
			{Name: "tsconfig.json", Status: tsfy.StatusCreated},
			{Name: "tsconfig.app.json", Status: tsfy.StatusSkipped},
			{Name: "tsconfig.node.json", Status: tsfy.StatusFailed, Err: errors.New("denied")},
		},
		Bootstrap: &tsfy.BootstrapOutcome{Manifest: "package.json", Command: "npm init -y", Err: errors.New("exit status 1")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.Equal(t, "vite", output.Preset)
	assert.Equal(t, "multi", output.Kind)
	assert.True(t, output.Experimental)
	assert.Equal(t, JSONSummary{Created: 1, Skipped: 1, Failed: 1}, output.Summary)
	require.Len(t, output.Files, 3)
	assert.Equal(t, "denied", output.Files[2].Error)
	require.NotNil(t, output.Bootstrap)
	assert.Equal(t, "failed", output.Bootstrap.Status)
	assert.Equal(t, "exit status 1", output.Bootstrap.Error)
}

func TestWriteJSONWithoutBootstrap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &tsfy.GenerateResult{Preset: "node", Kind: "single"}))
	assert.NotContains(t, buf.String(), "bootstrap")
}
