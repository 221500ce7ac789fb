package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureDefaultLevelHidesDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("writer")
	l.Debug().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "writer")
}

func TestConfigureVerbose(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Verbose: true, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("bootstrap")
	l.Debug().Str("file", "package.json").Msg("checking manifest")

	out := buf.String()
	assert.Contains(t, out, "checking manifest")
	assert.Contains(t, out, "file=package.json")
}

func TestConfigureLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	Configure(Config{Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Warn().Msg("dropped")
	l.Error().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
