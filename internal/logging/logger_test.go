package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "splitgrid.log")
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, Path: path},
	)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("pane_id", "pane-1").Msg("pane opened")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pane_id":"pane-1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := newWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), base)
	ctx = WithComponent(ctx, "termhost")
	ctx = WithWorkspaceID(ctx, "main")
	ctx = WithPaneID(ctx, "pane-2")
	FromContext(ctx).Info().Msg("focused")

	out := buf.String()
	assert.Contains(t, out, `"component":"termhost"`)
	assert.Contains(t, out, `"workspace_id":"main"`)
	assert.Contains(t, out, `"pane_id":"pane-2"`)
}

func TestFromContext_WithoutLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}
