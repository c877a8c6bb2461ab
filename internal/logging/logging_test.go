package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"Warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ParseLevel(input), "input %q", input)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "json")

	logger.Info().Msg("dropped")
	logger.Warn().Str("board", "abc123").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc123", entry["board"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "console")

	logger.Debug().Str("ship", "Carrier").Msg("place ship")

	out := buf.String()
	assert.Contains(t, out, "place ship")
	assert.Contains(t, out, "ship=")
	assert.Contains(t, out, "Carrier")
}
