package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))

	assert.True(t, ValidLevel("Info"))
	assert.False(t, ValidLevel("chatty"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", JSON: true, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "bet", 40)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(40), entry["bet"])
}

func TestNewConsoleNoColor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "debug", NoColor: true, Output: &buf})

	logger.Debug("ranking", "category", "Pair")
	assert.Contains(t, buf.String(), "ranking")
	assert.Contains(t, buf.String(), "category=Pair")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestDiscard(t *testing.T) {
	var l Logger = Discard()
	l.Error("nothing to see")
}
