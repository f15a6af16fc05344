package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctbnlab/goctbn/internal/logging"
)

// TestInit_TextHandler routes component-scoped records through the text
// handler at the configured level.
func TestInit_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelInfo, "text", &buf)

	log := logging.New("sampling")
	log.Info("trajectory generated", "samples", 12)
	log.Debug("suppressed")

	out := buf.String()
	assert.Contains(t, out, "component=sampling")
	assert.Contains(t, out, "trajectory generated")
	assert.Contains(t, out, "samples=12")
	assert.NotContains(t, out, "suppressed", "debug records stay below the level")
}

// TestInit_JSONHandler emits one JSON object per record.
func TestInit_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, "json", &buf)

	logging.New("structlearn").Debug("learning node", "node", 3)

	line := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(line, "{"), "json handler emits objects")
	assert.Contains(t, line, `"component":"structlearn"`)
	assert.Contains(t, line, `"node":3`)
}
