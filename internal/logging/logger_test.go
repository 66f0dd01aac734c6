package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/basicstrategy/internal/types"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))
}

func TestLogErrorGameError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.DebugLevel, "")

	err := types.WrapError(types.ErrChartInconsistency, "hard table has no verdict", errors.New("row 3"))
	LogError(logger, "lookup failed", err, "player", "9H 7C")

	out := buf.String()
	assert.Contains(t, out, "lookup failed")
	assert.Contains(t, out, "CHART_INCONSISTENCY")
	assert.Contains(t, out, "alert=true")
	assert.Contains(t, out, "row 3")
}

func TestLogErrorPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.DebugLevel, "")

	LogError(logger, "save failed", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "save failed")
	assert.Contains(t, out, "disk full")
	assert.NotContains(t, out, "alert")
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.DebugLevel, "")

	LogError(logger, "nothing", nil)
	LogError(nil, "nothing", errors.New("ignored"))

	assert.Empty(t, buf.String())
}
