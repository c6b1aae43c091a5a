package telemetry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, true)

	slog.Debug("visible at debug")
	assert.Contains(t, buf.String(), "visible at debug")
}

func TestInitLogger_InfoSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, false)

	slog.Debug("hidden")
	slog.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}
