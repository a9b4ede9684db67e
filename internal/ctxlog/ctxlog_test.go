package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	logger, ok := New(&buf, "info")
	require.True(t, ok)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, ok := New(&buf, " WARN ")
	require.True(t, ok)

	logger.Info("hidden")
	logger.Warn("shown", "path", "a.js")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=a.js")

	_, ok = New(&buf, "verbose")
	assert.False(t, ok)
}
