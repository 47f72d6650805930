package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug")

	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}

func TestComponent_PrefersContextLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	ctx := ContextWithLogger(context.Background(), New(&scoped, "info"))

	Component(ctx, New(&base, "info"), "effects", "get_events", "attempt", 1).Info("done")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "component=effects")
	assert.Contains(t, scoped.String(), "operation=get_events")
	assert.Contains(t, scoped.String(), "attempt=1")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nope"))
}
