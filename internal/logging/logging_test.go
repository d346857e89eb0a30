package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logger.LevelWarning)
	ctx := logger.CtxWithLogger(context.Background(), l)

	logger.Debugf(ctx, "hidden %d", 1)
	logger.Warnf(ctx, "shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
}

func TestAttach_SetsContextLogger(t *testing.T) {
	orig := logger.Default
	defer func() { logger.Default = orig }()

	var buf bytes.Buffer
	l := New(&buf, logger.LevelDebug)
	ctx := Attach(context.Background(), l)

	logger.Debugf(ctx, "via ctx")
	assert.Contains(t, buf.String(), "via ctx")

	logger.Debugf(context.Background(), "via default")
	assert.Contains(t, buf.String(), "via default")
}
