package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZapLoggerTo(&buf, "debug")
	require.NoError(t, err)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Warn(ctx, "salary defaulted", "line", 3)
	log.With("path", "roster.csv").Error(ctx, "append failed", "err", "disk full")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "dbg")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "salary defaulted")
	assert.Contains(t, out, `"line": 3`)
	assert.Contains(t, out, `"path": "roster.csv"`)
	assert.Contains(t, out, `"err": "disk full"`)
}

func TestZapLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZapLoggerTo(&buf, "error")
	require.NoError(t, err)

	log.Info(context.Background(), "quiet")
	assert.Empty(t, buf.String())
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(BackendZap, "info", &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	l, err = New(BackendSlog, "info", &buf)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)

	_, err = New("syslog", "info", &buf)
	require.Error(t, err)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := context.Background()
	l.Info(ctx, "x")
	l.With("k", "v").Error(ctx, "y")
}
