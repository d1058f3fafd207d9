package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ease/internal/config"
	"github.com/roach88/ease/internal/logger"
	"github.com/roach88/ease/internal/testutil"
)

func TestCloseQuietly_WarnsOnFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	closeQuietly(func() error { return errors.New("checkpoint failed") })
	assert.Contains(t, buf.String(), `level=WARN msg="close log sink" error="checkpoint failed"`)

	buf.Reset()
	closeQuietly(func() error { return nil })
	assert.Empty(t, buf.String())
}

func TestNewSink_SlogIgnoresDefaultLevel(t *testing.T) {
	prev := slog.Default()
	var defaultOut bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&defaultOut, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	s, closeFn, err := newSink(config.SinkConfig{Kind: config.SinkSlog}, &out)
	require.NoError(t, err)
	defer closeQuietly(closeFn)

	s.Write(logger.Entry{Seq: 1, Level: logger.LevelDebug, Message: "cache miss"})

	assert.Contains(t, out.String(), `level=DEBUG msg="cache miss"`)
	assert.Empty(t, defaultOut.String())
}

func TestNewSink_SQLiteClosesArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ease.db")

	var out bytes.Buffer
	s, closeFn, err := newSink(config.SinkConfig{Kind: config.SinkSQLite, Path: path}, &out)
	require.NoError(t, err)

	l := logger.New(testutil.DebugEnv(), s)
	l.Error("archived")

	require.NoError(t, closeFn())
	assert.Contains(t, out.String(), logger.ErrorPrefix+"archived\n")
}

func TestNewSink_UnknownKind(t *testing.T) {
	_, _, err := newSink(config.SinkConfig{Kind: "syslog"}, &bytes.Buffer{})
	require.Error(t, err)
}
