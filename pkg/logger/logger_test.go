package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Info("contact added", ContactName("John"), Command("add"), Err(errors.New("boom")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contact added", entry["msg"])
	assert.Equal(t, "John", entry["contact"])
	assert.Equal(t, "add", entry["command"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Level: "warn", Format: "text", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_RejectsUnknownOptions(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, _, err = New(Options{Level: "info", Format: "xml", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestNew_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	log, closer, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Info("first")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("WARNING")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestContextRoundTrip(t *testing.T) {
	log := Discard()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestAttrHelpers(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{RequestID("r1"), "request_id", "r1"},
		{SessionID("s1"), "session_id", "s1"},
		{Command("add"), "command", "add"},
		{ContactName("John"), "contact", "John"},
		{Component("console"), "component", "console"},
		{Operation("save"), "operation", "save"},
		{Path("/tmp/book.json"), "path", "/tmp/book.json"},
		{Count("contacts", 3), "contacts", int64(3)},
		{Latency(time.Second), "latency", time.Second},
		{Outcome("ok"), "outcome", "ok"},
		{Any("features", []string{"a"}), "features", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
