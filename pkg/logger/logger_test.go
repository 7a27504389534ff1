package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud", Output: "stdout"})
	require.Error(t, err)
}

func TestFieldsAreWritten(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.DebugLevel).With(String("component", "board"))

	l.Warn("session failed",
		String("ticker", "ZZZZ"),
		Int("rows", 2),
		Duration("duration_ms", 1500*time.Millisecond),
		Bool("stale", false),
		Error(errors.New("no data")),
	)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "warn", got["level"])
	require.Equal(t, "session failed", got["message"])
	require.Equal(t, "board", got["component"])
	require.Equal(t, "ZZZZ", got["ticker"])
	require.EqualValues(t, 2, got["rows"])
	require.EqualValues(t, 1500, got["duration_ms"])
	require.Equal(t, false, got["stale"])
	require.Equal(t, "no data", got["error"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.InfoLevel)
	l.Debug("hidden")
	require.Zero(t, buf.Len())
	l.Info("shown")
	require.NotZero(t, buf.Len())
}

func TestNopDiscards(t *testing.T) {
	Nop().Error("nothing", Error(nil))
}
