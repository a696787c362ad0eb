package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.NotNil(t, cfg.Output)
	assert.False(t, cfg.Pretty)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "warn", Output: &buf})

	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestEventFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "debug", Output: &buf})

	l.With().Str("curve", "toy").Logger().DebugEvent().
		Stringer("x", big.NewInt(17)).
		Int("bits", 5).
		Err(errors.New("boom")).
		Msg("operation rejected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "toy", entry["curve"])
	assert.Equal(t, "17", entry["x"])
	assert.Equal(t, float64(5), entry["bits"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "operation rejected", entry["message"])
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	l.DebugEvent().Str("k", "v").Msg("nothing")
}

func TestSetGlobalLogger(t *testing.T) {
	prev := Global()
	defer SetGlobalLogger(prev)

	l := New(nil)
	SetGlobalLogger(l)
	assert.Same(t, l, Global())

	SetGlobalLogger(nil)
	assert.Same(t, l, Global())
}
