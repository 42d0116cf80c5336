package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With(zap.String("session_id", "abc"))

	log.Info("page rendered", zap.Int("page", 2))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "page rendered", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["session_id"])
	assert.EqualValues(t, 2, entry.ContextMap()["page"])
}

func TestNewZapLoggerFallsBackToInfo(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "loud"})
	require.NotNil(t, log)
	log.Debug("dropped")
	_ = log.Sync()
}
