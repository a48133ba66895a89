package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"pdfcheck/internal/config"
	"pdfcheck/internal/logging"
)

func TestNew_Console(t *testing.T) {
	logger, err := logging.New(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	logger, err := logging.New(config.LogConfig{Level: "WARN", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := logging.New(config.LogConfig{Level: "chatty"})
	assert.Nil(t, logger)
	assert.Error(t, err)
}
