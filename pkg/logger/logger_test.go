package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	err := Init(&Config{Level: "info", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())

	err = Init(&Config{Level: "info", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(&Config{Level: "chatty"})
	require.Error(t, err)
}

func TestNew_DefaultsToWarn(t *testing.T) {
	l, err := New(&Config{Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "warn"}))

	SetLevel(zerolog.TraceLevel)
	assert.Equal(t, zerolog.TraceLevel, GetLogger().GetLevel())
	assert.Equal(t, zerolog.TraceLevel, WithComponent("cli").GetLevel())
}

func TestWithComponent(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "warn"}))

	componentLogger := WithComponent("backend")
	assert.NotEqual(t, zerolog.Disabled, componentLogger.GetLevel())
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("WINCAMCFG_LOG_LEVEL", "")
	t.Setenv("WINCAMCFG_LOG_FORMAT", "")
	t.Setenv("DEBUG", "")

	config := DefaultConfig()
	assert.Equal(t, "warn", config.Level)
	assert.Equal(t, "stderr", config.Output)
	assert.Equal(t, "console", config.Format)
	assert.False(t, config.Debug)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WINCAMCFG_LOG_LEVEL", "debug")
	t.Setenv("WINCAMCFG_LOG_FORMAT", "json")
	t.Setenv("DEBUG", "yes")

	config := &Config{Level: "error", Format: "console", Output: "stderr"}
	config.ApplyEnv()

	assert.Equal(t, "debug", config.Level)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "stderr", config.Output)
	assert.True(t, config.Debug)
}

func TestNewTestLogger(t *testing.T) {
	l := NewTestLogger()
	require.NotNil(t, l)

	l.Info().Msg("discarded")
	cl := l.WithComponent("test")
	cl.Debug().Msg("discarded")
}
