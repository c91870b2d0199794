package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/sigcache/config"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := config.DefaultConfig()
	assert.NotNil(cfg.SignatureCache)
	assert.NotNil(cfg.Instrumentation)

	assert.EqualValues(config.DefaultSigCacheSize, cfg.SignatureCache.MaxSigCacheSize)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal(config.LogFormatPlain, cfg.LogFormat)
}

func TestConfigValidateBasic(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.ValidateBasic())

	// tamper with log_format
	cfg.LogFormat = "xml"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownLogFormat)
	cfg.LogFormat = config.LogFormatJSON

	// a disabled cache is a valid configuration, not an error
	cfg.SignatureCache.MaxSigCacheSize = 0
	require.NoError(t, cfg.ValidateBasic())
	cfg.SignatureCache.MaxSigCacheSize = -7
	require.NoError(t, cfg.ValidateBasic())

	cfg.Instrumentation.MaxOpenConnections = -1
	err := cfg.ValidateBasic()
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrNegativeMaxOpenConnections)
	require.Contains(t, err.Error(), "[instrumentation]")
	cfg.Instrumentation.MaxOpenConnections = 3

	cfg.Instrumentation.Prometheus = true
	cfg.Instrumentation.Namespace = ""
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrEmptyNamespace)
}

func TestTestConfig(t *testing.T) {
	cfg := config.TestConfig()
	require.NoError(t, cfg.ValidateBasic())
	assert.EqualValues(t, 1, cfg.SignatureCache.MaxSigCacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSetRoot(t *testing.T) {
	cfg := config.DefaultConfig().SetRoot("/foo")
	assert.Equal(t, "/foo", cfg.RootDir)
}

func TestInstrumentationPrometheusEnabled(t *testing.T) {
	cfg := config.DefaultInstrumentationConfig()
	assert.False(t, cfg.IsPrometheusEnabled())

	cfg.Prometheus = true
	assert.True(t, cfg.IsPrometheusEnabled())

	cfg.PrometheusListenAddr = ""
	assert.False(t, cfg.IsPrometheusEnabled())
}
