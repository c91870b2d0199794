package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/sigcache/config"
)

func TestEnsureRoot(t *testing.T) {
	require := require.New(t)

	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(err)
	defer os.RemoveAll(tmpDir)

	config.EnsureRoot(tmpDir)

	data, err := os.ReadFile(filepath.Join(tmpDir, config.DefaultConfigDir, config.DefaultConfigFileName))
	require.NoError(err)

	assertValidConfig(t, string(data))
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-roundtrip")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := config.DefaultConfig()
	cfg.SignatureCache.MaxSigCacheSize = 128
	cfg.Instrumentation.Prometheus = true
	cfg.LogFormat = config.LogFormatJSON

	path := filepath.Join(tmpDir, "config.toml")
	config.WriteConfigFile(path, cfg)

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.EqualValues(t, 128, loaded.SignatureCache.MaxSigCacheSize)
	assert.True(t, loaded.Instrumentation.Prometheus)
	assert.Equal(t, config.LogFormatJSON, loaded.LogFormat)
	assert.Equal(t, cfg.Instrumentation.Namespace, loaded.Instrumentation.Namespace)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-invalid")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_format = \"xml\"\n"), 0o644))

	_, err = config.LoadConfigFile(path)
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrUnknownLogFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.LoadConfigFile("/does/not/exist/config.toml")
	require.Error(t, err)
}

func assertValidConfig(t *testing.T, configFile string) {
	t.Helper()
	// list of words we expect in the config
	elems := []string{
		"log_level",
		"log_format",
		"signature_cache",
		"max_sig_cache_size",
		"instrumentation",
		"prometheus",
		"namespace",
	}
	for _, e := range elems {
		assert.Contains(t, configFile, e)
	}
}
