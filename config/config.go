package config

// Config defines the top-level configuration for a process embedding the
// signature cache.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	// Options for services
	SignatureCache  *SignatureCacheConfig  `mapstructure:"signature_cache"`
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		SignatureCache:  DefaultSignatureCacheConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing.
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		SignatureCache:  TestSignatureCacheConfig(),
		Instrumentation: TestInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all config structs.
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Instrumentation.ValidateBasic(); err != nil {
		return ErrInSection{Section: "instrumentation", Err: err}
	}
	return nil
}

// -----------------------------------------------------------------------------
// BaseConfig

const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// BaseConfig defines the base configuration.
type BaseConfig struct {
	// The root directory for all data.
	RootDir string `mapstructure:"home"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel:  "info",
		LogFormat: LogFormatPlain,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.LogLevel = "debug"
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}
	return nil
}

// -----------------------------------------------------------------------------
// SignatureCacheConfig

// DefaultSigCacheSize is the default bound, in MiB, on the signature
// verification cache.
const DefaultSigCacheSize = 40

// SignatureCacheConfig defines the configuration for the signature
// verification cache.
type SignatureCacheConfig struct {
	// Maximum estimated footprint of the cache in MiB. Zero or negative
	// disables caching of new verification results; lookups and removals
	// stay functional.
	MaxSigCacheSize int64 `mapstructure:"max_sig_cache_size"`
}

// DefaultSignatureCacheConfig returns a default signature cache
// configuration.
func DefaultSignatureCacheConfig() *SignatureCacheConfig {
	return &SignatureCacheConfig{
		MaxSigCacheSize: DefaultSigCacheSize,
	}
}

// TestSignatureCacheConfig returns a signature cache configuration for
// testing.
func TestSignatureCacheConfig() *SignatureCacheConfig {
	cfg := DefaultSignatureCacheConfig()
	cfg.MaxSigCacheSize = 1
	return cfg
}

// -----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`

	// Maximum number of simultaneous connections.
	// If you want to accept a larger number than the default, make sure
	// you increase your OS limits.
	// 0 - unlimited.
	MaxOpenConnections int `mapstructure:"max_open_connections"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace"`
}

// DefaultInstrumentationConfig returns a default instrumentation
// configuration.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus:           false,
		PrometheusListenAddr: ":26660",
		MaxOpenConnections:   3,
		Namespace:            "ledgercore",
	}
}

// TestInstrumentationConfig returns an instrumentation configuration for
// testing.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.MaxOpenConnections < 0 {
		return ErrNegativeMaxOpenConnections
	}
	if cfg.Prometheus && cfg.Namespace == "" {
		return ErrEmptyNamespace
	}
	return nil
}

// IsPrometheusEnabled reports whether Prometheus metrics are configured on.
func (cfg *InstrumentationConfig) IsPrometheusEnabled() bool {
	return cfg.Prometheus && cfg.PrometheusListenAddr != ""
}
