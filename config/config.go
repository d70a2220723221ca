package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spacetimeops/relativity/cache"
	"github.com/spacetimeops/relativity/observe"
)

// Config is the full service configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Cache         CacheConfig         `yaml:"cache"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig tunes the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`

	// MaxConcurrent bounds in-flight calculations; 0 means unbounded.
	MaxConcurrent int64 `yaml:"max_concurrent"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CacheConfig tunes the memoization store.
type CacheConfig struct {
	// MaxEntries is the capacity bound; values <= 0 use the built-in
	// default.
	MaxEntries int `yaml:"max_entries"`
}

// ObservabilityConfig mirrors observe.Config in YAML form.
type ObservabilityConfig struct {
	ServiceName string  `yaml:"service_name"`
	Version     string  `yaml:"version"`
	Tracing     bool    `yaml:"tracing"`
	TraceExport string  `yaml:"trace_exporter"`
	SamplePct   float64 `yaml:"sample_pct"`
	Metrics     bool    `yaml:"metrics"`
	MetricsExpt string  `yaml:"metrics_exporter"`
	Logging     bool    `yaml:"logging"`
	LogLevel    string  `yaml:"log_level"`
}

// Default returns the configuration a bare binary starts with.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			MaxConcurrent:   64,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			MaxEntries: cache.DefaultMaxEntries,
		},
		Observability: ObservabilityConfig{
			ServiceName: "relativity",
			Version:     "dev",
			Logging:     true,
			LogLevel:    "info",
			Metrics:     true,
			MetricsExpt: "prometheus",
		},
	}
}

// Load reads the configuration: defaults, then the YAML file at path if
// it exists, then environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks bounds the YAML schema cannot express.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server addr is required")
	}
	if c.Server.MaxConcurrent < 0 {
		return fmt.Errorf("config: max_concurrent must be >= 0, got %d", c.Server.MaxConcurrent)
	}
	if c.Observability.SamplePct < 0 || c.Observability.SamplePct > 1.0 {
		return fmt.Errorf("config: sample_pct must be between 0.0 and 1.0, got %f", c.Observability.SamplePct)
	}
	return nil
}

// Observe converts the YAML form to the telemetry configuration.
func (c *Config) Observe() observe.Config {
	return observe.Config{
		ServiceName: c.Observability.ServiceName,
		Version:     c.Observability.Version,
		Tracing: observe.TracingConfig{
			Enabled:   c.Observability.Tracing,
			Exporter:  c.Observability.TraceExport,
			SamplePct: c.Observability.SamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  c.Observability.Metrics,
			Exporter: c.Observability.MetricsExpt,
		},
		Logging: observe.LoggingConfig{
			Enabled: c.Observability.Logging,
			Level:   c.Observability.LogLevel,
		},
	}
}

// CachePolicy converts the YAML form to the store policy.
func (c *Config) CachePolicy() cache.Policy {
	return cache.Policy{MaxEntries: c.Cache.MaxEntries}
}

// applyEnv overlays RELATIVITY_* variables. Unset and empty variables
// leave the current value alone; unparsable numerics are ignored rather
// than failing startup.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "RELATIVITY_ADDR")
	setInt64(&cfg.Server.MaxConcurrent, "RELATIVITY_MAX_CONCURRENT")
	setInt(&cfg.Cache.MaxEntries, "RELATIVITY_CACHE_MAX_ENTRIES")

	setString(&cfg.Observability.ServiceName, "RELATIVITY_SERVICE_NAME")
	setString(&cfg.Observability.LogLevel, "RELATIVITY_LOG_LEVEL")
	setBool(&cfg.Observability.Tracing, "RELATIVITY_TRACING")
	setString(&cfg.Observability.TraceExport, "RELATIVITY_TRACE_EXPORTER")
	setBool(&cfg.Observability.Metrics, "RELATIVITY_METRICS")
	setString(&cfg.Observability.MetricsExpt, "RELATIVITY_METRICS_EXPORTER")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
