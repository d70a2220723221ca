package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.MaxEntries != 100 {
		t.Errorf("cache max entries = %d", cfg.Cache.MaxEntries)
	}
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.Observability.LogLevel)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9090"
  max_concurrent: 8
  read_timeout: 5s
cache:
  max_entries: 50
observability:
  service_name: relativity-test
  log_level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MaxConcurrent != 8 {
		t.Errorf("max_concurrent = %d", cfg.Server.MaxConcurrent)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read_timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Cache.MaxEntries != 50 {
		t.Errorf("cache max_entries = %d", cfg.Cache.MaxEntries)
	}
	if cfg.Observability.ServiceName != "relativity-test" {
		t.Errorf("service_name = %q", cfg.Observability.ServiceName)
	}
	// Fields the file omits keep their defaults.
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("write_timeout = %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RELATIVITY_ADDR", ":7070")
	t.Setenv("RELATIVITY_CACHE_MAX_ENTRIES", "25")
	t.Setenv("RELATIVITY_LOG_LEVEL", "error")
	t.Setenv("RELATIVITY_METRICS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.MaxEntries != 25 {
		t.Errorf("cache max_entries = %d", cfg.Cache.MaxEntries)
	}
	if cfg.Observability.LogLevel != "error" {
		t.Errorf("log level = %q", cfg.Observability.LogLevel)
	}
	if cfg.Observability.Metrics {
		t.Error("metrics still enabled")
	}
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("RELATIVITY_MAX_CONCURRENT", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.MaxConcurrent != 64 {
		t.Errorf("max_concurrent = %d, want default 64", cfg.Server.MaxConcurrent)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("want parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"negative concurrency", func(c *Config) { c.Server.MaxConcurrent = -1 }, true},
		{"sample pct too high", func(c *Config) { c.Observability.SamplePct = 1.5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestObserveConversion(t *testing.T) {
	cfg := Default()
	cfg.Observability.Tracing = true
	cfg.Observability.TraceExport = "stdout"
	cfg.Observability.SamplePct = 0.5

	oc := cfg.Observe()
	if oc.ServiceName != "relativity" {
		t.Errorf("service name = %q", oc.ServiceName)
	}
	if !oc.Tracing.Enabled || oc.Tracing.Exporter != "stdout" || oc.Tracing.SamplePct != 0.5 {
		t.Errorf("tracing = %+v", oc.Tracing)
	}
	if err := oc.Validate(); err != nil {
		t.Errorf("converted config invalid: %v", err)
	}
}
