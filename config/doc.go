// Package config loads the service configuration from an optional YAML
// file, then applies RELATIVITY_* environment overrides on top. Missing
// file and missing variables both fall back to defaults, so a bare
// binary starts with a working configuration.
package config
