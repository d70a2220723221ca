// Package observe provides telemetry for the calculation service:
// OpenTelemetry tracing and metrics, a structured JSON logger, and a
// middleware that instruments calculation execution.
package observe
