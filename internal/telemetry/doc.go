// Package telemetry provides OpenTelemetry initialization and helpers
// for tracing and log export across the pantry service.
//
// Traces and logs are exported over OTLP HTTP. The endpoint may carry a
// base path (Grafana Cloud style "/otlp") which is used as the URL prefix.
package telemetry
