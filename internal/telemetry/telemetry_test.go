package telemetry

import (
	"context"
	"testing"
)

func TestInitTelemetry(t *testing.T) {
	// Empty endpoint still builds exporters; nothing is sent until spans end.
	shutdown, err := InitTelemetry(context.Background(), "test-service", "v1.0.0", "test", "", nil)
	if err != nil {
		t.Fatalf("InitTelemetry failed: %v", err)
	}
	if shutdown != nil {
		defer shutdown(context.Background())
	}
}

func TestTracer(t *testing.T) {
	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("Tracer returned nil")
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     otlpTarget
	}{
		{
			name:     "bare host",
			endpoint: "collector:4318",
			want:     otlpTarget{host: "collector:4318", tracePath: "/v1/traces", logPath: "/v1/logs"},
		},
		{
			name:     "http is insecure",
			endpoint: "http://localhost:4318",
			want:     otlpTarget{host: "localhost:4318", insecure: true, tracePath: "/v1/traces", logPath: "/v1/logs"},
		},
		{
			name:     "grafana otlp base path",
			endpoint: "https://otlp-gateway.grafana.net/otlp",
			want:     otlpTarget{host: "otlp-gateway.grafana.net", tracePath: "/otlp/v1/traces", logPath: "/otlp/v1/logs"},
		},
		{
			name:     "signal suffix is stripped",
			endpoint: "https://ingest.example.com/custom/v1/traces",
			want:     otlpTarget{host: "ingest.example.com", tracePath: "/custom/v1/traces", logPath: "/custom/v1/logs"},
		},
		{
			name:     "trailing slash",
			endpoint: "https://ingest.example.com/",
			want:     otlpTarget{host: "ingest.example.com", tracePath: "/v1/traces", logPath: "/v1/logs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEndpoint(tt.endpoint); got != tt.want {
				t.Errorf("parseEndpoint(%q) = %+v, want %+v", tt.endpoint, got, tt.want)
			}
		})
	}
}
