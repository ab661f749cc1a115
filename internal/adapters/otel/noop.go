package otel

import "context"

// NoOpExporter is a metrics recorder that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordRequest(ctx context.Context, route, method string, status int) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
