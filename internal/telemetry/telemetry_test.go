package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func restoreGlobalProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestSetup_EmptyEndpointIsNoop(t *testing.T) {
	restoreGlobalProvider(t)
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Fatalf("Setup replaced the global provider for an empty endpoint")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}

func TestSetup_EndpointInstallsSDKProvider(t *testing.T) {
	restoreGlobalProvider(t)

	shutdown, err := Setup(context.Background(), "127.0.0.1:4318")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("global provider = %T, want *trace.TracerProvider", otel.GetTracerProvider())
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}

func TestNewProvider_TagsServiceName(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "probe")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	var found bool
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" && kv.Value.AsString() == ServiceName {
			found = true
		}
	}
	if !found {
		t.Fatalf("resource %v lacks service.name=%s", spans[0].Resource.Attributes(), ServiceName)
	}
}
