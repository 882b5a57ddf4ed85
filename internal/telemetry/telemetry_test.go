package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitialize_DisabledInstallsPropagatorOnly(t *testing.T) {
	shutdown, err := Initialize(context.Background(), Config{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Endpoint: "localhost:4318"}.Enabled())
}

func TestStartSpan_RecordsOnInstalledProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx, parent := StartSpan(context.Background(), "analysis.launch")
	_, child := StartSpan(ctx, "adapter.send")
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "adapter.send", spans[0].Name)
	assert.Equal(t, "analysis.launch", spans[1].Name)
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].Parent.TraceID())
	assert.Equal(t, InstrumentationName, spans[0].InstrumentationScope.Name)
}

func TestStartSpan_PropagatesTraceContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	prop := propagation.TraceContext{}
	ctx, span := StartSpan(context.Background(), "analysis.channel")
	defer span.End()

	carrier := propagation.MapCarrier{}
	prop.Inject(ctx, carrier)

	assert.NotEmpty(t, carrier.Get("traceparent"))
}
