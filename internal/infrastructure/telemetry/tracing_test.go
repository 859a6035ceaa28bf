package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installRecorder swaps the global tracer provider for one backed by an
// in-memory exporter and restores the previous provider after the test.
func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return exporter
}

func TestStartSpan_RecordsNameAndAttributes(t *testing.T) {
	exporter := installRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "batch_processor", "process",
		attribute.String("batch.id", "b-1"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "batch_processor.process", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("batch.id", "b-1"))
}

func TestRecordError_SetsErrorStatus(t *testing.T) {
	exporter := installRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "batch_processor", "process")
	telemetry.RecordError(span, errors.New("lock held"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "lock held", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

func TestRecordError_IgnoresNilError(t *testing.T) {
	exporter := installRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "batch_processor", "process")
	telemetry.RecordError(span, nil)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}
