package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tatianab/abyssus/internal/config"
)

func TestInitTracingDisabled(t *testing.T) {
	tp, err := InitTracing(context.Background(), config.Tracing{Enabled: false})
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RunIDFromContext(ctx))

	ctx = WithRunID(ctx, "run-42")
	assert.Equal(t, "run-42", RunIDFromContext(ctx))
}

func TestRunInjectorStampsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(runInjector{}),
		sdktrace.WithSyncer(exporter),
	)
	defer provider.Shutdown(context.Background())

	ctx := WithRunID(context.Background(), "run-42")
	_, span := provider.Tracer("test").Start(ctx, "game.turn")
	span.End()
	_, span = provider.Tracer("test").Start(context.Background(), "untagged")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	var tagged string
	for _, kv := range spans[0].Attributes {
		if kv.Key == RunIDKey {
			tagged = kv.Value.AsString()
		}
	}
	assert.Equal(t, "run-42", tagged)
	assert.Empty(t, spans[1].Attributes)
}
