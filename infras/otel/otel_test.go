package otel_test

import (
	"cinema/config"
	"cinema/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}

	tracer := otel.New(cfg)
	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Propose")

	assert.NotNil(t, ctx)
	scope.SetAttribute("room_id", "r1")
	scope.TraceIfError(errors.New("ignored by the no-op span"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestScopeRecordsErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("repository").Start(context.Background(), "repository.screening.InsertTx")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{"rows": 3, "query": "INSERT", "locked": true})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("exclusion violation"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "exclusion violation", spans[0].Status().Description)
	assert.Len(t, spans[0].Attributes(), 3)
}
