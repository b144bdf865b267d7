package otel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type status string

func (s status) String() string {
	return "status:" + string(s)
}

func TestToAttribute(t *testing.T) {
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, attribute.Bool("k", true), toAttribute("k", true))
	assert.Equal(t, attribute.Int("k", 3), toAttribute("k", 3))
	assert.Equal(t, attribute.Int64("k", 3), toAttribute("k", int64(3)))
	assert.Equal(t, attribute.StringSlice("k", []string{"admin", "staff"}), toAttribute("k", []string{"admin", "staff"}))
	assert.Equal(t, attribute.String("k", "2026-10-19T12:00:00Z"), toAttribute("k", at))
	assert.Equal(t, attribute.String("k", "status:busy"), toAttribute("k", status("busy")))
	assert.Equal(t, attribute.String("k", "[1 2]"), toAttribute("k", []int{1, 2}))
}

func TestScope_TraceError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(t.Context(), "test", "assign")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("tx aborted"))
	scope.SetAttributes(map[string]any{"table.name": "A1"})
	scope.End()

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "assign", spans[0].Name())
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "tx aborted", spans[0].Status().Description)
		assert.Contains(t, spans[0].Attributes(), attribute.String("table.name", "A1"))
	}
}
