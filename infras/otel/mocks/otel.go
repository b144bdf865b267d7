package mocks

import (
	"context"
	"resto/infras/otel"
	"sync"
)

// Otel is an in-memory otel.Otel that keeps every error traced on its scopes.
type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scopeImpl{parent: o}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the names of the spans opened so far.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

// Errors returns the errors traced so far.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	o.errors = append(o.errors, err)
	o.mu.Unlock()
}

func NewOtel() *Otel {
	return &Otel{}
}
