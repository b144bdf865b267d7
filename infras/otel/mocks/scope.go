package mocks

import "resto/infras/otel"

type scopeImpl struct {
	parent *Otel
}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(_ string) {}

// End implements otel.Scope.
func (s *scopeImpl) End() {}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(_ string, _ any) {}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
	if s.parent != nil && err != nil {
		s.parent.record(err)
	}
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
	s.TraceError(err)
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
