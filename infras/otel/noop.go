package otel

import "context"

type noopImpl struct {
}

// NewScope implements Otel.
func (o *noopImpl) NewScope(ctx context.Context, _, _ string) (context.Context, Scope) {
	return ctx, noopScope{}
}

// NewNoop returns a tracer that records nothing. Used when no OTLP endpoint
// is configured and as the test double.
func NewNoop() Otel {
	return &noopImpl{}
}

type noopScope struct {
}

// End implements Scope.
func (s noopScope) End() {

}

// TraceError implements Scope.
func (s noopScope) TraceError(_ error) {

}

// TraceIfError implements Scope.
func (s noopScope) TraceIfError(_ error) {

}

// AddEvent implements Scope.
func (s noopScope) AddEvent(_ string) {

}

// SetAttribute implements Scope.
func (s noopScope) SetAttribute(_ string, _ any) {

}
