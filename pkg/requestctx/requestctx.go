package requestctx

import "context"

type ctxKey string

const (
	correlationIDKey ctxKey = "correlation_id"
	customerKey      ctxKey = "customer"
)

// WithCorrelationID returns a new context with the provided correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID fetches the correlation ID from the context, if any.
func CorrelationID(ctx context.Context) string {
	v := ctx.Value(correlationIDKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// WithCustomer returns a new context carrying the resolved customer ID.
func WithCustomer(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, customerKey, id)
}

// Customer fetches the customer ID attached by WithCustomer.
func Customer(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(customerKey).(string)
	return s, ok
}
