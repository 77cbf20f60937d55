package requestid

import "context"

// Header заголовок, в котором передается идентификатор запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// WithID кладет идентификатор запроса в контекст
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает идентификатор запроса из контекста
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
