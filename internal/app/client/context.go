package client

import "context"

type ctxKey struct{}

// NewContext кладет клиента в контекст команды
func NewContext(ctx context.Context, c *HTTPClient) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (*HTTPClient, bool) {
	c, ok := ctx.Value(ctxKey{}).(*HTTPClient)
	return c, ok && c != nil
}
