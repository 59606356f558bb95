package restapi

import "context"

type tokenCtxKey struct{}

// ContextWithToken stores a backend bearer token in the context. The gateway
// uses this to forward each session's token with its requests.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext extracts a bearer token from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
