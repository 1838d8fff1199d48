package router

import "context"

type paramsKey struct{}

// WithParams returns a copy of ctx carrying the matched path parameters.
func WithParams(ctx context.Context, params map[string]string) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// Params returns the path parameters of the matched route. The result is
// never nil.
func Params(ctx context.Context) map[string]string {
	if params, ok := ctx.Value(paramsKey{}).(map[string]string); ok && params != nil {
		return params
	}
	return map[string]string{}
}
