package completion

import "context"

// Provider supplies suggestions for a request. The boolean is false when the
// provider has nothing to offer, which is distinct from an empty list.
type Provider interface {
	Provide(ctx context.Context, req Request) ([]Suggestion, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, req Request) ([]Suggestion, bool)

func (f ProviderFunc) Provide(ctx context.Context, req Request) ([]Suggestion, bool) {
	return f(ctx, req)
}
