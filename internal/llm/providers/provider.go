// File path: internal/llm/providers/provider.go
package providers

import "context"

// Provider performs a single text generation: one fixed system instruction,
// one user prompt, one response. No retries, no caching.
type Provider interface {
	Generate(ctx context.Context, system, user string) (string, error)
	Name() string
}
