package upsell

import "context"

// Provider is the opaque text-generation endpoint behind the
// suggestion engine. It returns the model's raw text content, which
// may wrap the JSON payload in prose or code fences.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
