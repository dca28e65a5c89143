// Package ai implements emotion detection and emotion-conditioned
// response generation. Both have a remote model path and a local
// deterministic fallback; remote failures never escape this package.
package ai

import "context"

// Generator is the remote text-generation provider. Implementations
// must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
