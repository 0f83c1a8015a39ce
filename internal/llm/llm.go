// Package llm provides the text-generation capability consumed by the lead
// pipeline.
package llm

import "context"

// Generator produces free text for a prompt. A non-nil error means the
// capability could not generate; the caller applies its own fallback policy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
