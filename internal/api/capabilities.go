package api

import (
	"context"
	"sync"

	"github.com/hitanshu04/coldleads-ai/internal/config"
	"github.com/hitanshu04/coldleads-ai/internal/llm"
	"github.com/hitanshu04/coldleads-ai/internal/search"
)

// Capabilities holds the process-wide provider handles. Each handle is built
// at most once, on first use; the first caller constructs it and later
// callers reuse the same value. A construction failure (a missing credential)
// is remembered and surfaced to every caller, so the serving process itself
// survives misconfiguration.
type Capabilities struct {
	search func() (search.Provider, error)
	llm    func() (llm.Generator, error)
}

func NewCapabilities(cfg config.Config) *Capabilities {
	return &Capabilities{
		search: sync.OnceValues(func() (search.Provider, error) {
			return search.NewTavilyProvider(search.TavilyConfig{
				APIKey:  cfg.TavilyAPIKey,
				BaseURL: cfg.TavilyBaseURL,
			})
		}),
		llm: sync.OnceValues(func() (llm.Generator, error) {
			return llm.NewGeminiGenerator(context.Background(), llm.GeminiConfig{
				APIKey:  cfg.GoogleAPIKey,
				Model:   cfg.GeminiModel,
				BaseURL: cfg.GeminiBaseURL,
			})
		}),
	}
}

// NewStaticCapabilities wires pre-built providers directly. Useful for tests.
func NewStaticCapabilities(searcher search.Provider, generator llm.Generator) *Capabilities {
	return &Capabilities{
		search: func() (search.Provider, error) { return searcher, nil },
		llm:    func() (llm.Generator, error) { return generator, nil },
	}
}
