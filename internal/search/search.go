// Package search provides the web-search capability consumed by the lead
// pipeline.
package search

import "context"

// TopicNews selects the provider's news vertical.
const TopicNews = "news"

// Result is a single search hit. Any field may be empty; callers must
// tolerate missing content.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Options narrow a query.
type Options struct {
	MaxResults int
	Topic      string
}

type Provider interface {
	Search(ctx context.Context, query string, opts Options) ([]Result, error)
}
