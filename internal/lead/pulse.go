package lead

import (
	"context"
	"fmt"

	"github.com/hitanshu04/coldleads-ai/internal/search"
)

// DefaultPulse stands in when no recent news can be found.
const DefaultPulse = "recent growth and innovation"

const (
	pulseResultCount = 3
	pulseLimit       = 500
)

// SummarizePulse fetches recent news about the company and returns the top
// result's content, capped at 500 characters. Query failures and empty result
// sets degrade to DefaultPulse.
func SummarizePulse(ctx context.Context, company string, searcher search.Provider) string {
	query := fmt.Sprintf("latest business and technology news about %s software company", company)
	results, err := searcher.Search(ctx, query, search.Options{
		MaxResults: pulseResultCount,
		Topic:      search.TopicNews,
	})
	if err != nil || len(results) == 0 {
		return DefaultPulse
	}
	return truncate(results[0].Content, pulseLimit)
}
