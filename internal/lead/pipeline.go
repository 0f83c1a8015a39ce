// Package lead implements the lead-generation pipeline: resolve a company
// name from a URL, look up its CTO and recent news, and draft a cold outreach
// email, degrading each stage to a documented default on failure.
package lead

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hitanshu04/coldleads-ai/internal/llm"
	"github.com/hitanshu04/coldleads-ai/internal/search"
)

// Result is the outcome of one pipeline run. EmailDraft is never empty.
type Result struct {
	CTO          string `json:"cto"`
	EmailDraft   string `json:"email_draft"`
	CompanyPulse string `json:"company_pulse"`
}

// Pipeline sequences the lead-generation stages over the two injected
// capabilities. Stage failures substitute that stage's default and never
// abort the run; each external call is attempted at most once.
type Pipeline struct {
	Search    search.Provider
	Generator llm.Generator
	Persona   Persona
}

const siteResultCount = 5

// Generate runs the full pipeline for one target URL.
func (p Pipeline) Generate(ctx context.Context, targetURL string) Result {
	company := CompanyName(targetURL)

	// Best-effort probe of the target site. The response is reserved for
	// future use and deliberately discarded; failure must not touch the
	// other stages.
	_, _ = p.Search.Search(ctx, "site:"+targetURL, search.Options{MaxResults: siteResultCount})

	var cto, pulse string
	// The contact and news lookups are independent of each other.
	var group errgroup.Group
	group.Go(func() error {
		cto = ExtractContact(ctx, company, p.Search, p.Generator)
		return nil
	})
	group.Go(func() error {
		pulse = SummarizePulse(ctx, company, p.Search)
		return nil
	})
	_ = group.Wait()

	draft := ComposeEmail(ctx, cto, company, pulse, p.Persona, p.Generator)
	return Result{CTO: cto, EmailDraft: draft, CompanyPulse: pulse}
}

// truncate caps s at limit characters without splitting a rune.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
