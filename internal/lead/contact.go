package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hitanshu04/coldleads-ai/internal/llm"
	"github.com/hitanshu04/coldleads-ai/internal/search"
)

// DefaultContactName addresses the email when no CTO can be identified.
const DefaultContactName = "The Hiring Manager"

const (
	// refusalToken is what the extraction prompt asks the model to return
	// when the search text names nobody.
	refusalToken = "NONE"

	contactResultCount = 4
	contactBlobLimit   = 3000
	minContactNameLen  = 2
)

// ExtractContact searches for the company's CTO and asks the generator to
// pull a full name out of the raw search text. Every failure mode degrades to
// DefaultContactName; nothing propagates to the caller.
func ExtractContact(ctx context.Context, company string, searcher search.Provider, generator llm.Generator) string {
	query := fmt.Sprintf("CTO of %s LinkedIn", company)
	results, err := searcher.Search(ctx, query, search.Options{MaxResults: contactResultCount})
	if err != nil {
		return DefaultContactName
	}

	contents := make([]string, 0, len(results))
	for _, result := range results {
		contents = append(contents, result.Content)
	}
	blob := truncate(strings.Join(contents, " "), contactBlobLimit)

	prompt := fmt.Sprintf(
		"Extract the full name of the CTO of %s from:\n%s\nReturn ONLY the name. If not found, return NONE.",
		company, blob,
	)
	answer, err := generator.Generate(ctx, prompt)
	if err != nil {
		return DefaultContactName
	}
	if strings.Contains(strings.ToUpper(answer), refusalToken) {
		return DefaultContactName
	}
	name := strings.TrimSpace(answer)
	if len(name) <= minContactNameLen {
		return DefaultContactName
	}
	return unwrapJSONText(name)
}

// unwrapJSONText peels a {"text": ...} wrapper some models emit around the
// name. Best effort: any parse problem keeps the raw string.
func unwrapJSONText(raw string) string {
	if !strings.Contains(raw, "{") {
		return raw
	}
	var wrapped map[string]any
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return raw
	}
	if text, ok := wrapped["text"].(string); ok {
		return text
	}
	return raw
}
