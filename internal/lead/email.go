package lead

import (
	"context"
	"fmt"
	"log"

	"github.com/hitanshu04/coldleads-ai/internal/llm"
)

// Persona identifies the sender in the email prompt and fallback template.
type Persona struct {
	Name string
	Role string
}

// fallbackPulseLimit caps how much of the pulse the template quotes.
const fallbackPulseLimit = 30

// ComposeEmail asks the generator for a short cold email and returns its text
// verbatim. When generation is unavailable or yields nothing, a deterministic
// template takes over, so the returned draft is never empty.
func ComposeEmail(ctx context.Context, ctoName, company, pulse string, persona Persona, generator llm.Generator) string {
	prompt := fmt.Sprintf(
		"Write a short, punchy cold email to %s at %s. "+
			"Mention their recent news: %s. "+
			"Pitch my services as a %s who can automate their internal workflows. "+
			"My name is %s. Keep it under 150 words.",
		ctoName, company, pulse, persona.Role, persona.Name,
	)

	draft, err := generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("email generation failed, using fallback template: %v", err)
	} else if draft != "" {
		return draft
	}
	return fallbackEmail(ctoName, company, pulse, persona)
}

func fallbackEmail(ctoName, company, pulse string, persona Persona) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"I've been following %s's recent updates regarding %s... and saw an opportunity to accelerate your internal tooling.\n\n"+
			"I am a %s specializing in building autonomous agents that streamline workflows. "+
			"I'd love to help your engineering team ship faster by automating the repetitive tasks slowing them down.\n\n"+
			"Open to a 10-min chat?\n\n"+
			"Best,\n%s",
		ctoName, company, truncate(pulse, fallbackPulseLimit), persona.Role, persona.Name,
	)
}
